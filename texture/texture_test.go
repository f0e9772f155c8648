package texture

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyIsDeep(t *testing.T) {
	tex := New(4, 2)
	tex.RGBA.Set(1, 1, color.RGBA{R: 200, A: 255})

	c := tex.Copy()
	require.True(t, tex.Equal(c))

	c.RGBA.Set(0, 0, color.RGBA{G: 200, A: 255})
	assert.False(t, tex.Equal(c))
	assert.Equal(t, color.RGBA{}, tex.RGBA.RGBAAt(0, 0))
}

func TestSize(t *testing.T) {
	w, h := New(8, 3).Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 3, h)
}

func TestDelete(t *testing.T) {
	tex := NewImage("ref.png", New(2, 2).RGBA)
	tex.Delete()
	tex.Delete()
	assert.True(t, tex.Deleted())
	w, h := tex.Size()
	assert.Zero(t, w+h)
	assert.Panics(t, func() { tex.Copy() })
}

func TestEqualComparesPath(t *testing.T) {
	a := NewImage("a.png", New(2, 2).RGBA)
	b := a.Copy()
	b.Path = "b.png"
	assert.False(t, a.Equal(b))
}
