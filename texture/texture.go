// Package texture holds 2d images that can be attached to a layer, for
// example a reference picture drawn on a plane.
package texture

import (
	"bytes"
	"fmt"
	"image"
)

type Texture struct {
	// Path is only set for textures loaded from a file.
	Path    string
	RGBA    *image.RGBA
	deleted bool
}

func New(w, h int) *Texture {
	return &Texture{
		RGBA: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// NewImage wraps already decoded pixels that came from path.
func NewImage(path string, img *image.RGBA) *Texture {
	return &Texture{
		Path: path,
		RGBA: img,
	}
}

func (t *Texture) Size() (w, h int) {
	if t.RGBA == nil {
		return 0, 0
	}
	b := t.RGBA.Bounds()
	return b.Dx(), b.Dy()
}

func (t *Texture) Copy() *Texture {
	if t.deleted {
		panic("texture: use after delete")
	}
	c := &Texture{Path: t.Path}
	if t.RGBA != nil {
		c.RGBA = &image.RGBA{
			Pix:    append([]uint8(nil), t.RGBA.Pix...),
			Stride: t.RGBA.Stride,
			Rect:   t.RGBA.Rect,
		}
	}
	return c
}

// Delete drops the pixel buffer. Deleting twice is a no-op.
func (t *Texture) Delete() {
	t.RGBA = nil
	t.deleted = true
}

func (t *Texture) Deleted() bool {
	return t.deleted
}

func (t *Texture) Equal(other *Texture) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil || t.Path != other.Path {
		return false
	}
	if t.RGBA == nil || other.RGBA == nil {
		return t.RGBA == other.RGBA
	}
	return t.RGBA.Rect == other.RGBA.Rect && bytes.Equal(t.RGBA.Pix, other.RGBA.Pix)
}

func (t *Texture) String() string {
	w, h := t.Size()
	return fmt.Sprintf("Texture (%dx%d path:%q)", w, h, t.Path)
}
