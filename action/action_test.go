package action

import (
	"testing"

	"github.com/fordream/goxel/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.MustRegister(ImageActions()...)
	return r
}

func TestDefaultRegistry(t *testing.T) {
	assert.Equal(t, []string{
		"img_del_layer",
		"img_duplicate_layer",
		"img_merge_visible_layers",
		"img_move_layer",
		"img_new_layer",
		"redo",
		"undo",
	}, Default.List())
	a := Default.Get("img_move_layer")
	require.NotNil(t, a)
	assert.Equal(t, "Move the active layer", a.Help)
	assert.Equal(t, []Arg{{"image", TypeImage}, {"layer", TypeLayer}, {"ofs", TypeInt}}, a.Sig.Args)
}

func TestRegisterDuplicate(t *testing.T) {
	r := newRegistry(t)
	err := r.Register(&Action{ID: "undo", Func: func(*Call) interface{} { return nil }})
	assert.ErrorIs(t, err, ErrDuplicateAction)
	assert.Error(t, r.Register(&Action{ID: "nofunc"}))
	assert.Panics(t, func() { r.MustRegister(ImageActions()[0]) })
}

func TestExecPushesHistoryOnce(t *testing.T) {
	r := newRegistry(t)
	img := scene.New()

	ret, err := r.Exec("img_new_layer", Args{"image": img})
	require.NoError(t, err)
	l, ok := ret.(*scene.Layer)
	require.True(t, ok)
	assert.Same(t, l, img.ActiveLayer())
	assert.Equal(t, 2, img.HistoryLen())

	_, err = r.Exec("img_duplicate_layer", Args{"image": img})
	require.NoError(t, err)
	assert.Equal(t, 3, img.Len())
	assert.Equal(t, 3, img.HistoryLen())
}

func TestExecUndoRedoDoNotPush(t *testing.T) {
	r := newRegistry(t)
	calls := 0
	r.SetNotifier(scene.NotifierFunc(func() { calls++ }))
	img := scene.New()

	_, err := r.Exec("img_new_layer", Args{"image": img})
	require.NoError(t, err)
	_, err = r.Exec("undo", Args{"image": img})
	require.NoError(t, err)
	assert.Equal(t, 1, img.Len())
	assert.Equal(t, 2, img.HistoryLen())
	assert.Equal(t, 1, calls)

	_, err = r.Exec("redo", Args{"image": img})
	require.NoError(t, err)
	assert.Equal(t, 2, img.Len())
	assert.Equal(t, 2, img.HistoryLen())
	assert.Equal(t, 2, calls)
}

func TestExecLayerArgument(t *testing.T) {
	r := newRegistry(t)
	img := scene.New()
	bg := img.ActiveLayer()
	_, err := r.Exec("img_new_layer", Args{"image": img})
	require.NoError(t, err)

	// By uuid.
	_, err = r.Exec("img_move_layer", Args{"image": img, "layer": bg.ID, "ofs": -1})
	require.NoError(t, err)
	assert.Same(t, bg, img.Layers()[1])

	// Default is the active layer.
	active := img.ActiveLayer()
	_, err = r.Exec("img_del_layer", Args{"image": img})
	require.NoError(t, err)
	assert.Equal(t, 1, img.Len())
	assert.NotSame(t, active, img.Layers()[0])
	assert.Same(t, bg, img.Layers()[0])
}

func TestExecErrors(t *testing.T) {
	r := newRegistry(t)
	img := scene.New()
	var nilLayer *scene.Layer
	tests := []struct {
		name string
		id   string
		args Args
		want error
	}{
		{"unknown action", "img_rotate", Args{"image": img}, ErrUnknownAction},
		{"missing image", "img_new_layer", Args{}, ErrMissingArg},
		{"image wrong type", "img_new_layer", Args{"image": "scene.gox"}, ErrArgType},
		{"missing ofs", "img_move_layer", Args{"image": img}, ErrMissingArg},
		{"ofs wrong type", "img_move_layer", Args{"image": img, "ofs": 1.0}, ErrArgType},
		{"nil layer", "img_del_layer", Args{"image": img, "layer": nilLayer}, ErrArgType},
		{"layer wrong type", "img_del_layer", Args{"image": img, "layer": 3}, ErrArgType},
		{"unknown layer id", "img_del_layer", Args{"image": img, "layer": scene.New().ActiveLayer().ID}, ErrLayerNotFound},
		{"unknown argument", "img_new_layer", Args{"image": img, "name": "x"}, ErrUnknownArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Exec(tt.id, tt.args)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 1, img.HistoryLen())
	assert.Equal(t, 1, img.Len())
}

func TestMergeThroughRegistry(t *testing.T) {
	r := newRegistry(t)
	img := scene.New()
	bg := img.ActiveLayer()
	for i := 0; i < 2; i++ {
		_, err := r.Exec("img_new_layer", Args{"image": img})
		require.NoError(t, err)
	}
	_, err := r.Exec("img_merge_visible_layers", Args{"image": img})
	require.NoError(t, err)
	assert.Equal(t, 1, img.Len())
	assert.Same(t, bg, img.ActiveLayer())
	assert.Equal(t, 4, img.HistoryLen())

	_, err = r.Exec("undo", Args{"image": img})
	require.NoError(t, err)
	assert.Equal(t, 3, img.Len())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "layer", TypeLayer.String())
	assert.Equal(t, "type(42)", Type(42).String())
}
