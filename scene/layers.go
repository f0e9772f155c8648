package scene

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (img *Image) appendLayer(l *Layer) {
	img.layers = append(img.layers, l)
	img.index.Add(l)
}

func (img *Image) removeAt(i int) *Layer {
	l := img.layers[i]
	img.layers = append(img.layers[:i], img.layers[i+1:]...)
	img.index.Remove(l)
	return l
}

func (img *Image) newDefaultLayer() *Layer {
	l := newLayer(unnamedName, img.newMesh())
	l.Visible = true
	img.appendLayer(l)
	return l
}

// AddLayer appends a new visible layer and makes it active.
func (img *Image) AddLayer() *Layer {
	l := img.newDefaultLayer()
	img.active = l
	return l
}

// DeleteLayer removes and releases l. The image always keeps one layer: a
// new one is created when the last is deleted. If l was active the last
// layer becomes active.
func (img *Image) DeleteLayer(l *Layer) {
	i := img.IndexOf(l)
	if i < 0 {
		log.Warn("delete: layer not in image ", l)
		return
	}
	img.removeAt(i)
	if l == img.active {
		img.active = nil
	}
	l.release()
	if len(img.layers) == 0 {
		img.newDefaultLayer()
	}
	if img.active == nil {
		img.active = img.layers[len(img.layers)-1]
	}
}

// MoveLayer moves l by one step. With d == -1 the layer after l is put in
// front of it, so l goes one step toward the end of the list. With d == +1 l
// is put in front of the layer before it, unless l is already first. The two
// directions are written differently on purpose; keep them that way. Any
// other value of d panics.
func (img *Image) MoveLayer(l *Layer, d int) {
	if d != -1 && d != +1 {
		panic(fmt.Sprintf("scene: invalid move direction %d", d))
	}
	i := img.IndexOf(l)
	if i < 0 {
		log.Warn("move: layer not in image ", l)
		return
	}
	var moved, anchor *Layer
	if d == -1 {
		if i+1 < len(img.layers) {
			moved, anchor = img.layers[i+1], l
		}
	} else if i > 0 {
		moved, anchor = l, img.layers[i-1]
	}
	if moved == nil {
		return
	}
	img.moveBefore(moved, anchor)
}

// moveBefore takes moved out of the list and inserts it just before anchor.
func (img *Image) moveBefore(moved, anchor *Layer) {
	from := img.IndexOf(moved)
	img.layers = append(img.layers[:from], img.layers[from+1:]...)
	to := img.IndexOf(anchor)
	img.layers = append(img.layers, nil)
	copy(img.layers[to+1:], img.layers[to:])
	img.layers[to] = moved
}

// DuplicateLayer appends a visible deep copy of l and makes it active.
func (img *Image) DuplicateLayer(l *Layer) *Layer {
	c := l.copy()
	c.ID = uuid.New()
	c.Visible = true
	img.appendLayer(c)
	img.active = c
	return c
}

// MergeVisibleLayers merges all the visible layers into the first visible
// one, which becomes active. Hidden layers stay where they are. Nothing
// happens with fewer than two visible layers.
func (img *Image) MergeVisibleLayers() {
	visible := 0
	for _, l := range img.layers {
		if l.Visible {
			visible++
		}
	}
	if visible < 2 {
		return
	}
	var into *Layer
	kept := make([]*Layer, 0, len(img.layers)-visible+1)
	for _, l := range img.layers {
		switch {
		case !l.Visible:
			kept = append(kept, l)
		case into == nil:
			into = l
			kept = append(kept, l)
		default:
			into.mesh.Merge(l.mesh)
			img.index.Remove(l)
			l.release()
		}
	}
	img.layers = kept
	img.active = into
}
