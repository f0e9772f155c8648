// Package scene is the editable document: an ordered stack of layers with
// one active layer, and the snapshot history used for undo and redo.
//
// An Image is not safe for concurrent use.
package scene

import (
	"github.com/google/uuid"
)

const (
	DefaultExportSize = 256

	backgroundName = "background"
	unnamedName    = "unnamed"
)

type Image struct {
	// Path is where the image was last saved, if ever.
	Path         string
	ExportWidth  int
	ExportHeight int

	layers []*Layer
	active *Layer
	index  layerIndex

	newMesh      func() Mesh
	historyLimit int
	observer     HistoryObserver
	history      *History
}

type Option func(*Image)

// WithMeshFactory sets the constructor used for the payload of new layers.
func WithMeshFactory(f func() Mesh) Option {
	return func(img *Image) {
		img.newMesh = f
	}
}

// WithHistoryLimit keeps at most n snapshots. Zero means no limit.
func WithHistoryLimit(n int) Option {
	return func(img *Image) {
		img.historyLimit = n
	}
}

func WithObserver(o HistoryObserver) Option {
	return func(img *Image) {
		img.observer = o
	}
}

// New returns an image holding a single visible background layer, with the
// first history entry already recorded.
func New(opts ...Option) *Image {
	img := &Image{
		ExportWidth:  DefaultExportSize,
		ExportHeight: DefaultExportSize,
		index:        newLayerIndex(),
		newMesh:      NewVoxelMesh,
	}
	for _, opt := range opts {
		opt(img)
	}
	layer := newLayer(backgroundName, img.newMesh())
	layer.Visible = true
	img.appendLayer(layer)
	img.active = layer
	img.HistoryPush()
	return img
}

// Copy returns an independent image with deep copies of every layer. The
// copy has no history.
func (img *Image) Copy() *Image {
	c := &Image{
		Path:         img.Path,
		ExportWidth:  img.ExportWidth,
		ExportHeight: img.ExportHeight,
		newMesh:      img.newMesh,
		historyLimit: img.historyLimit,
	}
	c.copyLayers(img)
	return c
}

// Set replaces all the layers of img with copies of the layers of other.
// img keeps its identity and history, so references to it stay valid.
func (img *Image) Set(other *Image) {
	if other == img {
		return
	}
	img.releaseLayers()
	img.copyLayers(other)
}

// Delete releases every layer and every history snapshot.
func (img *Image) Delete() {
	img.releaseLayers()
	if img.history != nil {
		img.history.release()
		img.history = nil
	}
	img.Path = ""
}

func (img *Image) copyLayers(other *Image) {
	img.layers = make([]*Layer, 0, len(other.layers))
	img.index = newLayerIndex()
	img.active = nil
	for _, ol := range other.layers {
		l := ol.copy()
		img.appendLayer(l)
		if ol == other.active {
			img.active = l
		}
	}
	if img.active == nil {
		panic("scene: copied image has no active layer")
	}
}

func (img *Image) releaseLayers() {
	for _, l := range img.layers {
		l.release()
	}
	img.layers = nil
	img.index = newLayerIndex()
	img.active = nil
}

// Equal reports whether both images hold the same layer stack: same order,
// same layer content and the same active position.
func (img *Image) Equal(other *Image) bool {
	if len(img.layers) != len(other.layers) {
		return false
	}
	for i, l := range img.layers {
		if !l.equal(other.layers[i]) {
			return false
		}
	}
	return img.IndexOf(img.active) == other.IndexOf(other.active)
}

// Layers returns the layers from first to last.
func (img *Image) Layers() []*Layer {
	out := make([]*Layer, len(img.layers))
	copy(out, img.layers)
	return out
}

func (img *Image) Len() int {
	return len(img.layers)
}

func (img *Image) ActiveLayer() *Layer {
	return img.active
}

// SetActiveLayer selects l. It returns false if l is not in the image.
func (img *Image) SetActiveLayer(l *Layer) bool {
	if img.IndexOf(l) < 0 {
		return false
	}
	img.active = l
	return true
}

func (img *Image) FindLayer(id uuid.UUID) *Layer {
	return img.index.Get(id)
}

// IndexOf returns the position of l, or -1.
func (img *Image) IndexOf(l *Layer) int {
	if l == nil {
		return -1
	}
	for i, o := range img.layers {
		if o == l {
			return i
		}
	}
	return -1
}
