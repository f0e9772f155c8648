package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Layer struct {
	// ID is kept by snapshots, so it still names the layer after undo.
	ID      uuid.UUID
	Visible bool
	// Mat places the attached image in the scene.
	Mat mgl32.Mat4

	name  string
	mesh  Mesh
	image Texture
}

func newLayer(name string, m Mesh) *Layer {
	return &Layer{
		ID:   uuid.New(),
		Mat:  mgl32.Ident4(),
		name: truncateName(name),
		mesh: m,
	}
}

func (l *Layer) copy() *Layer {
	c := &Layer{
		ID:      l.ID,
		Visible: l.Visible,
		Mat:     l.Mat,
		name:    l.name,
		mesh:    l.mesh.Copy(),
	}
	if l.image != nil {
		c.image = l.image.Copy()
	}
	return c
}

func (l *Layer) release() {
	l.mesh.Delete()
	if l.image != nil {
		l.image.Delete()
		l.image = nil
	}
}

func (l *Layer) Name() string {
	return l.name
}

// SetName renames the layer, cutting names longer than MaxNameLen.
func (l *Layer) SetName(name string) {
	l.name = truncateName(name)
}

func (l *Layer) Mesh() Mesh {
	return l.mesh
}

func (l *Layer) Image() Texture {
	return l.image
}

// SetImage attaches t to the layer and releases the previous image.
func (l *Layer) SetImage(t Texture) {
	if l.image != nil {
		l.image.Delete()
	}
	l.image = t
}

func (l *Layer) equal(o *Layer) bool {
	if l.name != o.name || l.Visible != o.Visible || l.Mat != o.Mat {
		return false
	}
	if !l.mesh.Equal(o.mesh) {
		return false
	}
	if l.image == nil || o.image == nil {
		return l.image == nil && o.image == nil
	}
	return l.image.Equal(o.image)
}

func (l Layer) String() string {
	return fmt.Sprintf("Layer: %q visible:%t id:%s", l.name, l.Visible, l.ID)
}
