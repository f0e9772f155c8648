package scene

import (
	"github.com/fordream/goxel/mesh"
	"github.com/fordream/goxel/texture"
)

// Mesh is the geometry owned by a layer.
type Mesh interface {
	Copy() Mesh
	// Merge paints src into the receiver. src is left untouched.
	Merge(src Mesh)
	Delete()
	Equal(other Mesh) bool
}

// Texture is the optional 2d image attached to a layer.
type Texture interface {
	Copy() Texture
	Delete()
	Equal(other Texture) bool
}

// Notifier is told when restored history changed the layer meshes, so that
// derived geometry can be rebuilt.
type Notifier interface {
	MeshesChanged()
}

type NotifierFunc func()

func (f NotifierFunc) MeshesChanged() {
	f()
}

// VoxelMesh binds a mesh.Mesh to the Mesh interface.
type VoxelMesh struct {
	*mesh.Mesh
}

func NewVoxelMesh() Mesh {
	return VoxelMesh{mesh.New()}
}

func (v VoxelMesh) Copy() Mesh {
	return VoxelMesh{v.Mesh.Copy()}
}

func (v VoxelMesh) Merge(src Mesh) {
	v.Mesh.Merge(src.(VoxelMesh).Mesh)
}

func (v VoxelMesh) Equal(other Mesh) bool {
	o, ok := other.(VoxelMesh)
	return ok && v.Mesh.Equal(o.Mesh)
}

// Voxels returns the voxel grid of a layer, or nil when the layer payload is
// not a VoxelMesh.
func Voxels(l *Layer) *mesh.Mesh {
	if v, ok := l.mesh.(VoxelMesh); ok {
		return v.Mesh
	}
	return nil
}

// Surface binds a texture.Texture to the Texture interface.
type Surface struct {
	*texture.Texture
}

func (s Surface) Copy() Texture {
	return Surface{s.Texture.Copy()}
}

func (s Surface) Equal(other Texture) bool {
	o, ok := other.(Surface)
	return ok && s.Texture.Equal(o.Texture)
}
