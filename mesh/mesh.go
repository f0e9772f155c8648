// Package mesh is a sparse voxel container used as layer payload.
package mesh

import (
	"fmt"
)

// Pos is a voxel coordinate.
type Pos [3]int

// Color is an RGBA voxel value. A zero alpha means empty.
type Color [4]uint8

func (c Color) empty() bool {
	return c[3] == 0
}

type Mesh struct {
	voxels  map[Pos]Color
	deleted bool
}

func New() *Mesh {
	return &Mesh{
		voxels: make(map[Pos]Color),
	}
}

func (m *Mesh) mustLive() {
	if m.deleted {
		panic("mesh: use after delete")
	}
}

// Set writes a voxel; an empty color removes it.
func (m *Mesh) Set(p Pos, c Color) {
	m.mustLive()
	if c.empty() {
		delete(m.voxels, p)
		return
	}
	m.voxels[p] = c
}

func (m *Mesh) At(p Pos) Color {
	return m.voxels[p]
}

func (m *Mesh) Count() int {
	return len(m.voxels)
}

func (m *Mesh) Clear() {
	m.mustLive()
	m.voxels = make(map[Pos]Color)
}

// Bounds returns the inclusive min and max corners of the filled voxels.
func (m *Mesh) Bounds() (min, max Pos, ok bool) {
	for p := range m.voxels {
		if !ok {
			min, max, ok = p, p, true
			continue
		}
		for i := range p {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return
}

// Copy returns an independent mesh with the same content.
func (m *Mesh) Copy() *Mesh {
	m.mustLive()
	c := &Mesh{
		voxels: make(map[Pos]Color, len(m.voxels)),
	}
	for p, v := range m.voxels {
		c.voxels[p] = v
	}
	return c
}

// Merge paints every voxel of other over m.
func (m *Mesh) Merge(other *Mesh) {
	m.mustLive()
	other.mustLive()
	for p, v := range other.voxels {
		m.voxels[p] = v
	}
}

// Delete releases the voxel storage. Deleting twice is a no-op.
func (m *Mesh) Delete() {
	m.voxels = nil
	m.deleted = true
}

func (m *Mesh) Deleted() bool {
	return m.deleted
}

func (m *Mesh) Equal(other *Mesh) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if len(m.voxels) != len(other.voxels) {
		return false
	}
	for p, v := range m.voxels {
		if ov, ok := other.voxels[p]; !ok || ov != v {
			return false
		}
	}
	return true
}

func (m *Mesh) String() string {
	if m.deleted {
		return "Mesh (deleted)"
	}
	return fmt.Sprintf("Mesh (voxels:%d)", len(m.voxels))
}
