package scene

import (
	"testing"

	"github.com/fordream/goxel/mesh"
	"github.com/stretchr/testify/require"
)

// tracker counts payloads that were created and not yet deleted.
type tracker struct {
	live int
}

type trackedMesh struct {
	t       *tracker
	cells   map[int]bool
	deleted bool
}

func (tr *tracker) factory() Mesh {
	tr.live++
	return &trackedMesh{t: tr, cells: map[int]bool{}}
}

func (m *trackedMesh) Copy() Mesh {
	m.t.live++
	c := &trackedMesh{t: m.t, cells: map[int]bool{}}
	for k := range m.cells {
		c.cells[k] = true
	}
	return c
}

func (m *trackedMesh) Merge(src Mesh) {
	for k := range src.(*trackedMesh).cells {
		m.cells[k] = true
	}
}

func (m *trackedMesh) Delete() {
	if m.deleted {
		panic("double delete")
	}
	m.deleted = true
	m.t.live--
}

func (m *trackedMesh) Equal(other Mesh) bool {
	o, ok := other.(*trackedMesh)
	if !ok || len(o.cells) != len(m.cells) {
		return false
	}
	for k := range m.cells {
		if !o.cells[k] {
			return false
		}
	}
	return true
}

type recordingObserver struct {
	ops   []HistoryOp
	stats []HistoryStats
}

func (r *recordingObserver) HistoryChanged(op HistoryOp, st HistoryStats) {
	r.ops = append(r.ops, op)
	r.stats = append(r.stats, st)
}

func names(img *Image) []string {
	var out []string
	for _, l := range img.Layers() {
		out = append(out, l.Name())
	}
	return out
}

func paint(t *testing.T, l *Layer, p mesh.Pos) {
	t.Helper()
	v := Voxels(l)
	require.NotNil(t, v)
	v.Set(p, mesh.Color{255, 255, 255, 255})
}

// requireInvariants checks the layer stack is never empty and has exactly one
// active layer that belongs to it.
func requireInvariants(t *testing.T, img *Image) {
	t.Helper()
	require.GreaterOrEqual(t, img.Len(), 1)
	require.NotNil(t, img.ActiveLayer())
	require.GreaterOrEqual(t, img.IndexOf(img.ActiveLayer()), 0)
	require.Equal(t, img.Len(), img.index.Entries())
}
