package mesh

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/multiformats/go-multihash"
)

// voxelRecordSize is x, y, z as int32 followed by rgba.
const voxelRecordSize = 3*4 + 4

// Encode returns the canonical byte form of the mesh content: voxels sorted
// by x, y then z.
func (m *Mesh) Encode() []byte {
	keys := make([]Pos, 0, len(m.voxels))
	for p := range m.voxels {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	buf := make([]byte, len(keys)*voxelRecordSize)
	off := 0
	for _, p := range keys {
		for _, v := range p {
			binary.LittleEndian.PutUint32(buf[off:], uint32(int32(v)))
			off += 4
		}
		c := m.voxels[p]
		copy(buf[off:], c[:])
		off += 4
	}
	return buf
}

// Digest is the sha2-256 multihash of Encode. Two meshes with equal content
// have equal digests.
func (m *Mesh) Digest() (multihash.Multihash, error) {
	mh, err := multihash.Sum(m.Encode(), multihash.SHA2_256, -1)
	if err != nil {
		return nil, fmt.Errorf("multihash: %w", err)
	}
	return mh, nil
}
