package scene

import "github.com/google/uuid"

// layerIndex resolves layer ids within one image.
type layerIndex struct {
	byID map[uuid.UUID]*Layer
}

func newLayerIndex() layerIndex {
	return layerIndex{
		byID: make(map[uuid.UUID]*Layer),
	}
}

func (li *layerIndex) Entries() int {
	return len(li.byID)
}

func (li *layerIndex) Add(l *Layer) {
	if li.byID == nil {
		li.byID = make(map[uuid.UUID]*Layer)
	}
	li.byID[l.ID] = l
}

func (li *layerIndex) Remove(l *Layer) {
	if li.byID[l.ID] == l {
		delete(li.byID, l.ID)
	}
}

func (li *layerIndex) Get(id uuid.UUID) *Layer {
	return li.byID[id]
}
