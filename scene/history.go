package scene

import (
	log "github.com/sirupsen/logrus"
)

type HistoryOp int

const (
	OpPush HistoryOp = iota
	OpUndo
	OpRedo
)

func (op HistoryOp) String() string {
	switch op {
	case OpPush:
		return "push"
	case OpUndo:
		return "undo"
	case OpRedo:
		return "redo"
	}
	return "unknown"
}

// HistoryStats is the shape of a history after an operation.
type HistoryStats struct {
	Len    int
	Cursor int
	// Discarded counts the snapshots released by this operation.
	Discarded int
}

// Redoable is the number of snapshots newer than the cursor.
func (st HistoryStats) Redoable() int {
	return st.Len - 1 - st.Cursor
}

type HistoryObserver interface {
	HistoryChanged(op HistoryOp, st HistoryStats)
}

// History is a linear list of image snapshots, oldest first, with a cursor
// on the snapshot matching the live image.
type History struct {
	snaps  []*Image
	cursor int
	limit  int
}

func newHistory(limit int) *History {
	return &History{cursor: -1, limit: limit}
}

// dropRedo releases every snapshot newer than the cursor.
func (h *History) dropRedo() (n int) {
	for i := h.cursor + 1; i < len(h.snaps); i++ {
		h.snaps[i].Delete()
		h.snaps[i] = nil
		n++
	}
	h.snaps = h.snaps[:h.cursor+1]
	return
}

// dropOldest releases the oldest snapshots beyond the limit.
func (h *History) dropOldest() (n int) {
	if h.limit <= 0 || len(h.snaps) <= h.limit {
		return 0
	}
	n = len(h.snaps) - h.limit
	for _, s := range h.snaps[:n] {
		s.Delete()
	}
	h.snaps = append(h.snaps[:0], h.snaps[n:]...)
	h.cursor -= n
	return
}

func (h *History) release() {
	for _, s := range h.snaps {
		s.Delete()
	}
	h.snaps = nil
	h.cursor = -1
}

func (h *History) stats(discarded int) HistoryStats {
	return HistoryStats{Len: len(h.snaps), Cursor: h.cursor, Discarded: discarded}
}

// HistoryPush records a snapshot of the image. Anything that was undone is
// dropped for good.
func (img *Image) HistoryPush() {
	if img.history == nil {
		img.history = newHistory(img.historyLimit)
	}
	h := img.history
	snap := img.Copy()
	discarded := h.dropRedo()
	h.snaps = append(h.snaps, snap)
	h.cursor = len(h.snaps) - 1
	discarded += h.dropOldest()
	img.printHistory()
	img.observe(OpPush, discarded)
}

// Undo restores the previous snapshot and tells n that the meshes changed.
// It does nothing when there is nothing to undo.
func (img *Image) Undo(n Notifier) {
	if !img.CanUndo() {
		return
	}
	h := img.history
	h.cursor--
	img.Set(h.snaps[h.cursor])
	if n != nil {
		n.MeshesChanged()
	}
	img.printHistory()
	img.observe(OpUndo, 0)
}

// Redo restores the next snapshot and tells n that the meshes changed. It
// does nothing when the cursor is on the newest snapshot.
func (img *Image) Redo(n Notifier) {
	if !img.CanRedo() {
		return
	}
	h := img.history
	h.cursor++
	img.Set(h.snaps[h.cursor])
	if n != nil {
		n.MeshesChanged()
	}
	img.printHistory()
	img.observe(OpRedo, 0)
}

func (img *Image) CanUndo() bool {
	return img.history != nil && img.history.cursor > 0
}

func (img *Image) CanRedo() bool {
	h := img.history
	return h != nil && h.cursor >= 0 && h.cursor < len(h.snaps)-1
}

func (img *Image) HistoryLen() int {
	if img.history == nil {
		return 0
	}
	return len(img.history.snaps)
}

// HistoryCursor is the index of the current snapshot, oldest being 0, or
// -1 before the first push.
func (img *Image) HistoryCursor() int {
	if img.history == nil {
		return -1
	}
	return img.history.cursor
}

func (img *Image) observe(op HistoryOp, discarded int) {
	if img.observer == nil {
		return
	}
	img.observer.HistoryChanged(op, img.history.stats(discarded))
}

func (img *Image) printHistory() {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	h := img.history
	log.Debug("hist")
	for i := len(h.snaps) - 1; i >= 0; i-- {
		mark := " "
		if i == h.cursor {
			mark = "*"
		}
		log.Debugf("%s %d (%p)", mark, len(h.snaps)-1-i, h.snaps[i])
	}
}
