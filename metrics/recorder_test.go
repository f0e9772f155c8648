package metrics

import (
	"testing"

	"github.com/fordream/goxel/scene"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderFollowsHistory(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)
	img := scene.New(scene.WithObserver(rec))
	n := rec.Notifier(nil)

	img.AddLayer()
	img.HistoryPush()
	img.AddLayer()
	img.HistoryPush()
	img.Undo(n)
	img.Undo(n)
	img.Undo(n)

	assert.Equal(t, 3.0, testutil.ToFloat64(rec.ops.WithLabelValues("push")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.ops.WithLabelValues("undo")))
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.length))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.redoable))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.refreshes))

	img.AddLayer()
	img.HistoryPush()
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.discarded))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.length))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.redoable))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestNotifierForwards(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())
	calls := 0
	n := rec.Notifier(scene.NotifierFunc(func() { calls++ }))
	n.MeshesChanged()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.refreshes))
}

func TestRegisterTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg)
	assert.Panics(t, func() { NewRecorder(reg) })
}
