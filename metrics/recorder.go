// Package metrics exports prometheus metrics about image history.
package metrics

import (
	"github.com/fordream/goxel/scene"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "goxel"

// Recorder counts history operations of an image. It implements
// scene.HistoryObserver.
type Recorder struct {
	ops       *prometheus.CounterVec
	discarded prometheus.Counter
	refreshes prometheus.Counter
	length    prometheus.Gauge
	redoable  prometheus.Gauge
}

// NewRecorder creates the metrics and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "operations_total",
			Help:      "History operations that changed the history, by kind.",
		}, []string{"op"}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "snapshots_discarded_total",
			Help:      "Snapshots released because they were undone or beyond the limit.",
		}),
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mesh_refreshes_total",
			Help:      "Times the meshes were reported changed.",
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "snapshots",
			Help:      "Snapshots currently kept.",
		}),
		redoable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "redoable",
			Help:      "Snapshots newer than the current one.",
		}),
	}
	reg.MustRegister(r.ops, r.discarded, r.refreshes, r.length, r.redoable)
	return r
}

func (r *Recorder) HistoryChanged(op scene.HistoryOp, st scene.HistoryStats) {
	r.ops.WithLabelValues(op.String()).Inc()
	r.discarded.Add(float64(st.Discarded))
	r.length.Set(float64(st.Len))
	r.redoable.Set(float64(st.Redoable()))
}

// Notifier wraps next so that every refresh is counted. next may be nil.
func (r *Recorder) Notifier(next scene.Notifier) scene.Notifier {
	return scene.NotifierFunc(func() {
		r.refreshes.Inc()
		if next != nil {
			next.MeshesChanged()
		}
	})
}
