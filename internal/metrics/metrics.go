// Package metrics exposes Prometheus instrumentation for the event store and
// the probe endpoints served by `eventbot start`.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics implements store.Recorder.
type StoreMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewStoreMetrics registers the store collectors on reg.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	f := promauto.With(reg)
	return &StoreMetrics{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eventbot_store_operations_total",
			Help: "Event store operations by operation and result (ok, miss, error)",
		}, []string{"op", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name: "eventbot_store_operation_duration_seconds",
			Help: "Event store operation latency, including the full document read/write",
			// 100µs .. ~2.6s
			Buckets: prometheus.ExponentialBuckets(0.0001, 2.5, 12),
		}, []string{"op"}),
	}
}

// Observe records one operation outcome.
func (m *StoreMetrics) Observe(op, result string, elapsed time.Duration) {
	m.operations.WithLabelValues(op, result).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
