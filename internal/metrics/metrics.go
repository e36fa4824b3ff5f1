// Package metrics exports dispatch statistics collected by the trace layer.
package metrics

import (
	"net/http"
	"time"

	"github.com/fxnlabs/level-zero-loader/internal/ddi"
	"github.com/fxnlabs/level-zero-loader/internal/ze"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DispatchMetrics implements trace.Observer.
type DispatchMetrics struct {
	calls         *prometheus.CounterVec
	failures      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	driversLoaded prometheus.Gauge
	records       *prometheus.GaugeVec
}

// NewDispatchMetrics registers the dispatch collectors with reg under
// namespace.
func NewDispatchMetrics(reg prometheus.Registerer, namespace string) *DispatchMetrics {
	factory := promauto.With(reg)
	return &DispatchMetrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_calls_total",
			Help:      "The total number of dispatched calls by entry point and result",
		}, []string{"op", "result"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_failures_total",
			Help:      "The total number of dispatched calls that did not succeed, by category",
		}, []string{"category"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent inside the driver for each dispatched call",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1us to ~4s
		}, []string{"category"}),
		driversLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "drivers_loaded",
			Help:      "Number of driver records currently valid",
		}),
		records: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "driver_api_version",
			Help:      "Negotiated API version of each loaded driver, as major*1000+minor",
		}, []string{"driver"}),
	}
}

func (m *DispatchMetrics) Observe(op ddi.OpID, result ze.Result, elapsed time.Duration) {
	category := "unknown"
	if op.Valid() {
		category = ddi.Describe(op).Category.String()
	}
	m.calls.WithLabelValues(op.String(), result.String()).Inc()
	if result != ze.ResultSuccess {
		m.failures.WithLabelValues(category).Inc()
	}
	m.duration.WithLabelValues(category).Observe(elapsed.Seconds())
}

// DriverLoaded records a driver whose record became valid at version v.
func (m *DispatchMetrics) DriverLoaded(name string, v ze.APIVersion) {
	m.driversLoaded.Inc()
	m.records.WithLabelValues(name).Set(float64(v.Major())*1000 + float64(v.Minor()))
}

// DriverUnloaded reverses DriverLoaded.
func (m *DispatchMetrics) DriverUnloaded(name string) {
	m.driversLoaded.Dec()
	m.records.DeleteLabelValues(name)
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
