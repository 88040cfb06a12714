// Package metrics exposes the Prometheus instrumentation for the import
// pipeline and the HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors so services can be handed a single value
// and tests can use an isolated registry.
type Metrics struct {
	registry *prometheus.Registry

	ImportsTotal      *prometheus.CounterVec
	RecordsIngested   prometheus.Counter
	ImportDuration    prometheus.Histogram
	HTTPRequestsTotal *prometheus.CounterVec
}

// New creates a metrics bundle backed by its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ImportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laborpulse",
			Name:      "imports_total",
			Help:      "File import attempts by outcome.",
		}, []string{"status"}),
		RecordsIngested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "laborpulse",
			Name:      "records_ingested_total",
			Help:      "Canonical records produced by successful imports.",
		}),
		ImportDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "laborpulse",
			Name:      "import_duration_seconds",
			Help:      "Wall time of import attempts.",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "laborpulse",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status class.",
		}, []string{"method", "status"}),
	}
}

// Handler returns the Prometheus exposition handler for this bundle's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveImport records one import attempt.
func (m *Metrics) ObserveImport(status string, records int, seconds float64) {
	m.ImportsTotal.WithLabelValues(status).Inc()
	m.ImportDuration.Observe(seconds)
	if records > 0 {
		m.RecordsIngested.Add(float64(records))
	}
}
