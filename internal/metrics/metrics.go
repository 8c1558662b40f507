// Package metrics exposes lyrics resolution counters and latencies in the Prometheus format.
//
// [Metrics] implements [lyrics.Recorder], so a resolver built with lyrics.WithRecorder reports every
// provider attempt and every resolution outcome. [Metrics.Handler] serves the private registry at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pulse"

// Metrics owns a Prometheus registry and the lyrics collectors registered on it.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	resolutions *prometheus.CounterVec
}

// New creates a registry with the lyrics collectors plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lyrics",
			Name:      "provider_requests_total",
			Help:      "Lyrics provider lookups by provider and outcome (found, not_found, empty, failed).",
		}, []string{"provider", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lyrics",
			Name:      "provider_duration_seconds",
			Help:      "Lyrics provider lookup latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lyrics",
			Name:      "resolutions_total",
			Help:      "Lyrics resolutions by outcome (hit, miss, invalid, failed).",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.resolutions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveProvider counts one provider attempt and records its latency.
func (m *Metrics) ObserveProvider(provider, outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(provider, outcome).Inc()
	m.duration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// ObserveResolution counts one resolution outcome.
func (m *Metrics) ObserveResolution(outcome string) {
	m.resolutions.WithLabelValues(outcome).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
