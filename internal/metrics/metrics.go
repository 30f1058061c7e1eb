// Package metrics exposes Prometheus collectors for letter generation and
// the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "visaletter"

// Metrics owns a registry and the application collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	generations       *prometheus.CounterVec
	generationSeconds *prometheus.HistogramVec
	wordCountMisses   *prometheus.CounterVec

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_total",
				Help:      "Letter generation requests by outcome.",
			},
			[]string{"country", "letter_type", "outcome"},
		),
		generationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Duration of letter generation requests, text generation included.",
				Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10), // 250ms to ~2m
			},
			[]string{"country", "letter_type"},
		),
		wordCountMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_word_count_out_of_range_total",
				Help:      "Saved letters whose word count fell outside the strategy range.",
			},
			[]string{"country", "letter_type"},
		),

		httpInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "inflight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.generations,
		m.generationSeconds,
		m.wordCountMisses,
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GenerationObserved records one generation request and how long it took.
func (m *Metrics) GenerationObserved(country, letterType, outcome string, elapsed time.Duration) {
	m.generations.WithLabelValues(country, letterType, outcome).Inc()
	m.generationSeconds.WithLabelValues(country, letterType).Observe(elapsed.Seconds())
}

// WordCountOutOfRange counts a saved letter that missed its word range.
func (m *Metrics) WordCountOutOfRange(country, letterType string) {
	m.wordCountMisses.WithLabelValues(country, letterType).Inc()
}

// RequestStarted increments the in-flight gauge and returns its decrement.
func (m *Metrics) RequestStarted() (done func()) {
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveHTTP records a finished HTTP request. route is the matched
// ServeMux pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
