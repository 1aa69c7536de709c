// Package metrics exposes Prometheus instrumentation for the API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors the server records into.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	searchesTotal     *prometheus.CounterVec
	timetableTrips    prometheus.Gauge
	timetableLoadedAt prometheus.Gauge
}

// New creates a Metrics instance with its own registry, including the
// standard Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "srtgn",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, path pattern and status code.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "srtgn",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by path pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "srtgn",
			Subsystem: "engine",
			Name:      "searches_total",
			Help:      "Recommendation searches by outcome.",
		}, []string{"outcome"}),
		timetableTrips: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "srtgn",
			Subsystem: "timetable",
			Name:      "trips",
			Help:      "Trips in the published timetable snapshot.",
		}),
		timetableLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "srtgn",
			Subsystem: "timetable",
			Name:      "loaded_at_seconds",
			Help:      "Unix time the current snapshot was built.",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.searchesTotal,
		m.timetableTrips,
		m.timetableLoadedAt,
	)
	return m
}

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSearch records the outcome of one recommendation search.
// Outcomes: "direct", "transfer", "empty", "not_found".
func (m *Metrics) ObserveSearch(outcome string) {
	m.searchesTotal.WithLabelValues(outcome).Inc()
}

// SetTimetable updates the snapshot gauges after a (re)load.
func (m *Metrics) SetTimetable(trips int, loadedAt time.Time) {
	m.timetableTrips.Set(float64(trips))
	m.timetableLoadedAt.Set(float64(loadedAt.Unix()))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware instruments a handler with request count and latency metrics.
// The path label uses the route pattern, not the raw URL, to bound
// cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		m.requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}
