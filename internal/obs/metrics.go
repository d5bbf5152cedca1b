// Package obs holds Prometheus metrics for the console: inbound HTTP
// traffic, guard decisions, and remote API client outcomes.
package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adminui_http_requests_total",
			Help: "Total number of HTTP requests served.",
		},
		[]string{"method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adminui_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)

	guardDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adminui_guard_decisions_total",
			Help: "Edge guard decisions by outcome.",
		},
		[]string{"decision"},
	)

	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adminui_api_client_requests_total",
			Help: "Remote API requests by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adminui_api_client_request_duration_seconds",
			Help:    "Remote API request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Init registers the console metrics with the default registry. Call once
// from bootstrap.
func Init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		guardDecisionsTotal,
		apiRequestsTotal,
		apiRequestDuration,
	)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Guard decision labels.
const (
	GuardAllow    = "allow"
	GuardRedirect = "redirect"
)

// RecordGuardDecision counts an edge guard outcome.
func RecordGuardDecision(decision string) {
	guardDecisionsTotal.WithLabelValues(decision).Inc()
}

// RecordAPIRequest counts a remote API call and observes its latency.
// outcome is an HTTP status code, or 0 for transport failures.
func RecordAPIRequest(method string, status int, d time.Duration) {
	outcome := "error"
	if status > 0 {
		outcome = strconv.Itoa(status)
	}
	apiRequestsTotal.WithLabelValues(method, outcome).Inc()
	apiRequestDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Instrument wraps a handler to measure request counts and latency.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		status := strconv.Itoa(sw.code)
		httpRequestsTotal.WithLabelValues(r.Method, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
