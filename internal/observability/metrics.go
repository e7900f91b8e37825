// Package observability provides instrumentation for the client's remote
// round-trips: prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	adapterRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "genie_adapter_requests_total",
		Help: "Adapter round-trips against the job service, by operation and HTTP status code.",
	}, []string{"op", "code"})

	adapterDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "genie_adapter_request_duration_seconds",
		Help:    "Latency of adapter round-trips, by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
)

// ObserveAdapterRequest records one adapter round-trip. code is the HTTP
// status code, or 0 when the request never produced a response.
func ObserveAdapterRequest(op string, code int, d time.Duration) {
	adapterRequests.WithLabelValues(op, strconv.Itoa(code)).Inc()
	adapterDuration.WithLabelValues(op).Observe(d.Seconds())
}

// MetricsHandler returns the HTTP handler for a /metrics endpoint, for
// embedding applications that expose one.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
