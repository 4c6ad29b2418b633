// Package metrics defines the Prometheus instruments exported by the
// statusboard server. All collectors register themselves with the default
// registry via promauto, so importing the package is enough to expose them
// on the /metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Status log submissions, labeled by the reported status.
	StatusLogsSubmittedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_logs_submitted_count",
			Help: "Total number of status log entries submitted",
		},
		[]string{"status"},
	)

	// Projects created through the API.
	ProjectsCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "projects_created_count",
			Help: "Total number of projects created",
		},
	)
)

// RecordHTTPRequestDuration records the latency of a completed HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementStatusLogsSubmitted counts a successfully stored status log entry.
func IncrementStatusLogsSubmitted(status string) {
	StatusLogsSubmittedCount.WithLabelValues(status).Inc()
}

// IncrementProjectsCreated counts a successfully created project.
func IncrementProjectsCreated() {
	ProjectsCreatedCount.Inc()
}
