package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ekaya-inc/statusboard/pkg/metrics"
)

// Metrics returns middleware that records request latency in the
// http_request_duration_seconds histogram, labeled by method, path, and
// response status.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			metrics.RecordHTTPRequestDuration(
				r.Method,
				r.URL.Path,
				strconv.Itoa(wrapped.statusCode),
				time.Since(start),
			)
		})
	}
}
