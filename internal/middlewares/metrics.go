package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestRecorder receives per-request HTTP measurements.
type RequestRecorder interface {
	RequestStarted()
	RequestFinished(method, path string, status int, duration time.Duration)
}

// MetricsMiddleware records duration and status of every request. The path
// label is the matched chi route pattern so ids do not blow up cardinality.
func MetricsMiddleware(rec RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec.RequestStarted()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(rw, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			rec.RequestFinished(r.Method, path, rw.statusCode, time.Since(start))
		})
	}
}
