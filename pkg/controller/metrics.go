package controller

import (
	"net/http"
	"pkgadmin/pkg/metrics"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match any route, keeping the
// route attribute bounded.
const unmatchedRoute = "unmatched"

// WithMetrics returns a middleware recording request counts and latencies per
// route pattern. It must be installed on a chi router so that the matched
// pattern is known once the request was served.
func WithMetrics(rec *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sr, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			rec.Observe(r.Context(), r.Method, route, sr.status, time.Since(start))
		})
	}
}
