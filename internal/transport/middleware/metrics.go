package middleware

import (
	"net/http"
	"time"
)

type httpMetrics interface {
	RequestStarted() (done func())
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics records request counts and latency per matched route. Install it
// innermost, directly around the ServeMux, so the request it sees is the one
// the mux annotates with Pattern.
func Metrics(m httpMetrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.RequestStarted()
			defer done()

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
