package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/metrics"
)

// Metrics records request counts and latency. Requests are labelled by the
// ServeMux pattern that matched, so path parameters do not explode
// cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
	})
}
