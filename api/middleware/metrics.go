package middleware

import (
	"net/http"
	"time"

	"github.com/angelmondragon/cornerstore-backend/pkg/metrics"
)

// Metrics records each request against its chi route pattern once routing has
// resolved it.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			m.Observe(r.Method, matchedPattern(r), rec.Status(), time.Since(start))
		})
	}
}
