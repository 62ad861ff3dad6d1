package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/chavishaarora/travel-sage-scribe/internal/obs"
)

type statusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func MetricsMiddleware(m *obs.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, Status: http.StatusOK}

			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.Status)
			m.IncHTTPRequestsTotal(r.Method, r.URL.Path, status)
			m.ObserveHTTPRequestDuration(r.Method, r.URL.Path, status, time.Since(start).Seconds())
		}

		return http.HandlerFunc(fn)
	}
}
