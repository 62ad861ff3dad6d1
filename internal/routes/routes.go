package routes

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	handlers "github.com/chavishaarora/travel-sage-scribe/internal/http"
	mid "github.com/chavishaarora/travel-sage-scribe/internal/middleware"
	"github.com/chavishaarora/travel-sage-scribe/internal/obs"
)

func GetRoutes(h *handlers.Handler, metrics *obs.Metrics, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	// Useful built-in middlewares
	r.Use(middleware.RealIP)    // proper client IP extraction
	r.Use(middleware.RequestID) // sets request ID header
	r.Use(middleware.Recoverer) // built-in recoverer to avoid panics taking server down

	// our custom middlewares: metrics, logging & timeout
	r.Use(mid.MetricsMiddleware(metrics))
	r.Use(mid.LoggingMiddleware(logger))
	// a hotel run can chain four upstream calls, give it room
	r.Use(mid.TimeoutMiddleware(30 * time.Second))

	// endpoints
	r.Get("/flights/search", h.FlightSearch)
	r.Get("/hotels/search", h.HotelSearch)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}
