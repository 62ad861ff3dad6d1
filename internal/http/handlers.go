package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
	"github.com/chavishaarora/travel-sage-scribe/internal/flights"
	"github.com/chavishaarora/travel-sage-scribe/internal/hotels"
	"github.com/chavishaarora/travel-sage-scribe/internal/models"
	"github.com/chavishaarora/travel-sage-scribe/internal/obs"
)

type Handler struct {
	client  *booking.Client
	metrics *obs.Metrics
	logger  *slog.Logger
}

func NewHandler(client *booking.Client, m *obs.Metrics, logger *slog.Logger) *Handler {
	return &Handler{client: client, metrics: m, logger: logger}
}

// chi's middleware.RequestID sets X-Request-Id header
func requestID(r *http.Request) string {
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		return rid
	}
	return uuid.New().String()
}

func (h *Handler) FlightSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.metrics.IncSearches("flights")
	meta := map[string]string{"request_id": requestID(r)}

	req, err := models.NewFlightSearchRequest(r.URL.Query())
	if err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}
	if err := req.Validate(); err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}

	offers, err := flights.Run(ctx, h.client, h.logger, req.From, req.To, req.Params)
	if err != nil {
		h.writePipelineError(w, err, meta)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"search": map[string]string{"from": req.From, "to": req.To},
		"offers": offers,
	})
}

func (h *Handler) HotelSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.metrics.IncSearches("hotels")
	meta := map[string]string{"request_id": requestID(r)}

	req, err := models.NewHotelSearchRequest(r.URL.Query())
	if err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}
	if err := req.Validate(); err != nil {
		BadRequest(w, err.Error(), meta)
		return
	}

	summary, err := hotels.Run(ctx, h.client, h.logger, req.City, req.Params)
	if err != nil {
		h.writePipelineError(w, err, meta)
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

// writePipelineError maps the pipeline error taxonomy onto status codes:
// missing or empty upstream data is a 404, anything the upstream itself
// broke (transport, non-2xx, bad JSON) is a 502.
func (h *Handler) writePipelineError(w http.ResponseWriter, err error, meta map[string]string) {
	switch {
	case errors.Is(err, flights.ErrNoAirport),
		errors.Is(err, flights.ErrNoOffers),
		errors.Is(err, hotels.ErrNoDestination),
		errors.Is(err, hotels.ErrNoHotels):
		NotFound(w, err.Error(), meta)
	case errors.Is(err, flights.ErrUnresolved), errors.Is(err, hotels.ErrUnresolved):
		InternalError(w, err.Error(), meta)
	default:
		BadGateway(w, err.Error(), meta)
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
