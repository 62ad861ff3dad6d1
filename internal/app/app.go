package app

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
	handlers "github.com/chavishaarora/travel-sage-scribe/internal/http"
	"github.com/chavishaarora/travel-sage-scribe/internal/obs"
	"github.com/chavishaarora/travel-sage-scribe/internal/routes"
)

type App struct {
	Router  http.Handler
	Client  *booking.Client
	Metrics *obs.Metrics
	Logger  *slog.Logger
}

func SetAppConfig() *App {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	customRegistry := prometheus.NewRegistry()
	metrics := obs.NewMetrics(customRegistry)

	// only the credential comes from outside; everything else is a literal default
	client := booking.NewClient("https://"+booking.DefaultHost, os.Getenv("BOOKING_API_KEY"), logger, metrics)
	h := handlers.NewHandler(client, metrics, logger)

	router := routes.GetRoutes(h, metrics, logger)

	return &App{
		Router:  router,
		Client:  client,
		Metrics: metrics,
		Logger:  logger,
	}
}
