package flights

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
)

// Run executes the full pipeline for a pair of free-text queries: resolve
// the origin airport, resolve the destination airport, search, project.
// Each stage short-circuits the run on failure; no dependent call is issued
// once a prerequisite is missing.
func Run(ctx context.Context, c *booking.Client, logger *slog.Logger, fromQuery, toQuery string, p SearchParams) ([]Offer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	origin, err := ResolveAirport(ctx, c, fromQuery)
	if err != nil {
		logger.Error("origin airport search failed", "query", fromQuery, "err", err)
		return nil, err
	}
	logger.Info("origin airport resolved", "query", fromQuery, "airport", origin.Name, "id", origin.ID)

	dest, err := ResolveAirport(ctx, c, toQuery)
	if err != nil {
		logger.Error("destination airport search failed", "query", toQuery, "err", err)
		return nil, err
	}
	logger.Info("destination airport resolved", "query", toQuery, "airport", dest.Name, "id", dest.ID)

	root, err := Search(ctx, c, origin, dest, p)
	if err != nil {
		logger.Error("flight search failed", "err", err)
		return nil, err
	}
	logger.Info("flight search succeeded",
		"total_count", root.Get("data.aggregation.totalCount").Int())

	return ProjectOffers(root), nil
}

// Render prints offers in the console form used by the demo entry point.
func Render(w io.Writer, offers []Offer) {
	for i, o := range offers {
		fmt.Fprintf(w, "\n--- Offer %d ---\n", i+1)
		fmt.Fprintf(w, "Price: %s %s\n", o.Price, o.Currency)
		fmt.Fprintf(w, "Trip Type: %s\n", o.TripType)
		fmt.Fprintf(w, "Token: %s\n", o.Token)
		for _, s := range o.Segments {
			fmt.Fprintf(w, "  %s segment\n", s.Label)
			fmt.Fprintf(w, "  Airline: %s (%s)\n", s.Airline, s.CarrierCode)
			fmt.Fprintf(w, "  Route: %s (%s) -> %s (%s)\n",
				s.DepartureAirport, s.DepartureTime, s.ArrivalAirport, s.ArrivalTime)
			fmt.Fprintf(w, "  Flight No: %s\n", s.FlightNumber)
			fmt.Fprintf(w, "  Stops: %d\n", s.Stops)
		}
	}
}
