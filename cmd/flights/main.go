// Demonstration entry point for the flight pipeline: resolves both airports
// for a fixed query pair, searches, and prints the projected offers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
	"github.com/chavishaarora/travel-sage-scribe/internal/flights"
)

const (
	originQuery      = "Mumbai"
	destinationQuery = "New Delhi"
	departureDate    = "2025-12-01"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := booking.NewClient("https://"+booking.DefaultHost, os.Getenv("BOOKING_API_KEY"), logger, nil)

	offers, err := flights.Run(context.Background(), client, logger,
		originQuery, destinationQuery, flights.SearchParams{DepartDate: departureDate})
	if err != nil {
		logger.Error("flight search aborted", "err", err)
		return
	}

	fmt.Printf("\n--- Displaying Top %d Flight Offers ---\n", len(offers))
	flights.Render(os.Stdout, offers)
}
