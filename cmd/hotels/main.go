// Demonstration entry point for the hotel pipeline: runs the full search
// for a fixed city and prints the assembled summary as indented JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
	"github.com/chavishaarora/travel-sage-scribe/internal/hotels"
)

const cityQuery = "corsica"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := booking.NewClient("https://"+booking.DefaultHost, os.Getenv("BOOKING_API_KEY"), logger, nil)

	summary, err := hotels.Run(context.Background(), client, logger, cityQuery, hotels.StayParams{})
	if err != nil {
		logger.Error("hotel search aborted", "err", err)
		return
	}

	out, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		logger.Error("encode summary", "err", err)
		return
	}
	fmt.Println(string(out))
}
