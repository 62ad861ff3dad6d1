// Package flights implements the flight search pipeline: resolve both
// airports from free text, search offers for them, and project the deeply
// nested response into display records.
package flights

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pquerna/ffjson/ffjson"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
)

// Location is a resolved airport: the provider's opaque identifier plus its
// display name.
type Location struct {
	ID   string
	Name string
}

// ErrNoAirport is returned when a destination search yields no result of
// type AIRPORT.
var ErrNoAirport = errors.New("no airport result for query")

type destinationResponse struct {
	Status bool `json:"status"`
	Data   []struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Name     string `json:"name"`
		Code     string `json:"code"`
		CityName string `json:"cityName"`
	} `json:"data"`
}

// ResolveAirport maps a free-text city or airport query to the provider's
// airport identifier. Only results of type AIRPORT are accepted; city and
// region identifiers cannot be fed to the flight search endpoint.
func ResolveAirport(ctx context.Context, c *booking.Client, query string) (Location, error) {
	v := url.Values{}
	v.Set("query", query)

	body, err := c.Call(ctx, http.MethodGet, "/api/v1/flights/searchDestination?"+v.Encode())
	if err != nil {
		return Location{}, err
	}

	var resp destinationResponse
	if err := ffjson.NewDecoder().Decode(body, &resp); err != nil {
		return Location{}, fmt.Errorf("decode destination search: %w", err)
	}

	for _, item := range resp.Data {
		if item.Type == "AIRPORT" {
			return Location{ID: item.ID, Name: item.Name}, nil
		}
	}
	return Location{}, fmt.Errorf("%w: %q", ErrNoAirport, query)
}
