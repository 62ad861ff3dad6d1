// Package hotels implements the hotel search pipeline: resolve a free-text
// destination, fetch informational filters, search hotels, and pull room
// photos from the first hotel's details into a flat summary record.
package hotels

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pquerna/ffjson/ffjson"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
)

// Destination is a resolved hotel-search target: the provider's dest_id,
// its display label, and the search_type tag the search endpoints require.
type Destination struct {
	ID         string
	Label      string
	SearchType string
}

// ErrNoDestination is returned when a destination search yields no results.
var ErrNoDestination = errors.New("no destinations for query")

type destinationResponse struct {
	Status bool `json:"status"`
	Data   []struct {
		DestID     string `json:"dest_id"`
		Label      string `json:"label"`
		SearchType string `json:"search_type"`
		Name       string `json:"name"`
	} `json:"data"`
}

// ResolveDestination maps a free-text query to the provider's destination
// identifier. Unlike the flight resolver there is no type filter; the first
// result wins. The search_type is normalized to upper case because the
// hotel-search endpoint rejects lowercase values.
func ResolveDestination(ctx context.Context, c *booking.Client, query string) (Destination, error) {
	v := url.Values{}
	v.Set("query", query)

	body, err := c.Call(ctx, http.MethodGet, "/api/v1/hotels/searchDestination?"+v.Encode())
	if err != nil {
		return Destination{}, err
	}

	var resp destinationResponse
	if err := ffjson.NewDecoder().Decode(body, &resp); err != nil {
		return Destination{}, fmt.Errorf("decode destination search: %w", err)
	}
	if len(resp.Data) == 0 {
		return Destination{}, fmt.Errorf("%w: %q", ErrNoDestination, query)
	}

	first := resp.Data[0]
	return Destination{
		ID:         first.DestID,
		Label:      first.Label,
		SearchType: strings.ToUpper(first.SearchType),
	}, nil
}
