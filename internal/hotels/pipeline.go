package hotels

import (
	"context"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
)

const placeholder = "N/A"

// Summary is the flat, display-ready record assembled by the pipeline.
// Fields keep their placeholders until the call that populates them
// succeeds; it is never mutated after Run returns.
type Summary struct {
	Destination      string   `json:"destination"`
	HotelName        string   `json:"hotel_name"`
	HotelDescription string   `json:"hotel_description"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	HotelID          int64    `json:"booking_hotel_id"`
	HotelPhotoURLs   []string `json:"hotel_photo_url"`
	RoomPhotoURL     string   `json:"room_photo_url"`
}

// NewSummary returns a summary with every field at its placeholder; the
// destination starts as the raw query and is replaced once resolution
// succeeds.
func NewSummary(query string) *Summary {
	return &Summary{
		Destination:      query,
		HotelName:        placeholder,
		HotelDescription: placeholder,
		Currency:         placeholder,
		HotelPhotoURLs:   []string{},
		RoomPhotoURL:     placeholder,
	}
}

// Run executes the full hotel pipeline: resolve the destination, fetch the
// informational filters, search hotels, and pull room photos from the first
// hotel's details. Destination and hotel search failures abort the run;
// filter and details failures only leave their fields at placeholders.
func Run(ctx context.Context, c *booking.Client, logger *slog.Logger, query string, p StayParams) (*Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p = p.withDefaults()
	sum := NewSummary(query)

	dest, err := ResolveDestination(ctx, c, query)
	if err != nil {
		logger.Error("destination search failed", "query", query, "err", err)
		return nil, err
	}
	sum.Destination = dest.Label
	logger.Info("destination resolved",
		"label", dest.Label, "dest_id", dest.ID, "search_type", dest.SearchType)

	if total, err := Filters(ctx, c, dest, p); err != nil {
		logger.Warn("filter data unavailable", "err", err)
	} else {
		logger.Info("filter data retrieved",
			"total_hotels", total, "arrival", p.ArrivalDate, "departure", p.DepartureDate)
	}

	root, err := SearchHotels(ctx, c, dest, p)
	if err != nil {
		logger.Error("hotel search failed", "err", err)
		return nil, err
	}

	first := root.Get("data.hotels.0")
	sum.HotelID = first.Get("hotel_id").Int()
	sum.HotelName = stringOr(first.Get("property.name"), placeholder)
	sum.HotelDescription = stringOr(first.Get("accessibilityLabel"), placeholder)
	gross := first.Get("property.priceBreakdown.grossPrice")
	sum.Price = gross.Get("value").Float()
	sum.Currency = stringOr(gross.Get("currency"), placeholder)
	for _, u := range first.Get("property.photoUrls").Array() {
		sum.HotelPhotoURLs = append(sum.HotelPhotoURLs, u.String())
	}
	logger.Info("first hotel collected", "hotel", sum.HotelName, "hotel_id", sum.HotelID)

	details, err := Details(ctx, c, sum.HotelID, p)
	if err != nil {
		logger.Warn("hotel details unavailable", "hotel_id", sum.HotelID, "err", err)
		return sum, nil
	}
	if u := firstRoomPhoto(details.Get("data.rooms")); u != "" {
		sum.RoomPhotoURL = u
		logger.Info("room photo extracted", "url", u)
	} else {
		logger.Warn("no high-res room photos in details", "hotel_id", sum.HotelID)
	}
	return sum, nil
}

// firstRoomPhoto returns the first url_max1280 photo URL of the first room,
// or "" when the details carry no rooms or photos. Rooms arrive as an
// object keyed by room id.
func firstRoomPhoto(rooms gjson.Result) string {
	var urls []string
	rooms.ForEach(func(_, room gjson.Result) bool {
		for _, photo := range room.Get("photos").Array() {
			if u := photo.Get("url_max1280").String(); u != "" {
				urls = append(urls, u)
			}
		}
		return false // first room only
	})
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// stringOr falls back only when the key is absent; a present empty string
// is kept as-is.
func stringOr(v gjson.Result, fallback string) string {
	if !v.Exists() {
		return fallback
	}
	return v.String()
}
