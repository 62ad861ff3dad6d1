package hotels

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
)

// Defaults applied when the caller leaves a StayParams field zero-valued.
const (
	DefaultArrivalDate     = "2025-11-10"
	DefaultDepartureDate   = "2025-11-15"
	DefaultAdults          = 2
	DefaultChildrenAge     = "0,17"
	DefaultRoomQty         = 1
	DefaultPriceMin        = 0
	DefaultPriceMax        = 1000
	DefaultPageNumber      = 1
	DefaultUnits           = "metric"
	DefaultTemperatureUnit = "c"
	DefaultLanguageCode    = "en-us"
	DefaultCurrency        = "EUR"
	DefaultLocation        = "NL"
)

var (
	// ErrUnresolved is returned before any network call when the destination
	// identifier or search type is missing.
	ErrUnresolved = errors.New("destination id or search type is missing")
	// ErrNoHotels is returned when the search response lists no hotels.
	ErrNoHotels = errors.New("no hotels in response")
	// errNoData marks a body whose data key is absent.
	errNoData = errors.New("response has no data")
)

// StayParams are the caller-tunable hotel search knobs. Field names mirror
// the provider's query parameter contract; zero values fall back to the
// package defaults.
type StayParams struct {
	ArrivalDate     string // YYYY-MM-DD
	DepartureDate   string // YYYY-MM-DD
	Adults          int
	ChildrenAge     string // comma-separated ages, e.g. "0,17"
	RoomQty         int
	PriceMin        int
	PriceMax        int
	PageNumber      int
	Units           string // metric or imperial
	TemperatureUnit string // c or f
	LanguageCode    string
	CurrencyCode    string
	Location        string // display country code
}

func (p StayParams) withDefaults() StayParams {
	if p.ArrivalDate == "" {
		p.ArrivalDate = DefaultArrivalDate
	}
	if p.DepartureDate == "" {
		p.DepartureDate = DefaultDepartureDate
	}
	if p.Adults == 0 {
		p.Adults = DefaultAdults
	}
	if p.ChildrenAge == "" {
		p.ChildrenAge = DefaultChildrenAge
	}
	if p.RoomQty == 0 {
		p.RoomQty = DefaultRoomQty
	}
	if p.PriceMax == 0 {
		p.PriceMax = DefaultPriceMax
	}
	if p.PageNumber == 0 {
		p.PageNumber = DefaultPageNumber
	}
	if p.Units == "" {
		p.Units = DefaultUnits
	}
	if p.TemperatureUnit == "" {
		p.TemperatureUnit = DefaultTemperatureUnit
	}
	if p.LanguageCode == "" {
		p.LanguageCode = DefaultLanguageCode
	}
	if p.CurrencyCode == "" {
		p.CurrencyCode = DefaultCurrency
	}
	if p.Location == "" {
		p.Location = DefaultLocation
	}
	return p
}

// stayValues holds the occupancy parameters shared by the filter and search
// endpoints.
func (p StayParams) stayValues(dest Destination) url.Values {
	v := url.Values{}
	v.Set("dest_id", dest.ID)
	v.Set("search_type", dest.SearchType)
	v.Set("arrival_date", p.ArrivalDate)
	v.Set("departure_date", p.DepartureDate)
	v.Set("adults", strconv.Itoa(p.Adults))
	v.Set("children_age", p.ChildrenAge)
	v.Set("room_qty", strconv.Itoa(p.RoomQty))
	return v
}

// Filters fetches aggregate filter data for the destination. Callers use it
// only for the total hotel count; a failure never blocks the rest of the
// pipeline.
func Filters(ctx context.Context, c *booking.Client, dest Destination, p StayParams) (int64, error) {
	if dest.ID == "" || dest.SearchType == "" {
		return 0, ErrUnresolved
	}
	p = p.withDefaults()

	body, err := c.Call(ctx, http.MethodGet, "/api/v1/hotels/getFilter?"+p.stayValues(dest).Encode())
	if err != nil {
		return 0, err
	}
	root := gjson.ParseBytes(body)
	if !root.Get("data").Exists() {
		return 0, errNoData
	}
	return root.Get("data.pagination.nbResultsTotal").Int(), nil
}

// SearchHotels runs the main hotel search for the resolved destination.
// Success requires at least one hotel under data.hotels; the whole response
// tree is returned for projection.
func SearchHotels(ctx context.Context, c *booking.Client, dest Destination, p StayParams) (gjson.Result, error) {
	if dest.ID == "" || dest.SearchType == "" {
		return gjson.Result{}, ErrUnresolved
	}
	p = p.withDefaults()

	v := p.stayValues(dest)
	v.Set("page_number", strconv.Itoa(p.PageNumber))
	v.Set("price_min", strconv.Itoa(p.PriceMin))
	v.Set("price_max", strconv.Itoa(p.PriceMax))
	v.Set("units", p.Units)
	v.Set("temperature_unit", p.TemperatureUnit)
	v.Set("languagecode", p.LanguageCode)
	v.Set("currency_code", p.CurrencyCode)
	v.Set("location", p.Location)

	body, err := c.Call(ctx, http.MethodGet, "/api/v1/hotels/searchHotels?"+v.Encode())
	if err != nil {
		return gjson.Result{}, err
	}

	root := gjson.ParseBytes(body)
	if len(root.Get("data.hotels").Array()) == 0 {
		return gjson.Result{}, ErrNoHotels
	}
	return root, nil
}

// Details fetches room-level detail for one hotel.
func Details(ctx context.Context, c *booking.Client, hotelID int64, p StayParams) (gjson.Result, error) {
	p = p.withDefaults()

	v := url.Values{}
	v.Set("hotel_id", strconv.FormatInt(hotelID, 10))
	v.Set("adults", strconv.Itoa(p.Adults))
	v.Set("children_age", p.ChildrenAge)
	v.Set("room_qty", strconv.Itoa(p.RoomQty))
	v.Set("units", p.Units)
	v.Set("arrival_date", p.ArrivalDate)
	v.Set("departure_date", p.DepartureDate)
	v.Set("temperature_unit", p.TemperatureUnit)
	v.Set("languagecode", p.LanguageCode)
	v.Set("currency_code", p.CurrencyCode)

	body, err := c.Call(ctx, http.MethodGet, "/api/v1/hotels/getHotelDetails?"+v.Encode())
	if err != nil {
		return gjson.Result{}, err
	}

	root := gjson.ParseBytes(body)
	if !root.Get("data").Exists() {
		return gjson.Result{}, errNoData
	}
	return root, nil
}
