package flights

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
)

// Defaults applied when the caller leaves a SearchParams field zero-valued.
const (
	DefaultStops      = "none"
	DefaultPageNo     = 1
	DefaultAdults     = 1
	DefaultChildren   = "0,17"
	DefaultSort       = "BEST"
	DefaultCabinClass = "ECONOMY"
	DefaultCurrency   = "EUR"
	DefaultDepartDate = "2025-12-01"
)

var (
	// ErrUnresolved is returned before any network call when an airport
	// identifier is missing.
	ErrUnresolved = errors.New("origin or destination airport is unresolved")
	// ErrNoOffers is returned when the response carries no flight offers.
	ErrNoOffers = errors.New("no flight offers in response")
)

// SearchParams are the caller-tunable flight search knobs. Field names
// mirror the provider's query parameter contract; zero values fall back to
// the package defaults.
type SearchParams struct {
	Stops        string // none, one, two, all
	PageNo       int
	Adults       int
	Children     string // comma-separated ages, e.g. "0,17"
	Sort         string // BEST, CHEAPEST, DURATION
	CabinClass   string // ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST
	CurrencyCode string
	DepartDate   string // YYYY-MM-DD
}

func (p SearchParams) withDefaults() SearchParams {
	if p.Stops == "" {
		p.Stops = DefaultStops
	}
	if p.PageNo == 0 {
		p.PageNo = DefaultPageNo
	}
	if p.Adults == 0 {
		p.Adults = DefaultAdults
	}
	if p.Children == "" {
		p.Children = DefaultChildren
	}
	if p.Sort == "" {
		p.Sort = DefaultSort
	}
	if p.CabinClass == "" {
		p.CabinClass = DefaultCabinClass
	}
	if p.CurrencyCode == "" {
		p.CurrencyCode = DefaultCurrency
	}
	if p.DepartDate == "" {
		p.DepartDate = DefaultDepartDate
	}
	return p
}

// Search issues the flight search for two resolved airports. It refuses to
// touch the network while either identifier is empty, and reports success
// only when the response carries a non-empty data.flightOffers collection.
// The whole response tree is returned so the projector can also reach the
// airline directory under data.aggregation.
func Search(ctx context.Context, c *booking.Client, origin, dest Location, p SearchParams) (gjson.Result, error) {
	if origin.ID == "" || dest.ID == "" {
		return gjson.Result{}, ErrUnresolved
	}
	p = p.withDefaults()

	v := url.Values{}
	v.Set("fromId", origin.ID)
	v.Set("toId", dest.ID)
	v.Set("stops", p.Stops)
	v.Set("pageNo", strconv.Itoa(p.PageNo))
	v.Set("adults", strconv.Itoa(p.Adults))
	v.Set("children", p.Children)
	v.Set("sort", p.Sort)
	v.Set("cabinClass", p.CabinClass)
	v.Set("currency_code", p.CurrencyCode)
	v.Set("departDate", p.DepartDate)

	body, err := c.Call(ctx, http.MethodGet, "/api/v1/flights/searchFlights?"+v.Encode())
	if err != nil {
		return gjson.Result{}, err
	}

	root := gjson.ParseBytes(body)
	if len(root.Get("data.flightOffers").Array()) == 0 {
		return gjson.Result{}, ErrNoOffers
	}
	return root, nil
}
