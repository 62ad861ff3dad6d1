package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/chavishaarora/travel-sage-scribe/internal/hotels"
	"github.com/chavishaarora/travel-sage-scribe/internal/validator"
)

// HotelSearchRequest carries the free-text destination query plus the stay
// parameters parsed from an HTTP query string. Omitted knobs stay
// zero-valued and fall back to the hotels package defaults.
type HotelSearchRequest struct {
	City   string
	Params hotels.StayParams
}

func NewHotelSearchRequest(q url.Values) (*HotelSearchRequest, error) {
	if q.Get("city") == "" {
		return nil, fmt.Errorf("missing required param: city")
	}
	r := &HotelSearchRequest{
		City: q.Get("city"),
		Params: hotels.StayParams{
			ArrivalDate:   q.Get("arrival"),
			DepartureDate: q.Get("departure"),
			ChildrenAge:   q.Get("childrenAge"),
			LanguageCode:  q.Get("language"),
			CurrencyCode:  q.Get("currency"),
		},
	}

	intFields := []struct {
		key string
		dst *int
		min int
	}{
		{"adults", &r.Params.Adults, 1},
		{"roomQty", &r.Params.RoomQty, 1},
		{"priceMin", &r.Params.PriceMin, 0},
		{"priceMax", &r.Params.PriceMax, 0},
		{"pageNumber", &r.Params.PageNumber, 1},
	}
	for _, f := range intFields {
		s := q.Get(f.key)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < f.min {
			return nil, fmt.Errorf("invalid %s", f.key)
		}
		*f.dst = n
	}
	return r, nil
}

func (r *HotelSearchRequest) Validate() error {
	var errs []string

	city, err := validator.ValidateQuery(r.City)
	if err != nil {
		errs = append(errs, "city: "+err.Error())
	} else {
		r.City = city
	}

	switch {
	case r.Params.ArrivalDate != "" && r.Params.DepartureDate != "":
		if err := validator.ValidateDateRange(r.Params.ArrivalDate, r.Params.DepartureDate); err != nil {
			errs = append(errs, err.Error())
		}
	case r.Params.ArrivalDate != "":
		if _, err := validator.ValidateDate(r.Params.ArrivalDate); err != nil {
			errs = append(errs, err.Error())
		}
	case r.Params.DepartureDate != "":
		if _, err := validator.ValidateDate(r.Params.DepartureDate); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if r.Params.PriceMin > 0 && r.Params.PriceMax > 0 && r.Params.PriceMin > r.Params.PriceMax {
		errs = append(errs, "priceMin must not exceed priceMax")
	}
	if r.Params.LanguageCode != "" {
		v, err := validator.ValidateLanguage(r.Params.LanguageCode)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			r.Params.LanguageCode = v
		}
	}
	if r.Params.CurrencyCode != "" {
		v, err := validator.ValidateCurrency(r.Params.CurrencyCode)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			r.Params.CurrencyCode = v
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
