package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/chavishaarora/travel-sage-scribe/internal/flights"
	"github.com/chavishaarora/travel-sage-scribe/internal/validator"
)

// FlightSearchRequest carries the free-text airport queries plus the search
// knobs parsed from an HTTP query string. Omitted knobs stay zero-valued
// and fall back to the flights package defaults.
type FlightSearchRequest struct {
	From   string
	To     string
	Params flights.SearchParams
}

func NewFlightSearchRequest(q url.Values) (*FlightSearchRequest, error) {
	if q.Get("from") == "" || q.Get("to") == "" {
		return nil, fmt.Errorf("missing required params: from, to")
	}
	r := &FlightSearchRequest{
		From: q.Get("from"),
		To:   q.Get("to"),
		Params: flights.SearchParams{
			Stops:        q.Get("stops"),
			Children:     q.Get("children"),
			Sort:         q.Get("sort"),
			CabinClass:   q.Get("cabinClass"),
			CurrencyCode: q.Get("currency"),
			DepartDate:   q.Get("departDate"),
		},
	}
	if s := q.Get("adults"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid adults")
		}
		r.Params.Adults = n
	}
	if s := q.Get("pageNo"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid pageNo")
		}
		r.Params.PageNo = n
	}
	return r, nil
}

func (r *FlightSearchRequest) Validate() error {
	var errs []string

	from, err := validator.ValidateQuery(r.From)
	if err != nil {
		errs = append(errs, "from: "+err.Error())
	} else {
		r.From = from
	}

	to, err := validator.ValidateQuery(r.To)
	if err != nil {
		errs = append(errs, "to: "+err.Error())
	} else {
		r.To = to
	}

	if r.Params.DepartDate != "" {
		if _, err := validator.ValidateDate(r.Params.DepartDate); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if r.Params.Stops != "" {
		v, err := validator.ValidateStops(r.Params.Stops)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			r.Params.Stops = v
		}
	}
	if r.Params.Sort != "" {
		v, err := validator.ValidateSort(r.Params.Sort)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			r.Params.Sort = v
		}
	}
	if r.Params.CabinClass != "" {
		v, err := validator.ValidateCabinClass(r.Params.CabinClass)
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			r.Params.CabinClass = v
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
