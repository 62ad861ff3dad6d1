package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func ValidateQuery(s string) (string, error) {
	q := strings.TrimSpace(s)
	if len(q) < 2 {
		return "", errors.New("invalid location query")
	}
	return q, nil
}

func ValidateDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateStr)
	}
	return t, nil
}

func ValidateDateRange(arrival, departure string) error {
	a, err := ValidateDate(arrival)
	if err != nil {
		return err
	}
	d, err := ValidateDate(departure)
	if err != nil {
		return err
	}
	if !d.After(a) {
		return errors.New("departure date must be after arrival date")
	}
	return nil
}

// ValidateCurrency normalizes an ISO 4217 code, e.g. "eur" -> "EUR".
func ValidateCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q", code)
	}
	return unit.String(), nil
}

// ValidateLanguage normalizes a BCP 47 tag to the lowercase form the
// booking API expects, e.g. "en-US" -> "en-us".
func ValidateLanguage(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q", tag)
	}
	return strings.ToLower(t.String()), nil
}

var cabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

func ValidateCabinClass(s string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if !cabinClasses[c] {
		return "", fmt.Errorf("invalid cabin class %q", s)
	}
	return c, nil
}

var stopsFilters = map[string]bool{"none": true, "one": true, "two": true, "all": true}

func ValidateStops(s string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !stopsFilters[v] {
		return "", fmt.Errorf("invalid stops filter %q", s)
	}
	return v, nil
}

var sortModes = map[string]bool{"BEST": true, "CHEAPEST": true, "DURATION": true}

func ValidateSort(s string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if !sortModes[v] {
		return "", fmt.Errorf("invalid sort mode %q", s)
	}
	return v, nil
}
