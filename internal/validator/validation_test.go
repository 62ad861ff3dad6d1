package validator

import "testing"

func TestValidateQuery(t *testing.T) {
	if _, err := ValidateQuery(" "); err == nil {
		t.Fatal("expected error for blank query")
	}
	q, err := ValidateQuery("  Mumbai ")
	if err != nil || q != "Mumbai" {
		t.Fatalf("expected trimmed query, got %q, %v", q, err)
	}
}

func TestValidateDate(t *testing.T) {
	if _, err := ValidateDate("2025-12-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateDate("01/12/2025"); err == nil {
		t.Fatal("expected error for wrong format")
	}
}

func TestValidateDateRange(t *testing.T) {
	if err := ValidateDateRange("2025-11-10", "2025-11-15"); err != nil {
		t.Fatal(err)
	}
	if err := ValidateDateRange("2025-11-15", "2025-11-10"); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if err := ValidateDateRange("2025-11-10", "2025-11-10"); err == nil {
		t.Fatal("expected error for zero-night stay")
	}
}

func TestValidateCurrency(t *testing.T) {
	c, err := ValidateCurrency("eur")
	if err != nil || c != "EUR" {
		t.Fatalf("expected EUR, got %q, %v", c, err)
	}
	if _, err := ValidateCurrency("notacode"); err == nil {
		t.Fatal("expected error for bogus currency")
	}
}

func TestValidateLanguage(t *testing.T) {
	l, err := ValidateLanguage("en-US")
	if err != nil || l != "en-us" {
		t.Fatalf("expected en-us, got %q, %v", l, err)
	}
	if _, err := ValidateLanguage("!!"); err == nil {
		t.Fatal("expected error for bogus language tag")
	}
}

func TestValidateEnums(t *testing.T) {
	if c, err := ValidateCabinClass("economy"); err != nil || c != "ECONOMY" {
		t.Fatalf("expected ECONOMY, got %q, %v", c, err)
	}
	if _, err := ValidateCabinClass("COACH"); err == nil {
		t.Fatal("expected error for unknown cabin class")
	}
	if s, err := ValidateStops("NONE"); err != nil || s != "none" {
		t.Fatalf("expected none, got %q, %v", s, err)
	}
	if _, err := ValidateStops("three"); err == nil {
		t.Fatal("expected error for unknown stops filter")
	}
	if s, err := ValidateSort("cheapest"); err != nil || s != "CHEAPEST" {
		t.Fatalf("expected CHEAPEST, got %q, %v", s, err)
	}
	if _, err := ValidateSort("FASTEST"); err == nil {
		t.Fatal("expected error for unknown sort mode")
	}
}
