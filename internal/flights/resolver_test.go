package flights

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chavishaarora/travel-sage-scribe/internal/booking"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *booking.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return booking.NewClient(srv.URL, "test-key", testLogger(), nil)
}

func TestResolveAirportPicksFirstAirportType(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "Mumbai" {
			t.Errorf("expected query Mumbai, got %q", got)
		}
		w.Write([]byte(`{"status":true,"data":[
			{"id":"BOM.CITY","type":"CITY","name":"Mumbai"},
			{"id":"BOM.AIRPORT","type":"AIRPORT","name":"Chhatrapati Shivaji International Airport","code":"BOM","cityName":"Mumbai"},
			{"id":"XYZ.AIRPORT","type":"AIRPORT","name":"Other Airport"}
		]}`))
	}))

	loc, err := ResolveAirport(context.Background(), c, "Mumbai")
	if err != nil {
		t.Fatal(err)
	}
	if loc.ID != "BOM.AIRPORT" {
		t.Fatalf("expected BOM.AIRPORT, got %q", loc.ID)
	}
	if loc.Name != "Chhatrapati Shivaji International Airport" {
		t.Fatalf("unexpected name %q", loc.Name)
	}
}

func TestResolveAirportNoAirportTypeFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":[
			{"id":"PAR.CITY","type":"CITY","name":"Paris"},
			{"id":"IDF.REGION","type":"REGION","name":"Ile-de-France"}
		]}`))
	}))

	loc, err := ResolveAirport(context.Background(), c, "Paris")
	if !errors.Is(err, ErrNoAirport) {
		t.Fatalf("expected ErrNoAirport, got %v", err)
	}
	if loc.ID != "" {
		t.Fatalf("identifier must stay unset on failure, got %q", loc.ID)
	}
}

func TestResolveAirportEmptyResponseFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":[]}`))
	}))

	if _, err := ResolveAirport(context.Background(), c, "Nowhere"); !errors.Is(err, ErrNoAirport) {
		t.Fatalf("expected ErrNoAirport, got %v", err)
	}
}
