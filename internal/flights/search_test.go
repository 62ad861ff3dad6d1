package flights

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
)

const minimalOffersBody = `{"status":true,"data":{"flightOffers":[{"token":"t1"}],"aggregation":{"totalCount":1}}}`

func TestSearchRefusesUnresolvedWithoutNetworkCall(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(minimalOffersBody))
	}))

	_, err := Search(context.Background(), c, Location{}, Location{ID: "DEL.AIRPORT"}, SearchParams{})
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	_, err = Search(context.Background(), c, Location{ID: "BOM.AIRPORT"}, Location{}, SearchParams{})
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Fatalf("expected no network calls, got %d", n)
	}
}

func TestSearchAppliesDefaultsToQuery(t *testing.T) {
	var got url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(minimalOffersBody))
	}))

	origin := Location{ID: "BOM.AIRPORT"}
	dest := Location{ID: "DEL.AIRPORT"}
	if _, err := Search(context.Background(), c, origin, dest, SearchParams{Adults: 2}); err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"fromId":        "BOM.AIRPORT",
		"toId":          "DEL.AIRPORT",
		"stops":         "none",
		"pageNo":        "1",
		"adults":        "2", // caller override wins
		"children":      "0,17",
		"sort":          "BEST",
		"cabinClass":    "ECONOMY",
		"currency_code": "EUR",
		"departDate":    "2025-12-01",
	}
	for k, v := range want {
		if got.Get(k) != v {
			t.Errorf("param %s: expected %q, got %q", k, v, got.Get(k))
		}
	}
}

func TestSearchEmptyOffersFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{"flightOffers":[]}}`))
	}))

	_, err := Search(context.Background(), c, Location{ID: "A"}, Location{ID: "B"}, SearchParams{})
	if !errors.Is(err, ErrNoOffers) {
		t.Fatalf("expected ErrNoOffers, got %v", err)
	}
}

func TestSearchMissingDataFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"bad request"}`))
	}))

	_, err := Search(context.Background(), c, Location{ID: "A"}, Location{ID: "B"}, SearchParams{})
	if !errors.Is(err, ErrNoOffers) {
		t.Fatalf("expected ErrNoOffers, got %v", err)
	}
}
