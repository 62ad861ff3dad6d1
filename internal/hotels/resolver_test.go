package hotels

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

func TestResolveDestinationTakesFirstResult(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":[
			{"dest_id":"1411","label":"Corsica, France","search_type":"region"},
			{"dest_id":"9999","label":"Corsica Hotel","search_type":"hotel"}
		]}`))
	}))

	dest, err := ResolveDestination(context.Background(), c, "corsica")
	if err != nil {
		t.Fatal(err)
	}
	if dest.ID != "1411" || dest.Label != "Corsica, France" {
		t.Fatalf("expected first result, got %+v", dest)
	}
}

func TestResolveDestinationUppercasesSearchType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"region", "REGION"},
		{"City", "CITY"},
		{"dIsTrIcT", "DISTRICT"},
		{"HOTEL", "HOTEL"},
	}
	for _, tt := range tests {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":true,"data":[{"dest_id":"1","label":"X","search_type":"` + tt.raw + `"}]}`))
		}))
		dest, err := ResolveDestination(context.Background(), c, "x")
		if err != nil {
			t.Fatal(err)
		}
		if dest.SearchType != tt.want {
			t.Fatalf("search_type %q: expected %q, got %q", tt.raw, tt.want, dest.SearchType)
		}
	}
}

func TestResolveDestinationEmptyListFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":[]}`))
	}))

	dest, err := ResolveDestination(context.Background(), c, "nowhere")
	if !errors.Is(err, ErrNoDestination) {
		t.Fatalf("expected ErrNoDestination, got %v", err)
	}
	if dest.ID != "" {
		t.Fatalf("identifier must stay unset on failure, got %q", dest.ID)
	}
}
