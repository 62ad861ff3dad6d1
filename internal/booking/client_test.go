package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCallAttachesHeaders(t *testing.T) {
	var gotKey, gotHost, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", testLogger(), nil)
	body, err := c.Call(context.Background(), http.MethodGet, "/api/v1/hotels/searchDestination?query=corsica")
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"status":true}` {
		t.Fatalf("unexpected body %q", body)
	}
	if gotKey != "secret" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	u, _ := url.Parse(srv.URL)
	if gotHost != u.Host {
		t.Fatalf("expected host header %q, got %q", u.Host, gotHost)
	}
	if gotPath != "/api/v1/hotels/searchDestination" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}

func TestCallNon2xxIsDistinctError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"not subscribed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", testLogger(), nil)
	body, err := c.Call(context.Background(), http.MethodGet, "/api/v1/flights/searchFlights?fromId=X")
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	if body != nil {
		t.Fatal("expected nil body on status error")
	}
}

func TestCallRejectsNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", testLogger(), nil)
	if _, err := c.Call(context.Background(), http.MethodGet, "/x"); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestCallTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, "k", testLogger(), nil)
	if _, err := c.Call(context.Background(), http.MethodGet, "/x"); err == nil {
		t.Fatal("expected transport error")
	}
}
