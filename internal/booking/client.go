// Package booking holds the HTTP client for the booking-com RapidAPI host.
// Every call is a single blocking GET with the two static RapidAPI headers
// attached; there is no retry, pooling configuration or pagination here.
package booking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/chavishaarora/travel-sage-scribe/internal/obs"
)

// DefaultHost is the RapidAPI host serving the flight and hotel endpoints.
const DefaultHost = "booking-com15.p.rapidapi.com"

var (
	// ErrStatus marks a non-2xx upstream response. The error body is never
	// parsed as data.
	ErrStatus = errors.New("upstream returned non-2xx status")
	// ErrDecode marks a response body that is not valid JSON.
	ErrDecode = errors.New("upstream body is not valid JSON")
)

// Client issues requests against the booking API. A Client is safe for use
// by a single pipeline run; it carries no resolved identifiers itself.
type Client struct {
	baseURL    string
	host       string
	key        string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *obs.Metrics
}

// NewClient builds a client for baseURL (e.g. "https://"+DefaultHost). The
// x-rapidapi-host header is derived from the URL's host part. metrics may
// be nil.
func NewClient(baseURL, key string, logger *slog.Logger, m *obs.Metrics) *Client {
	host := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		host = u.Host
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		host:       host,
		key:        key,
		httpClient: &http.Client{},
		logger:     logger,
		metrics:    m,
	}
}

// Call issues one request for endpoint, a path whose query string is already
// encoded, and returns the raw body. Transport failures, non-2xx statuses
// and non-JSON bodies all surface as errors; callers must treat any error as
// "cannot proceed" and never touch the body in that case.
func (c *Client) Call(ctx context.Context, method, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.key)
	req.Header.Set("x-rapidapi-host", c.host)

	path := endpointPath(endpoint)
	c.logger.Debug("upstream request", "method", method, "endpoint", endpoint)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.ObserveUpstreamLatency(path, time.Since(start).Seconds())
	}
	if err != nil {
		c.fail(path, err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.fail(path, err)
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
		c.fail(path, err)
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		c.fail(path, ErrDecode)
		return nil, ErrDecode
	}
	return body, nil
}

func (c *Client) fail(path string, err error) {
	if c.metrics != nil {
		c.metrics.IncUpstreamError(path)
	}
	c.logger.Error("upstream call failed", "endpoint", path, "err", err)
}

// endpointPath strips the query string so metric labels stay low-cardinality.
func endpointPath(endpoint string) string {
	if i := strings.Index(endpoint, "?"); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
