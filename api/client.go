// Package api fetches pages of launches from the launch collection endpoint.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"launch-browser/launch"
	"launch-browser/log"

	"github.com/google/uuid"
)

const (
	// DefaultEndpoint is the public v3 launch collection.
	DefaultEndpoint = "https://api.spacexdata.com/v3/launches"
	// PageSize is the number of launches requested per page.
	PageSize = 10

	defaultUserAgent = "launch-browser/1.0"
	requestIDHeader  = "X-Request-ID"
)

var (
	// ErrMalformedResponse is returned when a body cannot be decoded as a launch array.
	ErrMalformedResponse = errors.New("malformed launch response")
	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("page must be 1 or greater")
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	RequestID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %s (request %s)", e.Status, e.RequestID)
}

// Client requests launch pages over HTTP.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient returns a client for the given collection endpoint. An empty
// endpoint means DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: missing host", endpoint)
	}

	c := &Client{
		endpoint:   u,
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the collection URL without paging parameters.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// PageURL returns the URL for the given page. Existing query parameters of
// the endpoint are kept.
func (c *Client) PageURL(page int) string {
	u := *c.endpoint
	q := u.Query()
	q.Set("limit", strconv.Itoa(PageSize))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchPage requests a single page. An empty, non-nil slice means the
// collection has no more launches.
func (c *Client) FetchPage(ctx context.Context, page int) ([]launch.Launch, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating request id: %w", err)
	}
	requestID := id.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL(page), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	log.InfoLog.Printf("[%s] fetching page %d from %s", requestID, page, c.endpoint.Host)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			RequestID:  requestID,
		}
	}

	body, err := readBody(res)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}

	launches, err := decodeLaunches(body)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}

	log.InfoLog.Printf("[%s] page %d returned %d launches in %s", requestID, page, len(launches), time.Since(start).Round(time.Millisecond))
	return launches, nil
}
