// Package neynar provides a limited implementation of the Neynar v2
// Farcaster REST API, covering the read endpoints the farcaster provider
// needs: user search and lookup, cast search and retrieval, conversations,
// trending feeds, channel search and balance lookup.
package neynar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Neynar API endpoint.
const DefaultBaseURL = "https://api.neynar.com/v2/farcaster"

// defRatePerMinute matches the request budget of the standard Neynar plan.
const defRatePerMinute = 300

// Client is an authenticated Neynar API client.  The zero value is not
// usable; construct with [New].
type Client struct {
	cl      *http.Client
	apiKey  string
	baseURL string
	lim     *rate.Limiter
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithLimiter overrides the request rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		if l != nil {
			c.lim = l
		}
	}
}

// New creates a Neynar API client.  An empty apiKey is permitted: the client
// constructs successfully, and it is the caller's responsibility to gate
// calls on the credential being present.
func New(apiKey string, opt ...Option) *Client {
	c := &Client{
		cl:      &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		lim:     rate.NewLimiter(rate.Every(time.Minute/defRatePerMinute), 5),
	}
	for _, fn := range opt {
		fn(c)
	}
	return c
}

// APIError is returned for any non-200 response from the Neynar API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("neynar: server returned %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether the error belongs to the transient server-side
// failure class (502, 503, 504) that the availability probe is allowed to
// retry.
func (e *APIError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// errorResponse is the error body shape returned by the API.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// get issues an authenticated GET to path with the given query values and
// decodes the JSON response into v.
func (c *Client) get(ctx context.Context, path string, q url.Values, v any) error {
	if err := c.lim.Wait(ctx); err != nil {
		return err
	}
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.cl.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiErr(resp)
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("neynar: decode %s: %w", path, err)
	}
	return nil
}

// apiErr constructs an *APIError from a non-200 response, preferring the
// message from the JSON error body when one is present.
func apiErr(resp *http.Response) error {
	e := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return e
	}
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		e.Message = er.Message
	}
	return e
}
