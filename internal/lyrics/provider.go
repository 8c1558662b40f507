package lyrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/pulse/internal/shared"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "pulse (https://github.com/desertthunder/pulse)"

// ErrNotFound is reported by a [Provider] that has no lyrics for a query.
var ErrNotFound = errors.New("lyrics not found")

// Provider fetches raw lyrics text from a remote lyrics API.
//
// FetchLyrics returns non-empty text when lyrics exist, an error matching [ErrNotFound] when the
// provider has none, and any other error when the lookup itself failed.
type Provider interface {
	Name() string
	FetchLyrics(ctx context.Context, artist, title string) (string, error)
}

// UpstreamError describes a failed provider request: an unexpected status or a transport error.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s request failed (%d): %s", e.Provider, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{shared.ErrAPIRequest}
	}
	return []error{shared.ErrAPIRequest, e.Err}
}

// ClientOption configures the HTTP client shared by the provider implementations.
type ClientOption func(*client)

// WithUserAgent sets the User-Agent header sent to providers.
func WithUserAgent(ua string) ClientOption {
	return func(c *client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLimiter gates every outbound request on l.
func WithLimiter(l *rate.Limiter) ClientOption {
	return func(c *client) { c.limiter = l }
}

type client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

func newClient(name, baseURL string, httpClient *http.Client, opts ...ClientOption) client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := client{name: name, baseURL: baseURL, httpClient: httpClient, userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// get performs a single GET against the provider. A 404 maps to [ErrNotFound]; any other
// non-2xx status or transport failure maps to an [*UpstreamError]. On success the body is returned.
func (c client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &UpstreamError{Provider: c.name, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Provider: c.name, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Provider: c.name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Provider: c.name, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &UpstreamError{Provider: c.name, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
