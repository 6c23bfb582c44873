// Package http provides HTTP-based implementations of favmeta.Fetcher: a
// RelayFetcher that goes through a CORS-bypass relay service, and a Fetcher
// that requests the target directly.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/favmeta"
)

// UserAgent is sent with every outbound request.
const UserAgent = "favmeta/1.0 (+https://github.com/fwojciec/favmeta)"

// Ensure Fetcher implements favmeta.Fetcher at compile time.
var _ favmeta.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML directly from the target URL.
// It does not execute JavaScript.
type Fetcher struct {
	client *http.Client
}

// Option configures a Fetcher or RelayFetcher.
type Option func(*options)

type options struct {
	timeout  time.Duration
	client   *http.Client
	endpoint string
}

// WithTimeout sets a client timeout. Zero, the default, keeps the
// platform default of no client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithClient sets the HTTP client. WithTimeout is ignored when a client is given.
func WithClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

func newOptions(opts []Option) *options {
	o := &options{endpoint: DefaultRelayEndpoint}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: o.timeout}
	}
	return o
}

// NewFetcher creates a new direct Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	o := newOptions(opts)
	return &Fetcher{client: o.client}
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
