package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fwojciec/favmeta"
)

// DefaultRelayEndpoint is the public relay used when none is configured.
const DefaultRelayEndpoint = "https://api.allorigins.win/get"

// WithEndpoint sets the relay endpoint. The target is passed in its "url"
// query parameter.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// Ensure RelayFetcher implements favmeta.Fetcher at compile time.
var _ favmeta.Fetcher = (*RelayFetcher)(nil)

// RelayFetcher retrieves a page through a relay service that fetches the
// target server-side and answers with {"status":{"http_code":N},"contents":"..."}.
// Each Fetch issues exactly one request; there is no retry or caching.
type RelayFetcher struct {
	client   *http.Client
	endpoint string
}

// NewRelayFetcher creates a new RelayFetcher.
func NewRelayFetcher(opts ...Option) *RelayFetcher {
	o := newOptions(opts)
	return &RelayFetcher{
		client:   o.client,
		endpoint: o.endpoint,
	}
}

type relayResponse struct {
	Contents string `json:"contents"`
	Status   struct {
		HTTPCode int `json:"http_code"`
	} `json:"status"`
}

// Fetch asks the relay for targetURL and returns the relayed contents verbatim.
// It fails if the request errors, the relay answers with a non-200 status,
// the body is not valid JSON, or the relayed status is not exactly 200.
func (f *RelayFetcher) Fetch(ctx context.Context, targetURL string) (string, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return "", fmt.Errorf("relay endpoint: %w", err)
	}
	q := u.Query()
	q.Set("url", targetURL)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relay HTTP %d for %s", resp.StatusCode, targetURL)
	}

	var body relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding relay response: %w", err)
	}

	if body.Status.HTTPCode != http.StatusOK {
		return "", fmt.Errorf("relayed HTTP %d for %s", body.Status.HTTPCode, targetURL)
	}

	return body.Contents, nil
}

// Close is a no-op.
func (f *RelayFetcher) Close() error {
	return nil
}
