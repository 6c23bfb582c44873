package favmeta

import "context"

// Fetcher retrieves the HTML of a target URL.
// The default implementation relays the request through a third-party
// CORS-bypass service; alternatives fetch directly or through a browser.
type Fetcher interface {
	// Fetch returns the raw HTML of url. Any non-success condition is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
