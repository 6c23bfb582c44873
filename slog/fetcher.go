// Package slog provides logging decorators for favmeta interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/favmeta"
)

// Ensure LoggingFetcher implements favmeta.Fetcher.
var _ favmeta.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Fetch failures are surfaced to
// users as a generic message, so this is where the cause is recorded.
type LoggingFetcher struct {
	next   favmeta.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next favmeta.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
