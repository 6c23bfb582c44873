package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/favmeta"
)

// Ensure LoggingExtractor implements favmeta.Extractor.
var _ favmeta.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   favmeta.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next favmeta.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string, baseURL string) (page *favmeta.Page) {
	defer func(begin time.Time) {
		found := page
		if found == nil {
			found = &favmeta.Page{}
		}
		e.logger.Debug("extract",
			"url", baseURL,
			"title", found.Title != "",
			"keywords", found.Keywords != "",
			"description", found.Description != "",
			"icons", len(found.Icons),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html, baseURL)
}
