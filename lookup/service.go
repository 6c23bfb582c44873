// Package lookup runs the favicon and metadata pipeline:
// normalize, fetch, extract, rank.
package lookup

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/fwojciec/favmeta"
	"github.com/google/uuid"
)

// Service turns raw user input into an Outcome. It holds no per-lookup state;
// the only shared value is the sequence counter.
type Service struct {
	fetcher   favmeta.Fetcher
	extractor favmeta.Extractor
	logger    *slog.Logger
	newID     func() string

	seq atomic.Uint64
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDFunc sets the generator for Outcome.ID. Defaults to random UUIDs.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// NewService creates a new Service.
func NewService(fetcher favmeta.Fetcher, extractor favmeta.Extractor, opts ...Option) *Service {
	s := &Service{
		fetcher:   fetcher,
		extractor: extractor,
		logger:    slog.New(slog.DiscardHandler),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next reserves the next sequence number.
func (s *Service) Next() uint64 {
	return s.seq.Add(1)
}

// Lookup reserves a sequence number and runs the pipeline for input.
func (s *Service) Lookup(ctx context.Context, input string) *favmeta.Outcome {
	return s.Run(ctx, s.Next(), input)
}

// Run executes the pipeline for input under an already reserved sequence
// number. Errors never escape: they are reported in Outcome.Err with code
// EREQUIRED, EINVALIDURL or EFETCH, and Outcome.Result is then nil.
func (s *Service) Run(ctx context.Context, seq uint64, input string) (o *favmeta.Outcome) {
	o = &favmeta.Outcome{
		Seq:   seq,
		ID:    s.newID(),
		Input: input,
	}

	defer func() {
		s.logger.Info("lookup",
			"seq", o.Seq,
			"id", o.ID,
			"url", o.URL,
			"icons", iconCount(o.Result),
			"code", favmeta.ErrorCode(o.Err),
			"err", o.Err,
		)
	}()

	if input == "" {
		o.Err = favmeta.Errorf(favmeta.EREQUIRED, "URL required")
		return o
	}

	normalized, err := favmeta.NormalizeURL(input)
	if err != nil {
		o.Err = err
		return o
	}
	o.URL = normalized

	html, err := s.fetcher.Fetch(ctx, normalized)
	if err != nil {
		o.Err = favmeta.Errorf(favmeta.EFETCH, "fetching %s: %v", normalized, err)
		return o
	}

	page := s.extractor.Extract(html, normalized)
	o.Result = favmeta.NewExtractionResult(page, normalized)
	return o
}

func iconCount(r *favmeta.ExtractionResult) int {
	if r == nil {
		return 0
	}
	return len(r.Icons)
}
