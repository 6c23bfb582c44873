package lookup

import (
	"context"
	"sync"

	"github.com/fwojciec/favmeta"
)

// Session holds the single current outcome shown to a user. Lookups may
// overlap; an outcome is accepted only if no newer lookup was started in the
// meantime, so a slow response can never overwrite a newer one.
//
// Session is safe for concurrent use.
type Session struct {
	service *Service

	mu      sync.Mutex
	latest  uint64
	current *favmeta.Outcome
}

// NewSession creates a new Session backed by service.
func NewSession(service *Service) *Session {
	return &Session{service: service}
}

// Begin reserves the sequence number of a new lookup and marks it as the
// latest. Any lookup begun earlier becomes stale.
func (s *Session) Begin() uint64 {
	seq := s.service.Next()

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.latest {
		s.latest = seq
	}
	return seq
}

// Run executes the lookup reserved by Begin and reports whether its outcome
// became the current one. Stale outcomes are returned but not stored.
func (s *Session) Run(ctx context.Context, seq uint64, input string) (*favmeta.Outcome, bool) {
	o := s.service.Run(ctx, seq, input)
	return o, s.accept(o)
}

// Lookup begins and runs a lookup for input.
func (s *Session) Lookup(ctx context.Context, input string) (*favmeta.Outcome, bool) {
	return s.Run(ctx, s.Begin(), input)
}

func (s *Session) accept(o *favmeta.Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.Seq != s.latest {
		return false
	}
	// A failed outcome replaces the previous result; nothing stale survives.
	s.current = o
	return true
}

// Current returns the accepted outcome, or nil before the first one.
func (s *Session) Current() *favmeta.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Loading reports whether the most recently started lookup is still pending.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == 0 {
		return false
	}
	return s.current == nil || s.current.Seq != s.latest
}
