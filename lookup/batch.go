package lookup

import (
	"context"

	"github.com/fwojciec/favmeta"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchLimit is the number of concurrent lookups in LookupAll.
const DefaultBatchLimit = 3

// LookupAll runs one lookup per input, at most limit at a time, and returns
// the outcomes in input order. Failures are reported per outcome.
func (s *Service) LookupAll(ctx context.Context, inputs []string, limit int) []*favmeta.Outcome {
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	outcomes := make([]*favmeta.Outcome, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, input := range inputs {
		g.Go(func() error {
			outcomes[i] = s.Lookup(ctx, input)
			return nil
		})
	}
	_ = g.Wait() // lookups report errors in their outcomes

	return outcomes
}
