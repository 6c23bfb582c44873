package lookup_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/favmeta"
	"github.com/fwojciec/favmeta/goquery"
	"github.com/fwojciec/favmeta/lookup"
	"github.com/fwojciec/favmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_LookupAll(t *testing.T) {
	t.Parallel()

	t.Run("returns outcomes in input order", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if url == "https://down.test/" {
					return "", errors.New("unreachable")
				}
				return "<title>" + url + "</title>", nil
			},
		}
		svc := lookup.NewService(fetcher, goquery.NewExtractor())

		outcomes := svc.LookupAll(context.Background(), []string{"a.test", "down.test", "", "b.test"}, 2)

		require.Len(t, outcomes, 4)
		assert.Equal(t, "https://a.test/", outcomes[0].Result.PageTitle)
		assert.Equal(t, favmeta.EFETCH, favmeta.ErrorCode(outcomes[1].Err))
		assert.Equal(t, favmeta.EREQUIRED, favmeta.ErrorCode(outcomes[2].Err))
		assert.Equal(t, "https://b.test/", outcomes[3].Result.PageTitle)
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		var mu sync.Mutex
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				n := inFlight.Add(1)
				mu.Lock()
				if n > peak.Load() {
					peak.Store(n)
				}
				mu.Unlock()
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return "", nil
			},
		}
		svc := lookup.NewService(fetcher, goquery.NewExtractor())

		outcomes := svc.LookupAll(context.Background(), []string{"a.test", "b.test", "c.test", "d.test", "e.test"}, 2)

		require.Len(t, outcomes, 5)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("empty input list", func(t *testing.T) {
		t.Parallel()

		svc := lookup.NewService(&mock.Fetcher{}, goquery.NewExtractor())

		assert.Empty(t, svc.LookupAll(context.Background(), nil, 0))
	})
}
