package exec

import (
	"context"
	"sync"

	"github.com/brimdata/blockflow/vector"
	"golang.org/x/sync/errgroup"
)

// Drain pulls every block from p and passes it to fn.  If ctx is canceled,
// p fails, or fn fails, p is told it is done and the error is returned.
func Drain(ctx context.Context, p vector.Puller, fn func(*vector.Block) error) error {
	for {
		if err := ctx.Err(); err != nil {
			p.Pull(true)
			return err
		}
		block, err := p.Pull(false)
		if err != nil {
			p.Pull(true)
			return err
		}
		if block == nil {
			return nil
		}
		if err := fn(block); err != nil {
			p.Pull(true)
			return err
		}
	}
}

// RunParallel drains each puller in its own goroutine with at most limit
// running at once, or all at once if limit is not positive.  Calls to sink
// are serialized.  The first error cancels the remaining pullers and is
// returned.
func RunParallel(ctx context.Context, limit int, pullers []vector.Puller, sink func(*vector.Block) error) error {
	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for _, p := range pullers {
		group.Go(func() error {
			return Drain(ctx, p, func(block *vector.Block) error {
				mu.Lock()
				defer mu.Unlock()
				return sink(block)
			})
		})
	}
	return group.Wait()
}
