package verify

import (
	"cmp"
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/roach88/stairrank/internal/grid"
)

// All verifies each named grid and returns the reports in input order.
//
// Grids are read-only, so they are verified concurrently with at most limit
// goroutines in flight (limit <= 0 means one per grid). The only error is a
// cancelled context.
func All[T cmp.Ordered](ctx context.Context, grids []grid.Named[T], limit int) ([]*Report[T], error) {
	reports := make([]*Report[T], len(grids))

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, ng := range grids {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			reports[i] = Verify(ng.Grid)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
