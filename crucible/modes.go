package crucible

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cbackas/advent-of-code/dijkstra"
	"github.com/cbackas/advent-of-code/gridgraph"
)

// Report pairs a mode with its solution.
type Report struct {
	Mode     Mode
	Solution Solution
}

// SolveModes runs MinHeatLoss for every mode concurrently over the shared,
// read-only grid. Reports come back in the order of modes. The first failing
// mode cancels the rest and its error is returned.
func SolveModes(ctx context.Context, g *gridgraph.Grid, modes []Mode, opts ...dijkstra.Option) ([]Report, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	reports := make([]Report, len(modes))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, m := range modes {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sol, err := MinHeatLoss(g, m.Policy, opts...)
			if err != nil {
				return fmt.Errorf("mode %s: %w", m.Name, err)
			}
			reports[i] = Report{Mode: m, Solution: sol}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
