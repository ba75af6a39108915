package crucible

import (
	"errors"
	"fmt"

	"github.com/cbackas/advent-of-code/dijkstra"
	"github.com/cbackas/advent-of-code/gridgraph"
	"github.com/cbackas/advent-of-code/movement"
)

// Mode names a policy so results can be reported per puzzle part.
type Mode struct {
	Name   string
	Policy movement.Policy
}

// PartOne is the ordinary crucible: at most three blocks straight.
func PartOne() Mode { return Mode{Name: "part1", Policy: movement.Standard()} }

// PartTwo is the ultra crucible: four to ten blocks straight.
func PartTwo() Mode { return Mode{Name: "part2", Policy: movement.Ultra()} }

// DefaultModes returns PartOne and PartTwo.
func DefaultModes() []Mode { return []Mode{PartOne(), PartTwo()} }

// Solution is the cheapest path found for one policy.
//
// Cost is the total heat loss; Path runs from the start state (zero run on
// the top-left block) to the accepted goal state.
type Solution struct {
	Cost  uint64
	Path  []State
	Stats dijkstra.Stats
}

// MinHeatLoss finds the minimum heat loss from g.Start() to g.Goal() under p.
// Extra dijkstra options (logger, caps) are passed through; the path is
// always reconstructed.
//
// Errors: ErrNilGrid, movement.ErrBadRunBounds, ErrNoPathFound, or a wrapped
// gridgraph.ErrOutOfBounds if expansion ever asks for a block off the grid.
func MinHeatLoss(g *gridgraph.Grid, p movement.Policy, opts ...dijkstra.Option) (Solution, error) {
	if g == nil {
		return Solution{}, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	e := NewExpander(g, p)
	start := State{Pos: g.Start()}
	opts = append(opts[:len(opts):len(opts)], dijkstra.WithReturnPath())

	res, err := dijkstra.Search(start, e.Successors, e.IsGoal, opts...)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return Solution{}, fmt.Errorf("%w: %v→%v with %v", ErrNoPathFound, g.Start(), g.Goal(), p)
	}
	if err != nil {
		return Solution{}, err
	}

	return Solution{Cost: uint64(res.Cost), Path: res.Path, Stats: res.Stats}, nil
}
