package crucible

import (
	"fmt"

	"github.com/cbackas/advent-of-code/dijkstra"
	"github.com/cbackas/advent-of-code/gridgraph"
	"github.com/cbackas/advent-of-code/movement"
)

// State is a search vertex: where the crucible is and how it got there.
// Two states on the same block with different runs are distinct because
// their legal futures differ.
type State struct {
	Pos gridgraph.Point
	Run movement.RunState
}

// Expander enumerates successor states over a grid under a policy.
// It holds no mutable state and may be shared between goroutines.
type Expander struct {
	grid   *gridgraph.Grid
	policy movement.Policy
}

// NewExpander binds a grid and a policy.
func NewExpander(g *gridgraph.Grid, p movement.Policy) *Expander {
	return &Expander{grid: g, policy: p}
}

// Successors returns every legal next state of s with the cost of the block
// it enters. Moves that would leave the grid are dropped silently.
// Complexity: O(1), at most four candidates.
func (e *Expander) Successors(s State) ([]dijkstra.Successor[State], error) {
	runs := e.policy.Next(s.Run)
	out := make([]dijkstra.Successor[State], 0, len(runs))
	for _, run := range runs {
		pos := s.Pos.Offset(run.Dir.Delta())
		if !e.grid.InBounds(pos) {
			continue
		}
		cost, err := e.grid.Cost(pos)
		if err != nil {
			return nil, fmt.Errorf("crucible: successor %v of %v: %w", pos, s.Pos, err)
		}
		out = append(out, dijkstra.Successor[State]{
			State: State{Pos: pos, Run: run},
			Cost:  cost,
		})
	}

	return out, nil
}

// IsGoal reports whether s stands on the grid's goal block with a run the
// policy lets it stop on.
func (e *Expander) IsGoal(s State) bool {
	return s.Pos == e.grid.Goal() && e.policy.CanStop(s.Run)
}
