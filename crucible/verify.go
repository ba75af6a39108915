package crucible

import (
	"fmt"

	"github.com/cbackas/advent-of-code/gridgraph"
	"github.com/cbackas/advent-of-code/movement"
)

// VerifyPath replays path over g under p and returns the heat loss it
// accumulates. The path must start on g.Start() with a zero run, move one
// block per step without leaving the grid, respect p at every step, and end
// on g.Goal() with a run p lets it stop on. Any violation is ErrIllegalPath.
func VerifyPath(g *gridgraph.Grid, p movement.Policy, path []State) (uint64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrIllegalPath)
	}
	if first := path[0]; first != (State{Pos: g.Start()}) {
		return 0, fmt.Errorf("%w: starts at %v with run %v", ErrIllegalPath, first.Pos, first.Run)
	}

	var total uint64
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		d, ok := stepDirection(prev.Pos, cur.Pos)
		if !ok {
			return 0, fmt.Errorf("%w: step %d jumps %v→%v", ErrIllegalPath, i, prev.Pos, cur.Pos)
		}
		want, ok := p.Allows(prev.Run, d)
		if !ok {
			return 0, fmt.Errorf("%w: step %d moves %v after %v×%d", ErrIllegalPath, i, d, prev.Run.Dir, prev.Run.Count)
		}
		if cur.Run != want {
			return 0, fmt.Errorf("%w: step %d records run %v×%d, want %v×%d", ErrIllegalPath, i, cur.Run.Dir, cur.Run.Count, want.Dir, want.Count)
		}
		c, err := g.Cost(cur.Pos)
		if err != nil {
			return 0, fmt.Errorf("%w: step %d: %v", ErrIllegalPath, i, err)
		}
		total += uint64(c)
	}

	last := path[len(path)-1]
	if last.Pos != g.Goal() {
		return 0, fmt.Errorf("%w: ends at %v, goal is %v", ErrIllegalPath, last.Pos, g.Goal())
	}
	if !p.CanStop(last.Run) {
		return 0, fmt.Errorf("%w: stops after %d blocks, minimum run is %d", ErrIllegalPath, last.Run.Count, p.MinRun)
	}

	return total, nil
}

// stepDirection returns the direction that moves from a to an adjacent b.
func stepDirection(a, b gridgraph.Point) (movement.Direction, bool) {
	for _, d := range movement.Directions {
		if a.Offset(d.Delta()) == b {
			return d, true
		}
	}
	return movement.None, false
}
