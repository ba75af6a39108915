package crucible

import (
	"errors"
	"fmt"

	"github.com/cbackas/advent-of-code/dijkstra"
)

var (
	// ErrNilGrid indicates a nil *gridgraph.Grid was passed in.
	ErrNilGrid = errors.New("crucible: grid is nil")
	// ErrNoPathFound indicates no legal path reaches the goal. It wraps
	// dijkstra.ErrNoPath.
	ErrNoPathFound = fmt.Errorf("crucible: %w", dijkstra.ErrNoPath)
	// ErrIllegalPath indicates a path that VerifyPath rejected.
	ErrIllegalPath = errors.New("crucible: illegal path")
)
