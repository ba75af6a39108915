package crucible_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cbackas/advent-of-code/gridgraph"
	"github.com/cbackas/advent-of-code/movement"
)

// cityMap is the 13×13 reference map from the puzzle statement.
const cityMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// ultraMap is the second reference map, built to punish an ultra crucible
// that stops before finishing its minimum run.
const ultraMap = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustParse(t testing.TB, s string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseString(s)
	require.NoError(t, err)
	return g
}

func mustPolicy(t testing.TB, minRun, maxRun int, opts ...movement.PolicyOption) movement.Policy {
	t.Helper()
	p, err := movement.NewPolicy(minRun, maxRun, opts...)
	require.NoError(t, err)
	return p
}

// randomValues builds a deterministic rows×cols matrix of costs in 1..9.
func randomValues(seed int64, rows, cols int) [][]int {
	r := rand.New(rand.NewSource(seed))
	v := make([][]int, rows)
	for y := range v {
		v[y] = make([]int, cols)
		for x := range v[y] {
			v[y][x] = 1 + r.Intn(9)
		}
	}
	return v
}
