package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbackas/advent-of-code/movement"
)

// TestDirectionTables checks the opposite/perpendicular/delta tables are
// consistent for every real direction.
func TestDirectionTables(t *testing.T) {
	for _, d := range movement.Directions {
		opp := d.Opposite()
		assert.NotEqual(t, d, opp, "%v", d)
		assert.Equal(t, d, opp.Opposite(), "%v", d)

		dr, dc := d.Delta()
		or, oc := opp.Delta()
		assert.Equal(t, 0, dr+or, "%v", d)
		assert.Equal(t, 0, dc+oc, "%v", d)
		assert.Equal(t, 1, abs(dr)+abs(dc), "unit step for %v", d)

		for _, p := range d.Perpendiculars() {
			assert.NotEqual(t, d, p)
			assert.NotEqual(t, opp, p)
			pr, pc := p.Delta()
			assert.Equal(t, 0, dr*pr+dc*pc, "%v ⟂ %v", d, p)
		}
	}
	assert.Equal(t, movement.None, movement.None.Opposite())
	assert.Equal(t, "north", movement.North.String())
	assert.Equal(t, "none", movement.None.String())
	assert.Equal(t, "invalid", movement.Direction(42).String())
	assert.Equal(t, byte('>'), movement.East.Arrow())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
