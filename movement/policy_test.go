package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbackas/advent-of-code/movement"
)

func TestNewPolicy_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
		ok       bool
	}{
		{"Standard", 1, 3, true},
		{"Ultra", 4, 10, true},
		{"Equal", 2, 2, true},
		{"ZeroMin", 0, 3, false},
		{"MinAboveMax", 5, 4, false},
		{"Negative", -1, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := movement.NewPolicy(tc.min, tc.max)
			if !tc.ok {
				assert.ErrorIs(t, err, movement.ErrBadRunBounds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.min, p.MinRun)
			assert.Equal(t, tc.max, p.MaxRun)
			assert.Equal(t, movement.StopAtMinRun, p.Stop)
			assert.NoError(t, p.Validate())
		})
	}

	p, err := movement.NewPolicy(4, 10, movement.WithStopRule(movement.StopAnywhere))
	require.NoError(t, err)
	assert.Equal(t, movement.StopAnywhere, p.Stop)
	assert.Equal(t, "min=4 max=10 stop=anywhere", p.String())
	assert.ErrorIs(t, movement.Policy{}.Validate(), movement.ErrBadRunBounds)
}

func TestPolicy_Next(t *testing.T) {
	p := movement.Ultra()
	rs := func(d movement.Direction, n int) movement.RunState {
		return movement.RunState{Dir: d, Count: n}
	}
	cases := []struct {
		name string
		run  movement.RunState
		want []movement.RunState
	}{
		{
			name: "Start",
			run:  movement.RunState{},
			want: []movement.RunState{rs(movement.North, 1), rs(movement.East, 1), rs(movement.South, 1), rs(movement.West, 1)},
		},
		{
			name: "BelowMinRun",
			run:  rs(movement.East, 3),
			want: []movement.RunState{rs(movement.East, 4)},
		},
		{
			name: "AtMinRun",
			run:  rs(movement.East, 4),
			want: []movement.RunState{rs(movement.East, 5), rs(movement.North, 1), rs(movement.South, 1)},
		},
		{
			name: "AtMaxRun",
			run:  rs(movement.South, 10),
			want: []movement.RunState{rs(movement.East, 1), rs(movement.West, 1)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.want, p.Next(tc.run))
		})
	}
}

// TestPolicy_NeverReverses sweeps every run length for both presets.
func TestPolicy_NeverReverses(t *testing.T) {
	for _, p := range []movement.Policy{movement.Standard(), movement.Ultra()} {
		for _, d := range movement.Directions {
			for n := 1; n <= p.MaxRun; n++ {
				for _, next := range p.Next(movement.RunState{Dir: d, Count: n}) {
					assert.NotEqual(t, d.Opposite(), next.Dir, "%v: %v×%d", p, d, n)
					assert.LessOrEqual(t, next.Count, p.MaxRun)
				}
			}
		}
	}
}

func TestPolicy_Allows(t *testing.T) {
	p := movement.Standard()
	next, ok := p.Allows(movement.RunState{Dir: movement.East, Count: 3}, movement.East)
	assert.False(t, ok)
	assert.Equal(t, movement.RunState{}, next)

	next, ok = p.Allows(movement.RunState{Dir: movement.East, Count: 3}, movement.South)
	assert.True(t, ok)
	assert.Equal(t, movement.RunState{Dir: movement.South, Count: 1}, next)

	_, ok = p.Allows(movement.RunState{Dir: movement.East, Count: 1}, movement.West)
	assert.False(t, ok)
	_, ok = p.Allows(movement.RunState{}, movement.None)
	assert.False(t, ok)
}

func TestPolicy_CanStop(t *testing.T) {
	strict := movement.Ultra()
	lenient, err := movement.NewPolicy(4, 10, movement.WithStopRule(movement.StopAnywhere))
	require.NoError(t, err)

	assert.True(t, strict.CanStop(movement.RunState{}))
	assert.False(t, strict.CanStop(movement.RunState{Dir: movement.East, Count: 3}))
	assert.True(t, strict.CanStop(movement.RunState{Dir: movement.East, Count: 4}))
	assert.True(t, lenient.CanStop(movement.RunState{Dir: movement.East, Count: 1}))
}
