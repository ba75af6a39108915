package movement

import (
	"errors"
	"fmt"
)

// ErrBadRunBounds indicates MinRun < 1 or MinRun > MaxRun.
var ErrBadRunBounds = errors.New("movement: run bounds must satisfy 1 <= min <= max")

// RunState records the direction of the current run and how many steps it
// already holds. The zero value is the start state.
type RunState struct {
	Dir   Direction
	Count int
}

// StopRule decides whether a run may end at the goal.
type StopRule uint8

const (
	// StopAtMinRun accepts the goal only when the final run holds at least
	// MinRun steps, or when no move was made at all.
	StopAtMinRun StopRule = iota
	// StopAnywhere accepts the goal at any run length.
	StopAnywhere
)

func (r StopRule) String() string {
	if r == StopAnywhere {
		return "anywhere"
	}
	return "min-run"
}

// Policy holds the straight-line constraints of a walker.
type Policy struct {
	MinRun int
	MaxRun int
	Stop   StopRule
}

// PolicyOption configures a Policy in NewPolicy.
type PolicyOption func(*Policy)

// WithStopRule overrides the default StopAtMinRun.
func WithStopRule(r StopRule) PolicyOption {
	return func(p *Policy) { p.Stop = r }
}

// NewPolicy validates the run bounds and returns a Policy.
func NewPolicy(minRun, maxRun int, opts ...PolicyOption) (Policy, error) {
	if minRun < 1 || minRun > maxRun {
		return Policy{}, fmt.Errorf("%w: got min=%d max=%d", ErrBadRunBounds, minRun, maxRun)
	}
	p := Policy{MinRun: minRun, MaxRun: maxRun, Stop: StopAtMinRun}
	for _, opt := range opts {
		opt(&p)
	}

	return p, nil
}

// Standard is the (1,3) policy.
func Standard() Policy { return Policy{MinRun: 1, MaxRun: 3} }

// Ultra is the (4,10) policy.
func Ultra() Policy { return Policy{MinRun: 4, MaxRun: 10} }

// Validate reports ErrBadRunBounds for a hand-built Policy.
func (p Policy) Validate() error {
	if p.MinRun < 1 || p.MinRun > p.MaxRun {
		return fmt.Errorf("%w: got min=%d max=%d", ErrBadRunBounds, p.MinRun, p.MaxRun)
	}
	return nil
}

// Next returns the legal run states reachable in one step from run.
// At most three states are returned (four from the start state).
func (p Policy) Next(run RunState) []RunState {
	if run.Count == 0 {
		out := make([]RunState, 0, len(Directions))
		for _, d := range Directions {
			out = append(out, RunState{Dir: d, Count: 1})
		}
		return out
	}

	out := make([]RunState, 0, 3)
	if run.Count < p.MaxRun {
		out = append(out, RunState{Dir: run.Dir, Count: run.Count + 1})
	}
	if run.Count >= p.MinRun {
		for _, d := range run.Dir.Perpendiculars() {
			out = append(out, RunState{Dir: d, Count: 1})
		}
	}

	return out
}

// Allows reports whether moving along d from run is legal, and the run state
// it produces.
func (p Policy) Allows(run RunState, d Direction) (RunState, bool) {
	if d == None {
		return RunState{}, false
	}
	for _, next := range p.Next(run) {
		if next.Dir == d {
			return next, true
		}
	}
	return RunState{}, false
}

// CanStop reports whether a walker holding run may stop at the goal.
// A walker that never moved can always stop.
func (p Policy) CanStop(run RunState) bool {
	if run.Count == 0 || p.Stop == StopAnywhere {
		return true
	}
	return run.Count >= p.MinRun
}

func (p Policy) String() string {
	return fmt.Sprintf("min=%d max=%d stop=%s", p.MinRun, p.MaxRun, p.Stop)
}
