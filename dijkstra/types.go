package dijkstra

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by Search.
var (
	// ErrNilSuccessorFunc indicates Search was called without a SuccessorFunc.
	ErrNilSuccessorFunc = errors.New("dijkstra: successor func is nil")

	// ErrNilGoalFunc indicates Search was called without a GoalFunc.
	ErrNilGoalFunc = errors.New("dijkstra: goal func is nil")

	// ErrNegativeWeight indicates that a successor carried a negative edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates the search space was exhausted without reaching a goal.
	ErrNoPath = errors.New("dijkstra: no path to goal")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Successor is one outgoing edge of the implicit graph: the state it leads
// to and the non-negative cost of taking it.
type Successor[S comparable] struct {
	State S
	Cost  int64
}

// SuccessorFunc enumerates the outgoing edges of s. A non-nil error aborts
// the search.
type SuccessorFunc[S comparable] func(s S) ([]Successor[S], error)

// GoalFunc reports whether s is an acceptable terminal state.
type GoalFunc[S comparable] func(s S) bool

// Stats counts the work done by a single Search.
type Stats struct {
	Popped   int // heap entries removed
	Stale    int // popped entries skipped because a cheaper cost was already known
	Expanded int // states whose successors were generated
	Pushed   int // heap entries added, including the start
}

// Result is the outcome of a successful Search.
//
// Cost is the minimum accumulated edge cost from start to Goal.
// Path lists the states from start to Goal inclusive; it is nil unless
// WithReturnPath was given.
type Result[S comparable] struct {
	Cost  int64
	Goal  S
	Path  []S
	Stats Stats
}

// Options configures the behavior of Search.
//
// ReturnPath       – if true, Result.Path is populated.
// MaxDistance      – states whose cost would exceed this are never expanded.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – successors with cost ≥ this threshold are skipped.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// Logger           – receives a debug entry with Stats when Search returns.
type Options struct {
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	Logger           *zap.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithReturnPath enables reconstruction of the start→goal state sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum cost threshold.
// States whose cost would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// treated as walls and skipped.
// Panics with ErrBadInfThreshold on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes search statistics to l. A nil l is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - Logger:           zap.NewNop().
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Logger:           zap.NewNop(),
	}
}
