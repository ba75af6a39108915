// Package movement defines the four compass directions, run bookkeeping, and
// the Policy that decides which moves a straight-line-constrained walker may
// make next.
//
// A run is a maximal sequence of consecutive moves in one direction.
// Policy is parameterized by MinRun (the walker must have moved at least this
// many steps straight before it may turn or stop) and MaxRun (the walker must
// turn after this many steps straight). Reversing is never allowed.
//
// Rules, given the current RunState{Dir: d, Count: n}:
//
//   - n == 0 (nothing committed yet): every direction is legal, yielding {d', 1}.
//   - continue along d:               legal iff n < MaxRun, yielding {d, n+1}.
//   - turn to either perpendicular:   legal iff n ≥ MinRun, yielding {d', 1}.
//   - reverse:                        never legal.
//
// Presets:
//
//   - Standard(): MinRun=1, MaxRun=3.
//   - Ultra():    MinRun=4, MaxRun=10.
//
// The search engine never sees these rules; it only receives successor states.
package movement
