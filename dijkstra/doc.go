// Package dijkstra provides a best-first (Dijkstra) search over implicit
// graphs with non-negative edge costs.
//
// Overview:
//
//   - The graph is never materialized. The caller supplies a start state, a
//     SuccessorFunc that lazily enumerates (next state, edge cost) pairs, and
//     a GoalFunc that recognizes terminal states.
//   - States may carry any comparable payload, so a "vertex" can be a grid
//     position augmented with direction, run length, or any other context
//     needed to decide which moves are legal next.
//   - The first goal state popped from the frontier is optimal; Search stops
//     there and reports its cost.
//
// When to use:
//
//   - State-augmented grid walks (move constraints, turn limits, keys held).
//   - Any search where building a full vertex/edge set up front is wasteful.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: reconstruct the state sequence from start to goal.
//   - WithMaxDistance: abandon states whose cost would exceed a cap.
//   - WithInfEdgeThreshold: treat any edge with cost ≥ threshold as impassable.
//   - WithLogger: emit search statistics through a *zap.Logger at debug level.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the reachable states.
//   - Each state is expanded at most once at its final cost.
//   - Each successful relaxation pushes one heap entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the best-known cost map (and predecessor map with ReturnPath).
//   - O(E) worst-case entries in the heap under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilSuccessorFunc, ErrNilGoalFunc: missing callbacks.
//   - ErrNegativeWeight: a successor reported a negative edge cost.
//   - ErrNoPath: the frontier emptied (or only held states beyond MaxDistance)
//     before a goal state was popped.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic by the option
//     constructors on invalid arguments.
//   - Errors returned by the SuccessorFunc are wrapped and returned unchanged
//     in kind (test with errors.Is).
//
// Thread safety:
//
//   - Each Search call owns its frontier and maps; concurrent calls are safe as
//     long as the SuccessorFunc only reads shared data.
package dijkstra
