// Package dijkstra implements Dijkstra's shortest-path algorithm over
// implicit graphs described by a start state and a successor function.
//
// Notes on implementation choices:
//
//   - The best-known map doubles as the visited set: a popped entry whose cost
//     exceeds the recorded best is stale and skipped.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We treat any edge with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum cost in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"
)

// Search finds the cheapest path from start to any state accepted by goal,
// expanding states lazily through next.
//
// Preconditions and validation (in order):
//  1. next must be non-nil (ErrNilSuccessorFunc).
//  2. goal must be non-nil (ErrNilGoalFunc).
//
// During the search:
//   - a successor with negative cost aborts with ErrNegativeWeight;
//   - an error from next aborts with that error wrapped;
//   - an exhausted frontier yields ErrNoPath.
//
// If start itself satisfies goal, the result has Cost 0 and no successor is
// ever requested.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over reachable states
//   - Space: O(V + E)
func Search[S comparable](start S, next SuccessorFunc[S], goal GoalFunc[S], opts ...Option) (*Result[S], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate callbacks
	if next == nil {
		return nil, ErrNilSuccessorFunc
	}
	if goal == nil {
		return nil, ErrNilGoalFunc
	}

	// 3) Prepare the runner; prev is only allocated when a path is requested.
	r := &runner[S]{
		options: cfg,
		next:    next,
		goal:    goal,
		best:    make(map[S]int64),
		pq:      make(statePQ[S], 0, 64),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}

	// 4) Seed the frontier and run.
	r.init(start)
	res, err := r.process(start)

	log := cfg.Logger.With(
		zap.Int("popped", r.stats.Popped),
		zap.Int("stale", r.stats.Stale),
		zap.Int("expanded", r.stats.Expanded),
		zap.Int("pushed", r.stats.Pushed),
		zap.Int("states", len(r.best)),
	)
	if err != nil {
		log.Debug("dijkstra: search failed", zap.Error(err))
		return nil, err
	}
	log.Debug("dijkstra: search finished", zap.Int64("cost", res.Cost))

	return res, nil
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	options Options
	next    SuccessorFunc[S]
	goal    GoalFunc[S]
	best    map[S]int64 // best-known cost per state; grows monotonically
	prev    map[S]S     // predecessor on the cheapest known path; nil unless ReturnPath
	pq      statePQ[S]
	stats   Stats
}

// init records the start at cost 0 and pushes it onto the heap.
func (r *runner[S]) init(start S) {
	heap.Init(&r.pq)
	r.best[start] = 0
	r.push(start, 0)
}

// process is the core loop: pop the cheapest entry, stop at the first goal,
// otherwise relax its successors.
//
// Loop termination conditions:
//
//   - A goal state is popped (success).
//   - The heap becomes empty (ErrNoPath).
//   - The minimum cost in the heap exceeds MaxDistance (ErrNoPath).
func (r *runner[S]) process(start S) (*Result[S], error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost item.
		it := heap.Pop(&r.pq).(*item[S])
		r.stats.Popped++

		// 2) Skip stale entries superseded by a cheaper push.
		if it.cost > r.best[it.state] {
			r.stats.Stale++
			continue
		}

		// 3) Everything left in the heap is at least this expensive.
		if it.cost > r.options.MaxDistance {
			break
		}

		// 4) First goal popped is optimal under non-negative costs.
		if r.goal(it.state) {
			res := &Result[S]{Cost: it.cost, Goal: it.state, Stats: r.stats}
			if r.prev != nil {
				res.Path = r.path(start, it.state)
			}
			return res, nil
		}

		// 5) Relax outgoing edges.
		if err := r.relax(it.state, it.cost); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// relax generates the successors of u (finalized at cost d) and records any
// strictly cheaper cost found for them.
func (r *runner[S]) relax(u S, d int64) error {
	succ, err := r.next(u)
	if err != nil {
		return fmt.Errorf("dijkstra: expanding %v: %w", u, err)
	}
	r.stats.Expanded++

	for _, s := range succ {
		if s.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeWeight, u, s.State, s.Cost)
		}
		// Walls are skipped outright.
		if s.Cost >= r.options.InfEdgeThreshold {
			continue
		}

		nd := d + s.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal costs would just duplicate heap entries.
		if known, ok := r.best[s.State]; ok && nd >= known {
			continue
		}

		r.best[s.State] = nd
		if r.prev != nil {
			r.prev[s.State] = u
		}
		r.push(s.State, nd)
	}

	return nil
}

func (r *runner[S]) push(s S, cost int64) {
	heap.Push(&r.pq, &item[S]{state: s, cost: cost})
	r.stats.Pushed++
}

// path walks prev back from goal to start and returns the states in forward order.
func (r *runner[S]) path(start, goal S) []S {
	var rev []S
	for at := goal; ; {
		rev = append(rev, at)
		if at == start {
			break
		}
		p, ok := r.prev[at]
		if !ok {
			break
		}
		at = p
	}
	out := make([]S, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return out
}

// item is a frontier entry: a state and the cost at which it was pushed.
type item[S comparable] struct {
	state S
	cost  int64
}

// statePQ is a min-heap of *item ordered by cost ascending.
// Outdated entries remain in the heap and are discarded when popped.
type statePQ[S comparable] []*item[S]

// Len returns the number of items in the heap.
func (pq statePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ[S]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be of type *item[S].
func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*item[S])) }

// Pop removes and returns the last element; heap.Pop arranges for it to be the smallest.
func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
