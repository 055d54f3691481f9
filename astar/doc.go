// Package astar implements a generic A* shortest-path search over an
// application-defined state space.
//
// A state is any comparable value that can list its successors:
//
//	type State[S any, D cost.Distance] interface {
//	    comparable
//	    Neighbors() []Step[S, D]
//	}
//
// The engine never builds the graph up front. It starts from a single state,
// asks each expanded state for its neighbors and keeps three pieces of
// bookkeeping that live only for the duration of one Search call:
//
//   - a best-cost table map[S]D holding the cheapest known cost g(s) for
//     every state discovered so far. Entries only ever decrease;
//   - a Frontier (binary min-heap) ordered by f = g + h;
//   - optionally, a predecessor map used to rebuild the path.
//
// Lazy deletion:
//
// The frontier has no decrease-key. When a cheaper route to a state is found
// a new entry is pushed and the old one stays in the heap. When an entry is
// popped its g is compared with the best-cost table; if it is worse the entry
// is stale and discarded.
//
// Termination and correctness:
//
//   - The goal predicate is mandatory; Search stops at the first popped state
//     that satisfies it and reports best[state].
//   - If the frontier runs dry, Search returns ErrNoPath. It never returns a
//     partial cost.
//   - Step costs must be non-negative. A negative cost is reported as
//     ErrNegativeCost.
//   - The heuristic must be admissible (never overestimate the remaining
//     cost). This is not verified: an inadmissible heuristic silently yields
//     a suboptimal answer. A nil heuristic turns the search into Dijkstra.
//
// Concurrency:
//
// Search is synchronous and single-threaded. All bookkeeping is local to the
// call, so independent searches may run in parallel without synchronization.
// WithContext adds a cooperative cancellation checkpoint at every pop.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for V discovered states and E generated steps.
//   - Space: O(V + E); the heap may hold one entry per relaxation.
package astar
