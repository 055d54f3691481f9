// Package bfs walks any astar state space breadth-first, ignoring step
// costs, and reports hop distances, parent links and visit order.
//
// What
//
//   - Explore states in non-decreasing hop count from a start state.
//   - Result carries Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - OnVisit may abort the walk with an error; FilterNeighbor skips
//     individual transitions; MaxDepth bounds the walk (0 means no limit).
//
// Why
//
//   - Reachability and flood fill (gridgraph components) without paying
//     for a priority queue.
//   - Layering a state space, e.g. to sanity-check move generators.
//
// Determinism
//
//	Neighbors are enqueued in the order State.Neighbors returns them, so
//	a deterministic state type gives a reproducible visit sequence.
//
// Complexity: O(V + E) time, O(V) memory for the result maps.
package bfs
