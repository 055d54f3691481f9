// Package aocsearch is a small toolkit for cost-ordered search over
// implicit state spaces, grown out of the Advent of Code 2021 puzzles that
// need one.
//
// What lives where:
//
//	cost/       — the Distance constraint and saturating arithmetic
//	astar/      — generic A* engine, lazy-deletion frontier, options & observers
//	bfs/        — unit-cost breadth-first walk over the same State interface
//	digraph/    — thread-safe weighted digraph whose vertices are search states
//	dijkstra/   — single-source Dijkstra over a digraph (reference oracle)
//	gridgraph/  — integer grids as state spaces; chiton risk maps (day 15)
//	amphipod/   — the amphipod burrow (day 23), the canonical 12521 case
//	aabb/       — disjoint axis-aligned box set; reactor reboot (day 22)
//	cmd/        — the aocsearch command line
//
// Quick example:
//
//	type n int
//	func (x n) Neighbors() []astar.Step[n, int] { ... }
//
//	res, err := astar.Search[n, int](1, func(x n) bool { return x == 37 }, nil)
//
// A search state is any comparable value that lists its own successors;
// nothing is materialized up front, so state spaces may be huge as long as
// the heuristic keeps the explored part small.
package aocsearch
