// Package digraph provides a small, thread-safe, generic weighted directed
// graph and a Vertex adapter that lets the astar engine walk it.
//
// Vertices are any comparable value; weights are any cost.Distance. Edges
// are stored per source vertex in insertion order, so iteration over a
// vertex's out-edges is deterministic.
//
// Locking: a single sync.RWMutex guards vertices and adjacency. Readers
// (HasVertex, Vertices, Edges, Vertex.Neighbors) take the read lock and
// return copies, so callers never observe a slice that is being appended to.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrNegativeWeight  - AddEdge received a weight below zero.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
package digraph
