// Package dijkstra implements single-source Dijkstra over a digraph.Digraph.
//
// It computes the minimum cost from a source vertex to every reachable
// vertex in a graph with non-negative weights, processing vertices in order
// of increasing distance with a binary min-heap.
//
// In aocsearch it serves as the reference oracle for the astar engine: with
// the zero heuristic, astar.Search must report the same cost as Dijkstra for
// every target.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold one entry per relaxation
//     under the lazy decrease-key strategy.
//
// Notes on implementation choices:
//
//   - Negative weights cannot exist: digraph.AddEdge rejects them.
//   - Unreachable vertices are absent from the returned distance map.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a lazy decrease-key strategy: pushing duplicates into the heap and
//     ignoring entries for vertices already finalized.
package dijkstra
