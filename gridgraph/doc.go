// Package gridgraph treats a rectangular grid of integer cells as a weighted
// state space for the astar engine.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Entering a cell costs its value.
//   - Cells with value ≥ WallThreshold (when the threshold is positive) are walls.
//   - Cell is a comparable search state; Manhattan and Chebyshev give
//     admissible heuristics scaled by the cheapest passable cell.
//   - ShortestPath runs A* between two cells and fails fast with ErrNoPath
//     when they lie in different connected components.
//   - Tile builds the wrapped n×n enlargement used by the 2021 "Chiton" puzzle.
//   - ToDigraph converts the grid to a digraph.Digraph for other algorithms.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8 neighbors).
//   - ShortestPath:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToDigraph:           O(W×H×d).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.WallThreshold: minimum value treated as a wall; 0 disables walls.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCell: a cell holds a negative value.
//   - ErrOutOfBounds / ErrBlockedCell: bad ShortestPath endpoint.
//   - ErrNoPath: the endpoints are not connected.
//   - ErrBadInput: ParseDigits met a non-digit.
package gridgraph
