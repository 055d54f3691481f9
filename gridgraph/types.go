// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/aocsearch.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCell indicates a cell with a negative value.
	ErrNegativeCell = errors.New("gridgraph: cell values must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBlockedCell indicates a path endpoint on a wall.
	ErrBlockedCell = errors.New("gridgraph: endpoint is a wall")
	// ErrNoPath indicates no path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
	// ErrBadTile indicates a tile factor below one.
	ErrBadTile = errors.New("gridgraph: tile factor must be at least 1")
	// ErrBadInput indicates a malformed digit grid.
	ErrBadInput = errors.New("gridgraph: malformed digit grid")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid search.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// WallThreshold, if > 0, makes every cell with value ≥ WallThreshold impassable.
	WallThreshold int
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, no walls.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:          Conn4,
		WallThreshold: 0,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups; minCost is
// the cheapest passable cell value, used to scale heuristics.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	WallThreshold   int
	neighborOffsets [][2]int
	minCost         int
}
