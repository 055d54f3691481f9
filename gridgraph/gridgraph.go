package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aocsearch/digraph"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// of non-negative values. It deep-copies the input to ensure immutability.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCell, x, y, v)
			}
			cells[y][x] = v
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallThreshold:   opts.WallThreshold,
		neighborOffsets: offsets,
	}
	gg.minCost = gg.cheapestPassable()

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}
	return gg.WallThreshold <= 0 || gg.CellValues[y][x] < gg.WallThreshold
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) cheapestPassable() int {
	lowest := -1
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			if v := gg.CellValues[y][x]; lowest < 0 || v < lowest {
				lowest = v
			}
		}
	}
	if lowest < 0 {
		return 0
	}
	return lowest
}

// ToDigraph converts the grid into a weighted directed graph over row-major
// indices. Every passable cell is a vertex; an arc u→v exists for each
// passable neighbor v and weighs CellValues of v (the cost of entering it).
// Complexity: O(W×H×d).
func (gg *GridGraph) ToDigraph() *digraph.Digraph[int, int] {
	g := digraph.New[int, int]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := gg.index(x, y)
			g.AddVertex(u)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				// values are validated non-negative and u != v
				if err := g.AddEdge(u, gg.index(nx, ny), gg.CellValues[ny][nx]); err != nil {
					panic(err)
				}
			}
		}
	}

	return g
}
