package gridgraph

import (
	"github.com/katalvlaran/aocsearch/astar"
)

// Cell is a search state positioned on a grid cell. It is a small
// comparable value usable as a map key by the search engine.
type Cell struct {
	g *GridGraph
	Point
}

// At returns the search state for (x,y). Bounds are not checked here;
// ShortestPath validates its endpoints.
func (gg *GridGraph) At(x, y int) Cell {
	return Cell{g: gg, Point: Point{X: x, Y: y}}
}

// Value returns the cell's grid value.
func (c Cell) Value() int {
	return c.g.CellValues[c.Y][c.X]
}

// Neighbors lists every passable neighbor; the step cost is the neighbor's value.
func (c Cell) Neighbors() []astar.Step[Cell, int] {
	steps := make([]astar.Step[Cell, int], 0, len(c.g.neighborOffsets))
	for _, d := range c.g.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !c.g.Passable(nx, ny) {
			continue
		}
		steps = append(steps, astar.Step[Cell, int]{Cost: c.g.CellValues[ny][nx], To: c.g.At(nx, ny)})
	}

	return steps
}

// Manhattan returns an admissible heuristic towards target for Conn4 grids:
// the L1 distance times the cheapest passable cell value.
func (gg *GridGraph) Manhattan(target Point) astar.Heuristic[Cell, int] {
	return func(c Cell) int {
		return (abs(c.X-target.X) + abs(c.Y-target.Y)) * gg.minCost
	}
}

// Chebyshev returns an admissible heuristic towards target for Conn8 grids:
// the L∞ distance times the cheapest passable cell value.
func (gg *GridGraph) Chebyshev(target Point) astar.Heuristic[Cell, int] {
	return func(c Cell) int {
		return max(abs(c.X-target.X), abs(c.Y-target.Y)) * gg.minCost
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
