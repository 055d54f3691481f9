package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aocsearch/astar"
)

// ShortestPath returns the cheapest route from one cell to another, where
// entering a cell costs its value (the start cell is free).
//
// Behavior:
//  1. Validate both endpoints (ErrOutOfBounds, ErrBlockedCell).
//  2. Fail fast with ErrNoPath if they lie in different components.
//  3. Run astar.Search with Manhattan (Conn4) or Chebyshev (Conn8).
//
// Extra astar options (path reconstruction, observers, limits) are forwarded.
func (gg *GridGraph) ShortestPath(from, to Point, opts ...astar.Option[Cell, int]) (astar.Result[Cell, int], error) {
	for _, p := range []Point{from, to} {
		if !gg.InBounds(p.X, p.Y) {
			return astar.Result[Cell, int]{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
		}
		if !gg.Passable(p.X, p.Y) {
			return astar.Result[Cell, int]{}, fmt.Errorf("%w: (%d,%d)", ErrBlockedCell, p.X, p.Y)
		}
	}

	labels := gg.componentLabels()
	if labels[gg.index(from.X, from.Y)] != labels[gg.index(to.X, to.Y)] {
		return astar.Result[Cell, int]{}, fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrNoPath, from.X, from.Y, to.X, to.Y)
	}

	h := gg.Manhattan(to)
	if gg.Conn == Conn8 {
		h = gg.Chebyshev(to)
	}
	goal := func(c Cell) bool { return c.Point == to }

	res, err := astar.Search(gg.At(from.X, from.Y), goal, h, opts...)
	if errors.Is(err, astar.ErrNoPath) {
		return res, fmt.Errorf("%w: %w", ErrNoPath, err)
	}

	return res, err
}

// Corners returns the top-left and bottom-right points.
func (gg *GridGraph) Corners() (topLeft, bottomRight Point) {
	return Point{0, 0}, Point{gg.Width - 1, gg.Height - 1}
}
