package gridgraph

import "github.com/katalvlaran/aocsearch/bfs"

// ConnectedComponents finds all contiguous regions of passable cells,
// according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order, components ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags, per-walk maps and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) || seen[gg.index(x, y)] {
				continue
			}
			// no options, so the walk cannot fail
			res, _ := bfs.Walk[Cell, int](gg.At(x, y))
			comp := make([]int, len(res.Order))
			for i, c := range res.Order {
				comp[i] = gg.index(c.X, c.Y)
				seen[comp[i]] = true
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// componentLabels maps every cell index to its component number; walls get -1.
func (gg *GridGraph) componentLabels() []int {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = c
		}
	}

	return labels
}
