// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aocsearch/astar"
	"github.com/katalvlaran/aocsearch/gridgraph"
)

// ExampleGridGraph_ShortestPath walks a small risk map from the top-left to
// the bottom-right corner. Entering a cell costs its value; the 9 in the
// middle column is cheaper to walk around than through.
func ExampleGridGraph_ShortestPath() {
	grid := [][]int{
		{1, 1, 6},
		{1, 9, 1},
		{3, 1, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	from, to := gg.Corners()

	res, err := gg.ShortestPath(from, to, astar.WithReturnPath[gridgraph.Cell, int]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Print("path:")
	for _, c := range res.Path {
		fmt.Printf(" (%d,%d)", c.X, c.Y)
	}
	fmt.Println()

	// Output:
	// cost: 6
	// path: (0,0) (0,1) (0,2) (1,2) (2,2)
}

// ExampleGridGraph_ConnectedComponents identifies open regions separated by walls.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 0, 9, 0},
		{9, 9, 9, 0},
		{0, 9, 0, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{Conn: gridgraph.Conn4, WallThreshold: 9})

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (0,0) (1,0)
	// component 1: (3,0) (3,1) (3,2) (2,2)
	// component 2: (0,2)
}
