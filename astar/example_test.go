package astar_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/neighbors"
)

// ExamplePathFinder_Find searches a free 5×5 grid corner to corner.
func ExamplePathFinder_Find() {
	g, _ := grid.NewDenseGraph(5, 5, 0)
	f, _ := astar.NewPathFinder(neighbors.NewGridExpander(1))

	path, err := f.Find(g, &astar.Options{
		Start: grid.Node{X: 0, Y: 0},
		End:   grid.Node{X: 4, Y: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// (0,0) -> (1,1) -> (2,2) -> (3,3) -> (4,4)
}

// ExamplePathFinder_Find_noPath walls off the start cell.
func ExamplePathFinder_Find_noPath() {
	g, _ := grid.NewDenseGraph(3, 3, 0)
	_ = g.SetNodeCost(grid.Node{X: 0, Y: 0}, math.Inf(1))
	f, _ := astar.NewPathFinder(neighbors.NewGridExpander(1))

	path, err := f.Find(g, &astar.Options{
		Start: grid.Node{X: 0, Y: 0},
		End:   grid.Node{X: 2, Y: 2},
	})
	fmt.Println(path == nil, err)
	// Output:
	// true <nil>
}
