package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// ExampleNewDenseGraph builds a 2×3 graph, makes one move expensive in a
// single direction and shows that the reverse move keeps the default cost.
func ExampleNewDenseGraph() {
	g, _ := grid.NewDenseGraph(2, 3, 1)
	a, b := grid.Node{X: 0, Y: 0}, grid.Node{X: 1, Y: 0}
	_ = g.SetTransition(a, b, 5)

	uphill, _ := g.Transition(a, b)
	downhill, _ := g.Transition(b, a)
	fmt.Printf("%v→%v=%g %v→%v=%g\n", a, b, uphill, b, a, downhill)

	_, err := g.Transition(a, grid.Node{X: 3, Y: 0})
	fmt.Println(errors.Is(err, grid.ErrOutOfBounds))
	// Output:
	// (0,0)→(1,0)=5 (1,0)→(0,0)=1
	// true
}
