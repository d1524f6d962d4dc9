package astar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockExpander is a testify mock for neighbors.Expander.
type mockExpander struct {
	mock.Mock
}

func (m *mockExpander) Neighbors(g grid.Graph, node grid.Node, out *[]grid.Node) error {
	args := m.Called(g, node, out)
	return args.Error(0)
}

// expect makes Neighbors(node) fill the buffer with result.
func (m *mockExpander) expect(node grid.Node, result ...grid.Node) *mock.Call {
	return m.On("Neighbors", mock.Anything, node, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*[]grid.Node)
			*out = append((*out)[:0], result...)
		}).
		Return(nil)
}

// fakeGraph is a map-backed Graph: unset transitions cost 0 and every
// address is accepted.
type fakeGraph struct {
	costs map[[2]grid.Node]float64
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{costs: make(map[[2]grid.Node]float64)}
}

func (f *fakeGraph) Width() int  { return math.MaxInt32 }
func (f *fakeGraph) Height() int { return math.MaxInt32 }

func (f *fakeGraph) Transition(from, to grid.Node) (float64, error) {
	return f.costs[[2]grid.Node{from, to}], nil
}

func (f *fakeGraph) SetTransition(from, to grid.Node, cost float64) error {
	f.costs[[2]grid.Node{from, to}] = cost
	return nil
}

// set is a chaining shorthand for SetTransition.
func (f *fakeGraph) set(from, to grid.Node, cost float64) *fakeGraph {
	_ = f.SetTransition(from, to, cost)
	return f
}

// newUniformGrid returns a size×size dense graph with every transition costing cost.
func newUniformGrid(t testing.TB, size int, cost float64) *grid.DenseGraph {
	t.Helper()
	g, err := grid.NewDenseGraph(size, size, cost)
	require.NoError(t, err)
	return g
}

// diagonals are the four diagonal unit offsets.
var diagonals = []grid.Node{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}

// newOctileGrid returns a size×size graph where orthogonal moves cost 1 and
// diagonal moves cost √2, so straight and diagonal routes have unique optima.
func newOctileGrid(t testing.TB, size int) *grid.DenseGraph {
	t.Helper()
	g := newUniformGrid(t, size, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := grid.Node{X: x, Y: y}
			for _, d := range diagonals {
				m := n.Add(d)
				if !grid.InBounds(g, m) {
					continue
				}
				require.NoError(t, g.SetTransition(n, m, math.Sqrt2))
			}
		}
	}
	return g
}

// requireContiguous checks each step of nodes moves by at most one cell per axis.
func requireContiguous(t *testing.T, nodes []grid.Node) {
	t.Helper()
	for i := 1; i < len(nodes); i++ {
		dx, dy := nodes[i].X-nodes[i-1].X, nodes[i].Y-nodes[i-1].Y
		require.True(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 && (dx != 0 || dy != 0),
			"step %v -> %v is not a single move", nodes[i-1], nodes[i])
	}
}

// searchCost recomputes the search-direction cost of a path.
func searchCost(t *testing.T, g grid.Graph, nodes []grid.Node) float64 {
	t.Helper()
	var sum float64
	for i := 0; i+1 < len(nodes); i++ {
		w, err := g.Transition(nodes[i+1], nodes[i])
		require.NoError(t, err)
		sum += w
	}
	return sum
}
