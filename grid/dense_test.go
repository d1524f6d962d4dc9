package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/stretchr/testify/require"
)

// TestNewDenseGraphInvalidDimensions ensures NewDenseGraph rejects non-positive dimensions.
func TestNewDenseGraphInvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
	}{
		{"ZeroHeight", 0, 3},
		{"ZeroWidth", 3, 0},
		{"NegativeHeight", -1, 3},
		{"NegativeWidth", 3, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.NewDenseGraph(tc.height, tc.width, 1)
			require.ErrorIs(t, err, grid.ErrInvalidDimensions)
			require.Nil(t, g)
		})
	}
}

// TestNewDenseGraphTooLarge ensures oversized dimensions fail before allocation,
// including products that would overflow int.
func TestNewDenseGraphTooLarge(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
	}{
		{"JustOverLimit", 1, grid.MaxNodes + 1},
		{"SquareOverLimit", 1 << 16, 1 << 16},
		{"ProductOverflows", math.MaxInt, 2},
		{"ProductOverflowsSwapped", 2, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.NewDenseGraph(tc.height, tc.width, 1)
			require.ErrorIs(t, err, grid.ErrTooLarge)
			require.Nil(t, g)
		})
	}
}

// TestDenseGraphBounds verifies Width/Height follow the (height, width) argument order.
func TestDenseGraphBounds(t *testing.T) {
	g, err := grid.NewDenseGraph(2, 3, 0)
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.True(t, grid.InBounds(g, grid.Node{X: 2, Y: 1}))
	require.False(t, grid.InBounds(g, grid.Node{X: 1, Y: 2}))
}

// TestDenseGraphGetTransition reads the default cost between two nodes.
func TestDenseGraphGetTransition(t *testing.T) {
	g, err := grid.NewDenseGraph(1, 2, 1)
	require.NoError(t, err)

	cost, err := g.Transition(grid.Node{X: 0, Y: 0}, grid.Node{X: 1, Y: 0})
	require.NoError(t, err)
	require.Equal(t, 1.0, cost)
}

// TestDenseGraphGetTransitionInCorners reads from the origin to every corner of a 2×2 graph.
func TestDenseGraphGetTransitionInCorners(t *testing.T) {
	g, err := grid.NewDenseGraph(2, 2, 1)
	require.NoError(t, err)

	for _, to := range []grid.Node{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}} {
		cost, err := g.Transition(grid.Node{}, to)
		require.NoError(t, err, "to=%v", to)
		require.Equal(t, 1.0, cost, "to=%v", to)
	}
}

// TestDenseGraphSetTransition checks that only the exact ordered pair changes.
func TestDenseGraphSetTransition(t *testing.T) {
	const def = 2.5
	g, err := grid.NewDenseGraph(3, 3, def)
	require.NoError(t, err)

	a, b := grid.Node{X: 0, Y: 0}, grid.Node{X: 1, Y: 0}
	require.NoError(t, g.SetTransition(a, b, 0))

	for y1 := 0; y1 < 3; y1++ {
		for x1 := 0; x1 < 3; x1++ {
			for y2 := 0; y2 < 3; y2++ {
				for x2 := 0; x2 < 3; x2++ {
					from, to := grid.Node{X: x1, Y: y1}, grid.Node{X: x2, Y: y2}
					cost, err := g.Transition(from, to)
					require.NoError(t, err)
					want := def
					if from == a && to == b {
						want = 0
					}
					require.Equal(t, want, cost, "%v→%v", from, to)
				}
			}
		}
	}
}

// TestDenseGraphAsymmetric verifies reverse transitions are stored independently.
func TestDenseGraphAsymmetric(t *testing.T) {
	g, err := grid.NewDenseGraph(2, 2, 1)
	require.NoError(t, err)
	a, b := grid.Node{X: 0, Y: 0}, grid.Node{X: 1, Y: 1}

	require.NoError(t, g.SetTransition(a, b, 7))
	forward, _ := g.Transition(a, b)
	backward, _ := g.Transition(b, a)
	require.Equal(t, 7.0, forward)
	require.Equal(t, 1.0, backward)

	require.NoError(t, g.SetTransitionSymmetric(a, b, 3))
	forward, _ = g.Transition(a, b)
	backward, _ = g.Transition(b, a)
	require.Equal(t, 3.0, forward)
	require.Equal(t, 3.0, backward)
}

// TestDenseGraphOutOfBounds ensures both accessors reject either endpoint outside the graph.
func TestDenseGraphOutOfBounds(t *testing.T) {
	g, err := grid.NewDenseGraph(2, 3, 1)
	require.NoError(t, err)
	in := grid.Node{X: 1, Y: 1}

	bad := []grid.Node{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}}
	for _, n := range bad {
		_, err = g.Transition(n, in)
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "from=%v", n)
		_, err = g.Transition(in, n)
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "to=%v", n)
		require.ErrorIs(t, g.SetTransition(n, in, 5), grid.ErrOutOfBounds, "from=%v", n)
		require.ErrorIs(t, g.SetTransition(in, n, 5), grid.ErrOutOfBounds, "to=%v", n)
	}

	// nothing was written
	cost, err := g.Transition(in, in)
	require.NoError(t, err)
	require.Equal(t, 1.0, cost)
}

// TestDenseGraphInvalidCost rejects NaN and negative costs but accepts +Inf walls.
func TestDenseGraphInvalidCost(t *testing.T) {
	g, err := grid.NewDenseGraph(1, 2, 1)
	require.NoError(t, err)
	a, b := grid.Node{X: 0, Y: 0}, grid.Node{X: 1, Y: 0}

	require.ErrorIs(t, g.SetTransition(a, b, math.NaN()), grid.ErrInvalidCost)
	require.ErrorIs(t, g.SetTransition(a, b, -1), grid.ErrInvalidCost)
	require.NoError(t, g.SetTransition(a, b, math.Inf(1)))

	cost, _ := g.Transition(a, b)
	require.True(t, math.IsInf(cost, 1))
}

// TestDenseGraphSetNodeCost checks every neighbor's transition into the node changes, and nothing else.
func TestDenseGraphSetNodeCost(t *testing.T) {
	g, err := grid.NewDenseGraph(3, 3, 1)
	require.NoError(t, err)
	center := grid.Node{X: 1, Y: 1}
	require.NoError(t, g.SetNodeCost(center, 9))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			n := grid.Node{X: x, Y: y}
			if n == center {
				continue
			}
			in, _ := g.Transition(n, center)
			out, _ := g.Transition(center, n)
			require.Equal(t, 9.0, in, "into center from %v", n)
			require.Equal(t, 1.0, out, "out of center to %v", n)
		}
	}

	self, _ := g.Transition(center, center)
	require.Equal(t, 1.0, self)
	require.ErrorIs(t, g.SetNodeCost(grid.Node{X: 3, Y: 0}, 1), grid.ErrOutOfBounds)
	require.ErrorIs(t, g.SetNodeCost(center, -2), grid.ErrInvalidCost)
}

// TestDenseGraphCloneIndependence ensures Clone does not share storage.
func TestDenseGraphCloneIndependence(t *testing.T) {
	g, err := grid.NewDenseGraph(2, 2, 1)
	require.NoError(t, err)
	a, b := grid.Node{X: 0, Y: 0}, grid.Node{X: 1, Y: 0}

	clone := g.Clone()
	require.NoError(t, clone.SetTransition(a, b, 4))

	orig, _ := g.Transition(a, b)
	cloned, _ := clone.Transition(a, b)
	require.Equal(t, 1.0, orig)
	require.Equal(t, 4.0, cloned)
}

// TestDenseGraphCoordinate round-trips row-major indices.
func TestDenseGraphCoordinate(t *testing.T) {
	g, err := grid.NewDenseGraph(2, 3, 0)
	require.NoError(t, err)
	require.Equal(t, grid.Node{X: 0, Y: 0}, g.Coordinate(0))
	require.Equal(t, grid.Node{X: 2, Y: 0}, g.Coordinate(2))
	require.Equal(t, grid.Node{X: 0, Y: 1}, g.Coordinate(3))
	require.Equal(t, grid.Node{X: 2, Y: 1}, g.Coordinate(5))
}
