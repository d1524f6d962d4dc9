package grid

import (
	"fmt"
	"math"
)

// DenseGraph stores one transition cost for every ordered pair of nodes in a
// width×height rectangle.
//
// Nodes are flattened row-major (index = y*width + x); the cost of moving
// from node i to node j lives at costs[i*n + j] with n = width*height. The
// layout is an implementation detail and never leaks through the API.
type DenseGraph struct {
	width, height int
	n             int       // node count, width*height
	costs         []float64 // len == n*n, row-major by source node
}

var _ Graph = (*DenseGraph)(nil)

// adjacentOffsets lists the eight unit and diagonal steps used by SetNodeCost.
var adjacentOffsets = [8]Node{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// MaxNodes bounds Width×Height for a DenseGraph. The cost matrix holds
// MaxNodes² float64 values (128 MiB) at the limit.
const MaxNodes = 1 << 12

// NewDenseGraph builds a height×width graph whose every transition, including
// self-transitions, costs defaultCost.
//
// Returns ErrInvalidDimensions if height or width is not positive and
// ErrTooLarge if height×width exceeds MaxNodes.
// Complexity: O((W·H)²) time and memory.
func NewDenseGraph(height, width int, defaultCost float64) (*DenseGraph, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrInvalidDimensions
	}
	// width > MaxNodes/height avoids computing an overflowing product.
	if width > MaxNodes/height {
		return nil, fmt.Errorf("NewDenseGraph(%d,%d): %w", height, width, ErrTooLarge)
	}
	n := width * height
	costs := make([]float64, n*n)
	if defaultCost != 0 {
		for i := range costs {
			costs[i] = defaultCost
		}
	}

	return &DenseGraph{
		width:  width,
		height: height,
		n:      n,
		costs:  costs,
	}, nil
}

// Width returns the horizontal node count.
func (g *DenseGraph) Width() int { return g.width }

// Height returns the vertical node count.
func (g *DenseGraph) Height() int { return g.height }

// index flattens an in-bound node. Callers must check bounds first.
func (g *DenseGraph) index(n Node) int {
	return n.Y*g.width + n.X
}

// Coordinate converts a row-major node index back to its address.
// Complexity: O(1).
func (g *DenseGraph) Coordinate(idx int) Node {
	return Node{X: idx % g.width, Y: idx / g.width}
}

// offsetOf bounds-checks both endpoints and returns the flat cell offset.
func (g *DenseGraph) offsetOf(from, to Node) (int, error) {
	if !InBounds(g, from) || !InBounds(g, to) {
		return 0, ErrOutOfBounds
	}

	return g.index(from)*g.n + g.index(to), nil
}

// Transition returns the cost of moving from one node to another.
// Returns an error wrapping ErrOutOfBounds if either endpoint is outside the graph.
// Complexity: O(1).
func (g *DenseGraph) Transition(from, to Node) (float64, error) {
	off, err := g.offsetOf(from, to)
	if err != nil {
		return 0, denseErrorf(ctxTransition, from, to, err)
	}

	return g.costs[off], nil
}

// SetTransition overwrites the cost of moving from one node to another.
// +Inf is accepted and reads as a wall to any finite max-cost threshold.
//
// Errors (nothing is written on failure):
//   - ErrOutOfBounds if either endpoint is outside the graph.
//   - ErrInvalidCost if cost is NaN or negative.
//
// Complexity: O(1).
func (g *DenseGraph) SetTransition(from, to Node, cost float64) error {
	off, err := g.offsetOf(from, to)
	if err != nil {
		return denseErrorf(ctxSetTransition, from, to, err)
	}
	if math.IsNaN(cost) || cost < 0 {
		return denseErrorf(ctxSetTransition, from, to, ErrInvalidCost)
	}
	g.costs[off] = cost

	return nil
}

// SetTransitionSymmetric sets the same cost in both directions between a and b.
func (g *DenseGraph) SetTransitionSymmetric(a, b Node, cost float64) error {
	if err := g.SetTransition(a, b, cost); err != nil {
		return err
	}

	return g.SetTransition(b, a, cost)
}

// SetNodeCost sets the cost of entering n from each of its in-bound
// orthogonal and diagonal neighbors. Outgoing costs of n are left alone.
// Complexity: O(1).
func (g *DenseGraph) SetNodeCost(n Node, cost float64) error {
	if !InBounds(g, n) {
		return denseErrorf(ctxSetNodeCost, n, n, ErrOutOfBounds)
	}
	if math.IsNaN(cost) || cost < 0 {
		return denseErrorf(ctxSetNodeCost, n, n, ErrInvalidCost)
	}
	to := g.index(n)
	for _, d := range adjacentOffsets {
		from := n.Add(d)
		if !InBounds(g, from) {
			continue
		}
		g.costs[g.index(from)*g.n+to] = cost
	}

	return nil
}

// Clone returns an independent deep copy of g.
// Complexity: O((W·H)²).
func (g *DenseGraph) Clone() *DenseGraph {
	cp := make([]float64, len(g.costs))
	copy(cp, g.costs)

	return &DenseGraph{
		width:  g.width,
		height: g.height,
		n:      g.n,
		costs:  cp,
	}
}
