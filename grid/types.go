package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Node addresses a single grid vertex. Equality is structural, so Node is
// safe to use as a map key; it carries no state besides its coordinates.
type Node struct {
	X, Y int
}

// Add returns the component-wise sum of n and d.
func (n Node) Add(d Node) Node {
	return Node{X: n.X + d.X, Y: n.Y + d.Y}
}

// String formats n as "(x,y)".
func (n Node) String() string {
	return "(" + strconv.Itoa(n.X) + "," + strconv.Itoa(n.Y) + ")"
}

// ParseNode parses "x,y" (optionally wrapped in parentheses) into a Node.
func ParseNode(s string) (Node, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Node{}, fmt.Errorf("grid: cannot parse node %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Node{}, fmt.Errorf("grid: cannot parse node x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Node{}, fmt.Errorf("grid: cannot parse node y in %q: %w", s, err)
	}

	return Node{X: x, Y: y}, nil
}

// Graph is the capability the search and neighbor packages require.
//
// Bounds are fixed at construction. Every ordered pair of in-bound nodes maps
// to a non-negative transition cost; Transition(a, b) may differ from
// Transition(b, a). Passing an address outside [0,Width)×[0,Height) to either
// cost method is a contract violation reported as ErrOutOfBounds.
type Graph interface {
	// Width returns the horizontal node count.
	Width() int
	// Height returns the vertical node count.
	Height() int
	// Transition returns the cost of moving from one node to another.
	Transition(from, to Node) (float64, error)
	// SetTransition overwrites the cost of moving from one node to another.
	SetTransition(from, to Node, cost float64) error
}

// InBounds reports whether n lies within g's rectangle.
// Complexity: O(1).
func InBounds(g Graph, n Node) bool {
	return n.X >= 0 && n.Y >= 0 && n.X < g.Width() && n.Y < g.Height()
}
