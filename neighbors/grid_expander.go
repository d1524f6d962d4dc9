package neighbors

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
)

// GridExpander finds reachable neighbors on a grid graph.
// It holds only immutable configuration and may be shared between goroutines.
type GridExpander struct {
	maxCost    float64
	directions []grid.Node
}

var _ Expander = (*GridExpander)(nil)

// NewGridExpander returns an expander that treats any transition costing
// maxCost or more as impassable.
func NewGridExpander(maxCost float64, opts ...Option) *GridExpander {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &GridExpander{
		maxCost:    maxCost,
		directions: cfg.Directions,
	}
}

// MaxCost returns the reachability threshold.
func (e *GridExpander) MaxCost() float64 { return e.maxCost }

// Directions returns a copy of the probed offsets in probe order.
func (e *GridExpander) Directions() []grid.Node {
	return append([]grid.Node(nil), e.directions...)
}

// Neighbors writes the nodes reachable from node into *out, in direction order.
//
// Validation happens before *out is touched:
//  1. g must be non-nil (ErrNilGraph).
//  2. out must be non-nil (ErrNilBuffer).
//  3. node must lie inside g (wrapped grid.ErrOutOfBounds).
//
// If any Transition lookup fails, *out is left untouched.
//
// Complexity: O(d) for d directions, no allocation once *out has capacity d
// and d ≤ 8.
func (e *GridExpander) Neighbors(g grid.Graph, node grid.Node, out *[]grid.Node) error {
	if g == nil {
		return ErrNilGraph
	}
	if out == nil {
		return ErrNilBuffer
	}
	if !grid.InBounds(g, node) {
		return fmt.Errorf("neighbors: node %v in %dx%d graph: %w", node, g.Width(), g.Height(), grid.ErrOutOfBounds)
	}

	var scratch [8]grid.Node
	res := scratch[:0]
	for _, d := range e.directions {
		next := node.Add(d)
		if !grid.InBounds(g, next) {
			continue
		}
		cost, err := g.Transition(node, next)
		if err != nil {
			return fmt.Errorf("neighbors: transition %v→%v: %w", node, next, err)
		}
		if cost >= e.maxCost {
			continue // impassable
		}
		res = append(res, next)
	}
	*out = append((*out)[:0], res...)

	return nil
}
