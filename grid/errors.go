package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Match them with errors.Is; callsites
// wrap them with the method name and offending address.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be > 0")
	// ErrTooLarge indicates a node count above MaxNodes.
	ErrTooLarge = errors.New("grid: graph exceeds MaxNodes")
	// ErrOutOfBounds indicates a node address outside the graph bounds.
	ErrOutOfBounds = errors.New("grid: node out of graph bounds")
	// ErrInvalidCost indicates a NaN or negative transition cost.
	ErrInvalidCost = errors.New("grid: transition cost must be a non-negative number")
)

// Method tags used in error wrappers.
const (
	ctxTransition    = "Transition"
	ctxSetTransition = "SetTransition"
	ctxSetNodeCost   = "SetNodeCost"
)

// denseErrorf attaches the method name and both endpoints to a sentinel.
func denseErrorf(method string, from, to Node, err error) error {
	return fmt.Errorf("DenseGraph.%s(%v,%v): %w", method, from, to, err)
}
