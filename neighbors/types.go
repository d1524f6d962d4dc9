package neighbors

import (
	"errors"

	"github.com/katalvlaran/gridastar/grid"
)

// Sentinel errors for neighbor expansion.
var (
	// ErrNilGraph indicates a nil grid.Graph was passed.
	ErrNilGraph = errors.New("neighbors: graph is nil")
	// ErrNilBuffer indicates a nil result buffer was passed.
	ErrNilBuffer = errors.New("neighbors: result buffer is nil")
	// ErrBadDirection indicates a zero offset in WithDirections.
	ErrBadDirection = errors.New("neighbors: direction offset must be non-zero")
)

// Expander lists the nodes reachable from node in one hop.
// Implementations truncate *out and append the reachable nodes to it.
type Expander interface {
	Neighbors(g grid.Graph, node grid.Node, out *[]grid.Node) error
}

// Directions8 is the default 8-directional order: E, SE, S, SW, W, NW, N, NE.
var Directions8 = []grid.Node{
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// Directions4 is the orthogonal-only order: E, S, W, N.
var Directions4 = []grid.Node{
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
}

// Options configures a GridExpander.
type Options struct {
	Directions []grid.Node // candidate offsets, probed in order
}

// Option represents a functional option for configuring a GridExpander.
type Option func(*Options)

// WithDirections replaces the probed offsets. The slice is copied.
// Panics with ErrBadDirection if any offset is (0,0).
func WithDirections(dirs []grid.Node) Option {
	for _, d := range dirs {
		if d == (grid.Node{}) {
			panic(ErrBadDirection.Error())
		}
	}
	cp := append([]grid.Node(nil), dirs...)

	return func(o *Options) {
		o.Directions = cp
	}
}

// DefaultOptions returns Options with Directions8.
func DefaultOptions() Options {
	return Options{Directions: Directions8}
}
