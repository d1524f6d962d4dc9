package astar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridastar/grid"
)

// Sentinel errors returned by the astar package.
var (
	// ErrNilGraph indicates a nil grid.Graph was passed to Find.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilOptions indicates nil *Options were passed to Find.
	ErrNilOptions = errors.New("astar: options are nil")

	// ErrNilExpander indicates NewPathFinder received a nil neighbors.Expander.
	ErrNilExpander = errors.New("astar: neighbor expander is nil")

	// ErrNegativeCost indicates the graph reported a negative or NaN transition
	// cost during the search.
	ErrNegativeCost = errors.New("astar: negative transition cost encountered")

	// ErrNilHeuristic indicates WithHeuristic received nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrUnknownHeuristic indicates an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")

	// ErrUnknownPolicy indicates an unrecognised priority policy.
	ErrUnknownPolicy = errors.New("astar: unknown priority policy")
)

// Options holds the per-call parameters of Find. Neither node is validated
// up front: an unreachable or out-of-graph Start ends in "no path", an
// out-of-graph End surfaces the expander's bounds error.
type Options struct {
	Start grid.Node // first node of the returned path
	End   grid.Node // last node of the returned path; the search starts here
}

// GraphPath is a successful search result.
type GraphPath struct {
	// Nodes runs from Start to End inclusive.
	Nodes []grid.Node
	// Cost is the accumulated transition cost the search minimised:
	// the sum of Transition(Nodes[i+1], Nodes[i]).
	Cost float64
}

// Len returns the number of nodes on the path.
func (p *GraphPath) Len() int { return len(p.Nodes) }

// Start returns the first node of the path.
func (p *GraphPath) Start() grid.Node { return p.Nodes[0] }

// End returns the last node of the path.
func (p *GraphPath) End() grid.Node { return p.Nodes[len(p.Nodes)-1] }

// String formats the path as "(x,y) -> (x,y) -> ...".
func (p *GraphPath) String() string {
	var sb strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}

// Stats reports the work done by one search.
type Stats struct {
	Expanded int // nodes whose neighbors were requested
	Pushed   int // frontier insertions, including the initial End entry
	Stale    int // popped entries skipped because a better route was recorded later
}

// PriorityPolicy selects how frontier priorities are computed from
// accumulated cost plus heuristic.
type PriorityPolicy int

const (
	// PriorityExact uses newCost + h unchanged.
	PriorityExact PriorityPolicy = iota

	// PriorityTruncate uses trunc(newCost + h), i.e. integer priorities.
	// Cheaper to compare but may lose optimality on fractional costs.
	PriorityTruncate
)

// String returns "exact" or "truncate".
func (p PriorityPolicy) String() string {
	switch p {
	case PriorityExact:
		return "exact"
	case PriorityTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("PriorityPolicy(%d)", int(p))
	}
}

// ParsePriorityPolicy converts "exact" or "truncate" into a PriorityPolicy.
func ParsePriorityPolicy(s string) (PriorityPolicy, error) {
	switch s {
	case "exact":
		return PriorityExact, nil
	case "truncate":
		return PriorityTruncate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Config holds PathFinder settings.
//
// Heuristic – remaining-cost estimate toward Start. Default Chebyshev.
// Policy    – frontier priority policy. Default PriorityExact.
type Config struct {
	Heuristic Heuristic
	Policy    PriorityPolicy
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Config)

// WithHeuristic replaces the default Chebyshev heuristic.
// Panics with ErrNilHeuristic if h is nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}
	return func(c *Config) {
		c.Heuristic = h
	}
}

// WithPriorityPolicy selects PriorityExact or PriorityTruncate.
// Panics with ErrUnknownPolicy for any other value.
func WithPriorityPolicy(p PriorityPolicy) Option {
	if p != PriorityExact && p != PriorityTruncate {
		panic(ErrUnknownPolicy.Error())
	}
	return func(c *Config) {
		c.Policy = p
	}
}

// DefaultConfig returns Chebyshev with PriorityExact.
func DefaultConfig() Config {
	return Config{
		Heuristic: Chebyshev,
		Policy:    PriorityExact,
	}
}
