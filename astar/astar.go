package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/neighbors"
	"github.com/katalvlaran/gridastar/pqueue"

	"k8s.io/klog/v2"
)

// See: https://en.wikipedia.org/wiki/A*_search_algorithm

// PathFinder runs A* searches with a fixed expander and configuration.
type PathFinder struct {
	expander neighbors.Expander
	cfg      Config
}

// NewPathFinder returns a PathFinder that asks expander for adjacency.
// Returns ErrNilExpander if expander is nil.
func NewPathFinder(expander neighbors.Expander, opts ...Option) (*PathFinder, error) {
	if expander == nil {
		return nil, ErrNilExpander
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathFinder{expander: expander, cfg: cfg}, nil
}

// Config returns the finder's settings.
func (f *PathFinder) Config() Config { return f.cfg }

// Find returns a minimum-cost path from opts.Start to opts.End on g.
//
// Returns (nil, nil) when no path exists. Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. opts must be non-nil (ErrNilOptions).
//
// Errors raised by the expander or graph during the search are wrapped and
// returned with a nil path.
func (f *PathFinder) Find(g grid.Graph, opts *Options) (*GraphPath, error) {
	path, _, err := f.FindWithStats(g, opts)
	return path, err
}

// FindWithStats behaves like Find and also reports search counters.
func (f *PathFinder) FindWithStats(g grid.Graph, opts *Options) (*GraphPath, Stats, error) {
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	if opts == nil {
		return nil, Stats{}, ErrNilOptions
	}

	r := newRunner(f, g, *opts)
	if err := r.process(); err != nil {
		return nil, r.stats, err
	}
	path := r.path()

	if klog.V(2).Enabled() {
		if path == nil {
			klog.Infof("astar: no path %v -> %v (expanded=%d pushed=%d stale=%d)",
				opts.Start, opts.End, r.stats.Expanded, r.stats.Pushed, r.stats.Stale)
		} else {
			klog.Infof("astar: path %v -> %v len=%d cost=%g (expanded=%d pushed=%d stale=%d)",
				opts.Start, opts.End, path.Len(), path.Cost, r.stats.Expanded, r.stats.Pushed, r.stats.Stale)
		}
	}

	return path, r.stats, nil
}

// searchItem is one frontier entry: a node and the cost and geometric
// length it was pushed with.
type searchItem struct {
	node   grid.Node
	cost   float64
	length float64
}

// runner holds the mutable state of a single Find call.
type runner struct {
	g         grid.Graph
	expander  neighbors.Expander
	heuristic Heuristic
	policy    PriorityPolicy
	start     grid.Node
	end       grid.Node

	best     map[grid.Node]float64   // accumulated cost from End
	length   map[grid.Node]float64   // Euclidean length of the best route from End
	pred     map[grid.Node]grid.Node // node → the node it was reached from
	frontier *pqueue.PriorityQueue[searchItem]
	scratch  []grid.Node // neighbor buffer reused across expansions
	stats    Stats
}

// newRunner seeds the frontier with End at priority 0.
func newRunner(f *PathFinder, g grid.Graph, opts Options) *runner {
	r := &runner{
		g:         g,
		expander:  f.expander,
		heuristic: f.cfg.Heuristic,
		policy:    f.cfg.Policy,
		start:     opts.Start,
		end:       opts.End,
		best:      map[grid.Node]float64{opts.End: 0},
		length:    map[grid.Node]float64{opts.End: 0},
		pred:      make(map[grid.Node]grid.Node),
		frontier:  pqueue.New[searchItem](64),
		scratch:   make([]grid.Node, 0, 8),
	}
	r.frontier.Push(0, searchItem{node: opts.End, cost: 0})
	r.stats.Pushed = 1

	return r
}

// process pops frontier entries until Start is popped or the frontier is empty.
func (r *runner) process() error {
	for r.frontier.Len() > 0 {
		item, err := r.frontier.Pop()
		if err != nil {
			return err
		}

		// A cheaper (or equally cheap but shorter) route was recorded after
		// this entry was pushed.
		if cheaper(r.best[item.node], r.length[item.node], item.cost, item.length) {
			r.stats.Stale++
			continue
		}

		if item.node == r.start {
			return nil
		}

		if err := r.relax(item.node); err != nil {
			return err
		}
	}

	return nil
}

// relax expands current and records any neighbor whose route improves.
func (r *runner) relax(current grid.Node) error {
	if err := r.expander.Neighbors(r.g, current, &r.scratch); err != nil {
		return fmt.Errorf("astar: expand %v: %w", current, err)
	}
	r.stats.Expanded++
	if v := klog.V(5); v.Enabled() {
		v.Infof("astar: expand %v cost=%g neighbors=%v", current, r.best[current], r.scratch)
	}

	base, baseLen := r.best[current], r.length[current]
	for _, n := range r.scratch {
		// current is nearer End, n nearer Start: search-direction cost.
		w, err := r.g.Transition(current, n)
		if err != nil {
			return fmt.Errorf("astar: transition %v→%v: %w", current, n, err)
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, current, n, w)
		}

		newCost := base + w
		newLen := baseLen + math.Hypot(float64(n.X-current.X), float64(n.Y-current.Y))
		if old, seen := r.best[n]; seen && !cheaper(newCost, newLen, old, r.length[n]) {
			continue
		}
		r.best[n] = newCost
		r.length[n] = newLen
		r.pred[n] = current
		r.frontier.PushTie(r.priority(newCost, n), newLen, searchItem{node: n, cost: newCost, length: newLen})
		r.stats.Pushed++
	}

	return nil
}

// cheaper orders routes by cost, then by Euclidean length. On uniform costs
// the length key keeps straight lines ahead of zig-zags.
func cheaper(aCost, aLen, bCost, bLen float64) bool {
	return aCost < bCost || (aCost == bCost && aLen < bLen)
}

// priority applies the configured policy to newCost + h(Start, n).
func (r *runner) priority(newCost float64, n grid.Node) float64 {
	p := newCost + r.heuristic(r.start, n)
	if r.policy == PriorityTruncate {
		return math.Trunc(p)
	}
	return p
}

// path walks predecessor links from Start until a node without one (End).
// Returns nil if Start was never reached.
func (r *runner) path() *GraphPath {
	cost, ok := r.best[r.start]
	if !ok {
		return nil
	}

	nodes := []grid.Node{r.start}
	for n := r.start; ; {
		next, ok := r.pred[n]
		if !ok {
			break
		}
		nodes = append(nodes, next)
		n = next
	}

	return &GraphPath{Nodes: nodes, Cost: cost}
}
