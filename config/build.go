package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/neighbors"
)

// World is everything a search over a Scenario needs.
type World struct {
	Graph    *grid.DenseGraph
	Expander *neighbors.GridExpander
	Finder   *astar.PathFinder
	Options  *astar.Options
}

// Build validates s and materialises its graph, expander, finder and
// search options.
func (s Scenario) Build() (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g, err := s.buildGraph()
	if err != nil {
		return nil, err
	}

	dirs := neighbors.Directions8
	if s.Directions == 4 {
		dirs = neighbors.Directions4
	}
	exp := neighbors.NewGridExpander(s.MaxCost, neighbors.WithDirections(dirs))

	h, err := astar.HeuristicByName(s.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	policy, err := astar.ParsePriorityPolicy(s.Priority)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	finder, err := astar.NewPathFinder(exp, astar.WithHeuristic(h), astar.WithPriorityPolicy(policy))
	if err != nil {
		return nil, err
	}

	start, _ := grid.ParseNode(s.Start)
	end, _ := grid.ParseNode(s.End)

	return &World{
		Graph:    g,
		Expander: exp,
		Finder:   finder,
		Options:  &astar.Options{Start: start, End: end},
	}, nil
}

// buildGraph layers default cost, diagonal cost, cell costs, edges, then walls.
func (s Scenario) buildGraph() (*grid.DenseGraph, error) {
	g, err := grid.NewDenseGraph(s.Height, s.Width, s.DefaultCost)
	if err != nil {
		return nil, err
	}

	if s.DiagonalCost != nil {
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				from := grid.Node{X: x, Y: y}
				for _, d := range []grid.Node{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}} {
					to := from.Add(d)
					if !grid.InBounds(g, to) {
						continue
					}
					if err := g.SetTransition(from, to, *s.DiagonalCost); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	for _, c := range s.Costs {
		n, _ := grid.ParseNode(c.Cell)
		if err := g.SetNodeCost(n, c.Cost); err != nil {
			return nil, err
		}
	}

	for _, e := range s.Edges {
		from, _ := grid.ParseNode(e.From)
		to, _ := grid.ParseNode(e.To)
		set := g.SetTransition
		if e.Symmetric {
			set = g.SetTransitionSymmetric
		}
		if err := set(from, to, e.Cost); err != nil {
			return nil, err
		}
	}

	for _, w := range s.Walls {
		n, _ := grid.ParseNode(w)
		if err := g.SetNodeCost(n, math.Inf(1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WallSet returns the parsed wall cells, for rendering.
func (s Scenario) WallSet() map[grid.Node]bool {
	walls := make(map[grid.Node]bool, len(s.Walls))
	for _, w := range s.Walls {
		if n, err := grid.ParseNode(w); err == nil {
			walls[n] = true
		}
	}

	return walls
}
