package regions

import (
	"container/list"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/neighbors"
)

// ErrNoRoute indicates Breach could not connect the two nodes at all.
var ErrNoRoute = errors.New("regions: no route between nodes")

// Reachable returns every node discoverable from origin through e, origin
// first, in breadth-first order.
func Reachable(g grid.Graph, e neighbors.Expander, origin grid.Node) ([]grid.Node, error) {
	seen := map[grid.Node]bool{origin: true}
	queue := []grid.Node{origin}
	var buf []grid.Node

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if err := e.Neighbors(g, u, &buf); err != nil {
			return nil, fmt.Errorf("regions: expand %v: %w", u, err)
		}
		for _, v := range buf {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return queue, nil
}

// Connected reports whether a search from end can reach start.
func Connected(g grid.Graph, e neighbors.Expander, start, end grid.Node) (bool, error) {
	nodes, err := Reachable(g, e, end)
	if err != nil {
		return false, err
	}
	for _, n := range nodes {
		if n == start {
			return true, nil
		}
	}

	return false, nil
}

// Components groups the cells of g into islands: two adjacent cells share an
// island when e lists each as a neighbor of the other. Islands are returned in
// row-major order of their first cell; a wall cell forms an island of its own.
func Components(g grid.Graph, e neighbors.Expander) ([][]grid.Node, error) {
	w, h := g.Width(), g.Height()
	seen := make([]bool, w*h)
	index := func(n grid.Node) int { return n.Y*w + n.X }

	var comps [][]grid.Node
	var fwd, back []grid.Node
	reverseHas := func(v, u grid.Node) (bool, error) {
		if err := e.Neighbors(g, v, &back); err != nil {
			return false, err
		}
		for _, m := range back {
			if m == u {
				return true, nil
			}
		}
		return false, nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n0 := grid.Node{X: x, Y: y}
			if seen[index(n0)] {
				continue
			}
			seen[index(n0)] = true
			comp := []grid.Node{n0}

			for qi := 0; qi < len(comp); qi++ {
				u := comp[qi]
				if err := e.Neighbors(g, u, &fwd); err != nil {
					return nil, fmt.Errorf("regions: expand %v: %w", u, err)
				}
				for _, v := range fwd {
					if seen[index(v)] {
						continue
					}
					ok, err := reverseHas(v, u)
					if err != nil {
						return nil, fmt.Errorf("regions: expand %v: %w", v, err)
					}
					if ok {
						seen[index(v)] = true
						comp = append(comp, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps, nil
}

// Breach returns the Start-to-End route that crosses the fewest moves e would
// reject, and that count. Moves are taken in e's direction order and
// classified with e's threshold, searching from end toward start.
//
// A zero count means an ordinary path exists.
func Breach(g grid.Graph, e *neighbors.GridExpander, start, end grid.Node) ([]grid.Node, int, error) {
	for _, n := range []grid.Node{start, end} {
		if !grid.InBounds(g, n) {
			return nil, 0, fmt.Errorf("regions: breach node %v: %w", n, grid.ErrOutOfBounds)
		}
	}

	w := g.Width()
	total := w * g.Height()
	index := func(n grid.Node) int { return n.Y*w + n.X }
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: passable moves go to the front, blocked ones to the back.
	dq := list.New()
	dist[index(end)] = 0
	dq.PushFront(end)
	dirs := e.Directions()
	found := false

	for dq.Len() > 0 {
		el := dq.Front()
		dq.Remove(el)
		u := el.Value.(grid.Node)
		if u == start {
			found = true
			break
		}
		ui := index(u)
		for _, d := range dirs {
			v := u.Add(d)
			if !grid.InBounds(g, v) {
				continue
			}
			c, err := g.Transition(u, v)
			if err != nil {
				return nil, 0, fmt.Errorf("regions: transition %v→%v: %w", u, v, err)
			}
			step := 0
			if c >= e.MaxCost() {
				step = 1
			}
			vi := index(v)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if !found {
		return nil, 0, ErrNoRoute
	}

	path := []grid.Node{start}
	for at := prev[index(start)]; at >= 0; at = prev[at] {
		path = append(path, grid.Node{X: at % w, Y: at / w})
	}

	return path, dist[index(start)], nil
}
