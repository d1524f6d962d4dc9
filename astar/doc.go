// Package astar finds a minimum-cost path between two nodes of a grid.Graph
// with the A* algorithm.
//
// Overview:
//
//   - The search runs backward, from Options.End toward Options.Start, so the
//     predecessor chain read from Start already points at End and the path
//     never needs reversing.
//   - While searching, the cost of stepping from the expanded node `current`
//     (closer to End) to a neighbor `n` (closer to Start) is read as
//     g.Transition(current, n). On asymmetric graphs this is the direction
//     that is minimised.
//   - Neighbors come from a neighbors.Expander, which also decides which
//     transitions are passable.
//   - The frontier is a pqueue.PriorityQueue with lazy decrease-key: improved
//     nodes are pushed again and outdated entries are skipped when popped.
//   - Routes of equal cost are ranked by Euclidean length, which doubles as
//     the frontier's tie key. On a uniform grid this yields straight lines.
//
// Heuristic:
//
//   - Chebyshev distance max(|dx|,|dy|) by default: admissible for
//     8-directional movement with unit step cost. Octile, Manhattan,
//     Euclidean and Zero are available through WithHeuristic.
//
// Priority policy:
//
//   - PriorityExact (default) orders the frontier by newCost + h.
//   - PriorityTruncate orders by trunc(newCost + h), reproducing integer
//     priorities. It is coarser and can return a non-optimal path once costs
//     or heuristic values are fractional.
//
// Outcomes:
//
//   - (*GraphPath, nil) on success, Start first and End last.
//   - (nil, nil) when Start is not reachable from End: "no path" is a normal
//     result and callers must check for it.
//   - (nil, err) on argument errors (ErrNilGraph, ErrNilOptions) or when the
//     graph or expander reports an error (e.g. grid.ErrOutOfBounds for an
//     End outside the graph).
//   - ErrNegativeCost when the graph reports a negative or NaN transition.
//
// Complexity:
//
//   - Time:  O(E log E) with E pushes, bounded by 8·N·k for N nodes and k
//     improvements per node.
//   - Space: O(N + E) for the best-cost and predecessor maps and the heap.
//
// Thread safety:
//
//   - A PathFinder holds only configuration; each Find call owns its own
//     working set and scratch buffer, so one finder may serve concurrent
//     calls. The graph must not be mutated while searches read it.
package astar
