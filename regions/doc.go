// Package regions answers coarse reachability questions about a grid before
// or after a path search.
//
// What:
//
//   - Reachable: every node a search started at a given node can discover.
//   - Connected: whether an A* search between two nodes can succeed.
//   - Components: maximal groups of cells joined by moves passable in both
//     directions ("islands" separated by walls).
//   - Breach: the route from Start to End that crosses the fewest impassable
//     moves, i.e. the cheapest set of walls to dig through.
//
// All functions follow the same direction convention as package astar: a
// search runs from End toward Start and pays Transition(current, next).
//
// Complexity:
//
//   - Reachable, Connected: O(W·H·d) for d directions.
//   - Components:           O(W·H·d²).
//   - Breach:               O(W·H·d) (0-1 BFS).
//
// Errors:
//
//   - ErrNoRoute: Breach found no route even across walls (the direction set
//     cannot reach End from Start).
//   - Expander and graph errors are wrapped and returned unchanged otherwise.
package regions
