// Package gridastar is an embeddable A* pathfinding library for grid-shaped
// graphs addressed by integer (x, y) coordinates.
//
// What is inside:
//
//	grid/          Node, the Graph contract and DenseGraph (dense transition-cost matrix)
//	pqueue/        generic binary min-heap keyed by float64 priority
//	neighbors/     Expander contract and the 8-directional GridExpander
//	astar/         PathFinder: backward A* from End to Start with path reconstruction
//	regions/       reachability, islands and fewest-walls routes
//	config/        YAML/JSON scenarios built into ready-to-search values
//	cmd/gridpath/  CLI over scenarios
//
// Quick start:
//
//	g, _ := grid.NewDenseGraph(5, 5, 0)
//	f, _ := astar.NewPathFinder(neighbors.NewGridExpander(1))
//	path, err := f.Find(g, &astar.Options{Start: grid.Node{X: 0, Y: 0}, End: grid.Node{X: 4, Y: 4}})
//	// path.Nodes: (0,0) (1,1) (2,2) (3,3) (4,4)
//
// Costs are per directed move and may be asymmetric. A move whose cost is at
// least the expander's max cost is impassable; +Inf marks a wall.
// A search that cannot reach Start returns (nil, nil).
package gridastar
