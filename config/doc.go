// Package config loads grid search scenarios and turns them into ready-to-use
// graph, expander and path-finder values.
//
// A Scenario is read from YAML (JSON is accepted as a fallback), then
// environment overrides are applied, then the result is validated:
//
//	s, err := config.Load("map.yaml")
//	if err != nil { ... }
//	w, err := s.Build()
//	if err != nil { ... }
//	path, err := w.Finder.Find(w.Graph, w.Options)
//
// Scenario file layout:
//
//	width: 8
//	height: 6
//	default_cost: 1
//	diagonal_cost: 1.5     # optional, overrides every diagonal move
//	max_cost: .inf         # transitions >= max_cost are impassable
//	directions: 8          # 4 or 8
//	priority: exact        # exact | truncate
//	heuristic: chebyshev   # chebyshev | octile | manhattan | euclidean | zero
//	start: "0,0"
//	end: "7,5"
//	walls: ["3,0", "3,1", "3,2"]
//	costs:
//	  - {cell: "5,5", cost: 4}
//	edges:
//	  - {from: "6,5", to: "7,5", cost: 0.5, symmetric: true}
//
// Build applies layers in order: default and diagonal cost, per-cell costs,
// explicit edges, walls. Walls are written last and always win.
//
// Environment overrides (applied by Load after the file):
//
//	GRIDPATH_MAX_COST    float, "inf" accepted
//	GRIDPATH_PRIORITY    exact | truncate
//	GRIDPATH_HEURISTIC   heuristic name
//	GRIDPATH_DIRECTIONS  4 | 8
//
// Errors: every validation failure wraps ErrInvalidScenario.
package config
