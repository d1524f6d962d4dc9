package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridastar/grid"
)

// Heuristic estimates the remaining cost between two nodes. It must never
// overestimate for the search to stay optimal.
type Heuristic func(a, b grid.Node) float64

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(a, b grid.Node) float64 {
	return float64(max(absInt(a.X-b.X), absInt(a.Y-b.Y)))
}

// Octile returns the 8-directional distance with diagonal steps costing √2.
func Octile(a, b grid.Node) float64 {
	dx, dy := float64(absInt(a.X-b.X)), float64(absInt(a.Y-b.Y))
	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}

// Manhattan returns |dx| + |dy|. Admissible for 4-directional movement only.
func Manhattan(a, b grid.Node) float64 {
	return float64(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

// Euclidean returns the straight-line distance.
func Euclidean(a, b grid.Node) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// Zero always returns 0, turning the search into Dijkstra's algorithm.
func Zero(_, _ grid.Node) float64 { return 0 }

// heuristics maps configuration names to heuristics.
var heuristics = map[string]Heuristic{
	"chebyshev": Chebyshev,
	"octile":    Octile,
	"manhattan": Manhattan,
	"euclidean": Euclidean,
	"zero":      Zero,
}

// HeuristicByName looks up chebyshev, octile, manhattan, euclidean or zero.
func HeuristicByName(name string) (Heuristic, error) {
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	return h, nil
}
