// Package neighbors turns a grid.Graph into adjacency: for a node it lists
// the nodes reachable in one hop.
//
// GridExpander checks a fixed, ordered list of unit offsets (eight by
// default: orthogonal and diagonal) and keeps a candidate only if
//
//  1. it lies inside the graph's [0,Width)×[0,Height) rectangle, and
//  2. the transition cost from the queried node to it is strictly below the
//     expander's max cost. A cost at or above the threshold means "no edge".
//
// Default direction order is E, SE, S, SW, W, NW, N, NE with S meaning y-1.
// Edge and corner nodes simply yield fewer candidates; there is no wraparound.
//
// The result is written into a caller-owned slice which is truncated and
// refilled on every call, so a single buffer can be reused across calls.
//
// Errors:
//
//   - ErrNilGraph, ErrNilBuffer: a required argument is nil.
//   - grid.ErrOutOfBounds (wrapped): the queried node lies outside the graph.
package neighbors
