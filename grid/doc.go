// Package grid defines the coordinate space and cost storage used by the
// pathfinding packages of gridastar.
//
// What:
//
//   - Node is an integer (x, y) address; it is a plain comparable value and
//     is used directly as a map key.
//   - Graph is the capability every search needs: rectangular bounds plus a
//     (possibly asymmetric) transition cost for each ordered pair of nodes.
//   - DenseGraph implements Graph with a full transition-cost matrix stored as
//     one flat row-major buffer.
//
// Why:
//
//   - Game and simulation maps: terrain costs, one-way slopes, walls.
//   - The search code only sees Graph, so callers may plug in sparse or
//     procedurally generated graphs without touching the algorithm.
//
// Complexity:
//
//   - NewDenseGraph: O(N²) time and memory, N = Width×Height.
//   - Transition / SetTransition: O(1).
//   - Clone: O(N²).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrTooLarge: Width×Height above MaxNodes.
//   - ErrOutOfBounds: a node address lies outside [0,Width)×[0,Height).
//   - ErrInvalidCost: a transition cost is NaN or negative.
//
// Thread safety:
//
//   - DenseGraph has no internal locking. Concurrent readers are safe while
//     no SetTransition runs; take a Clone for an immutable snapshot.
package grid
