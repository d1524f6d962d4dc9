// Package pqueue provides a binary min-heap priority queue keyed by a float64
// priority and carrying an arbitrary payload.
//
// Overview:
//
//   - Push appends an entry and sifts it up while it is strictly smaller than
//     its parent at (i-1)/2.
//   - Pop swaps the root with the last entry, shrinks the heap, then sifts the
//     new root down towards its smaller child while that child is strictly
//     smaller.
//   - Peek reads the minimum without removal.
//
// There is no decrease-key: searches push a node again with its improved
// priority and drop the outdated entry when it surfaces ("lazy decrease-key").
//
// PushTie attaches a secondary tie key: among equal priorities the smaller
// tie pops first. Push uses a tie of 0. Ordering among entries equal in both
// keys is unspecified. In particular insertion order is NOT preserved.
//
// Complexity:
//
//   - Push, Pop: O(log n).
//   - Peek, PeekPriority, Len: O(1).
//
// Errors:
//
//   - ErrEmptyQueue: Peek, PeekPriority or Pop on an empty queue.
//
// A PriorityQueue is not safe for concurrent use.
package pqueue
