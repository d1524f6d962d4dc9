package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue indicates Peek or Pop was called with Len() == 0.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// entry is one heap slot. Entries are stored by value.
type entry[T any] struct {
	priority float64
	tie      float64
	value    T
}

// entryHeap implements heap.Interface ordered by ascending priority.
type entryHeap[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by tie. Entries equal in both are left in
// heap order.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].tie < h[j].tie
}

// Swap swaps two entries.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop after moving the root there.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop payload reference
	*h = old[:n-1]

	return e
}

// PriorityQueue is a min-priority queue of T values.
// The zero value is an empty queue ready to use.
type PriorityQueue[T any] struct {
	h entryHeap[T]
}

// New returns an empty queue with room for capacity entries.
func New[T any](capacity int) *PriorityQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue[T]{h: make(entryHeap[T], 0, capacity)}
}

// Len returns the number of queued entries.
func (q *PriorityQueue[T]) Len() int { return len(q.h) }

// Push inserts value with the given priority and a zero tie key.
// Complexity: O(log n).
func (q *PriorityQueue[T]) Push(priority float64, value T) {
	q.PushTie(priority, 0, value)
}

// PushTie inserts value with the given priority. Among equal priorities the
// smaller tie pops first.
// Complexity: O(log n).
func (q *PriorityQueue[T]) PushTie(priority, tie float64, value T) {
	heap.Push(&q.h, entry[T]{priority: priority, tie: tie, value: value})
}

// Peek returns the minimum-priority value without removing it.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *PriorityQueue[T]) Peek() (T, error) {
	if len(q.h) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.h[0].value, nil
}

// PeekPriority returns the minimum priority without removing its entry.
// Returns ErrEmptyQueue if the queue is empty.
func (q *PriorityQueue[T]) PeekPriority() (float64, error) {
	if len(q.h) == 0 {
		return 0, ErrEmptyQueue
	}

	return q.h[0].priority, nil
}

// Pop removes and returns the minimum-priority value.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *PriorityQueue[T]) Pop() (T, error) {
	if len(q.h) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return heap.Pop(&q.h).(entry[T]).value, nil
}

// Reset empties the queue while keeping its capacity.
func (q *PriorityQueue[T]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
}
