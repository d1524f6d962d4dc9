package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/gridastar/pqueue"
)

// ExamplePriorityQueue drains a small frontier in priority order.
func ExamplePriorityQueue() {
	q := pqueue.New[string](4)
	q.Push(2.5, "b")
	q.Push(0.5, "a")
	q.Push(9, "c")

	var order []string
	for q.Len() > 0 {
		v, _ := q.Pop()
		order = append(order, v)
	}
	fmt.Println(order)

	_, err := q.Pop()
	fmt.Println(err)
	// Output:
	// [a b c]
	// pqueue: queue is empty
}
