package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridastar/pqueue"
)

// BenchmarkPushPop measures a full fill-and-drain cycle of 1024 random priorities.
func BenchmarkPushPop(b *testing.B) {
	const n = 1024
	rng := rand.New(rand.NewSource(1))
	prio := make([]float64, n)
	for i := range prio {
		prio[i] = rng.Float64()
	}
	q := pqueue.New[int](n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, p := range prio {
			q.Push(p, j)
		}
		for q.Len() > 0 {
			_, _ = q.Pop()
		}
	}
}
