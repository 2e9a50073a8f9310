package clique_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/quintet/clique"
)

// BenchmarkFindAll compares the sequential walk with the worker pool on the
// same graph: 40 planted quintets plus 2000 random words. The graph is built
// once; only the search is timed.
func BenchmarkFindAll(b *testing.B) {
	g := buildGraph(b, plantedTexts(40, 2000, 1)...)

	b.Run("sequential", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = clique.FindAll(g)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = clique.FindAll(g, clique.WithWorkers(runtime.GOMAXPROCS(0)))
		}
	})
}

// BenchmarkFindFirst measures the short-circuiting mode on the same input.
func BenchmarkFindFirst(b *testing.B) {
	g := buildGraph(b, plantedTexts(40, 2000, 1)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = clique.FindFirst(g)
	}
}
