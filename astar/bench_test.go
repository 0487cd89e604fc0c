package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkSearch_Open measures a corner-to-corner search on an empty 500×500 grid.
// Complexity: O(V log V)
func BenchmarkSearch_Open(b *testing.B) {
	const n = 500
	gg, err := gridgraph.NewGridGraph(n, n, gridgraph.NoObstacles())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(gg, start, goal); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_Dense measures a search on a 500×500 grid with 25% density.
func BenchmarkSearch_Dense(b *testing.B) {
	const n = 500
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: n - 1, Y: n - 1}
	gg, err := gridgraph.NewGridGraph(n, n, gridgraph.Density(25),
		gridgraph.WithSeed(42), gridgraph.WithReserved(start, goal))
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(gg, start, goal)
	}
}
