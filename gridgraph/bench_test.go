package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkNewGridGraph measures construction of a 1000×1000 grid with 20% density.
// Complexity: O(W×H)
func BenchmarkNewGridGraph(b *testing.B) {
	const n = 1000
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewGridGraph(n, n, gridgraph.Density(20), gridgraph.WithSeed(42)); err != nil {
			b.Fatalf("NewGridGraph failed: %v", err)
		}
	}
}

// BenchmarkConnectedComponents measures ConnectedComponents
// on a randomly generated 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	gg, err := gridgraph.NewGridGraph(n, n, gridgraph.Density(40), gridgraph.WithSeed(42))
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkMinBreach measures MinBreach between opposite corners
// of a 1000×1000 grid with 40% density.
// Complexity: O(W×H)
func BenchmarkMinBreach(b *testing.B) {
	const n = 1000
	gg, err := gridgraph.NewGridGraph(n, n, gridgraph.Density(40), gridgraph.WithSeed(42))
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	src, dst := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: n - 1, Y: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.MinBreach(src, dst)
	}
}
