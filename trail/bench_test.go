package trail_test

import (
	"testing"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/trail"
)

// BenchmarkSearch_Octahedron enumerates up to 1000 closed drawings of the
// octahedron (12 edges, every degree 4) from its first edge.
func BenchmarkSearch_Octahedron(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Octahedron())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trail.Search(g, 0, 1000)
	}
}

// BenchmarkSearch_GridPrune compares pruning policies on a 3×4 lattice
// with doubled edges, where many branches strand unreachable edges.
func BenchmarkSearch_GridPrune(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDoubled()}, builder.Grid(3, 4))
	if err != nil {
		b.Fatal(err)
	}
	for _, p := range []trail.Prune{trail.PruneDeadEnd, trail.PruneReachability} {
		b.Run(p.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = trail.Search(g, 0, 100, trail.WithPrune(p))
			}
		})
	}
}
