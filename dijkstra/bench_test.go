package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/dijkstra"
)

// BenchmarkRun_Grid measures New+Run on a 30x30 lattice with seeded weights.
func BenchmarkRun_Grid(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
		builder.Grid(30, 30),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := dijkstra.New(g)
		if err != nil {
			b.Fatal(err)
		}
		if err := e.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
