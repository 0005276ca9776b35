package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/evacroute/dijkstra"
	"github.com/katalvlaran/evacroute/geometry"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// BenchmarkFromCell measures a single-source search across a 40 m × 25 m
// hall at 0.20 m resolution (~25,000 cells) with diagonals.
func BenchmarkFromCell(b *testing.B) {
	poly := geometry.Rect(geometry.Point2{}, geometry.Point2{X: 40, Y: 25})
	g, err := gridgraph.Rasterize(poly, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup Rasterize failed: %v", err)
	}
	src := gridgraph.Cell{X: 1, Y: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.FromCell(g, src)
	}
}
