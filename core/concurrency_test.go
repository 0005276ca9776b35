// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// all neighbors appear, as when several rooms publish their door edges at once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("D%d", id), float64(id)/10, core.WithVia(fmt.Sprintf("S%d", id)))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Edges(), num)
	require.Equal(t, num+1, g.VertexCount())

	x, ok := g.Index("X")
	require.True(t, ok)
	require.Len(t, g.Arcs(x), num)
}

// TestConcurrentReadWrite mixes readers and writers to surface races
// under `go test -race`.
func TestConcurrentReadWrite(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("Base")
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id), 1, core.WithKind(core.EdgeLevelBridge))
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_ = g.VertexCount()
			_ = g.CountByKind(core.EdgeLevelBridge)
		}()
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
	require.Equal(t, rounds, g.CountByKind(core.EdgeLevelBridge))
}
