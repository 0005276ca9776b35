// Package dijkstra_test contains unit tests for the grid and door-graph
// searches: validation, basic distances, walls, diagonals, multi-source
// composition and unreachable regions.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dijkstra"
	"github.com/katalvlaran/evacroute/gridgraph"
)

func mustGrid(t *testing.T, rows [][]int, conn gridgraph.Connectivity) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.From2D(rows, gridgraph.GridOptions{Resolution: 1, Conn: conn})
	require.NoError(t, err)

	return g
}

func at(g *gridgraph.Grid, dist []float64, x, y int) float64 {
	return dist[g.Index(gridgraph.Cell{X: x, Y: y})]
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestMultiSource_Validation(t *testing.T) {
	_, err := dijkstra.MultiSource(nil, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	g := mustGrid(t, [][]int{{1, 1}}, gridgraph.Conn4)
	_, err = dijkstra.MultiSource(g, []dijkstra.Seed{{Cost: -1}})
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
	_, err = dijkstra.MultiSource(g, []dijkstra.Seed{{Cost: math.NaN()}})
	assert.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

// ------------------------------------------------------------------------
// 2. Single source
// ------------------------------------------------------------------------

func TestFromCell_OpenRoom(t *testing.T) {
	rows := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}

	g4 := mustGrid(t, rows, gridgraph.Conn4)
	d4, err := dijkstra.FromCell(g4, gridgraph.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, at(g4, d4, 0, 0))
	assert.Equal(t, 4.0, at(g4, d4, 2, 2))

	g8 := mustGrid(t, rows, gridgraph.Conn8)
	d8, err := dijkstra.FromCell(g8, gridgraph.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Sqrt2, at(g8, d8, 2, 2), 1e-12)
	assert.InDelta(t, 1+math.Sqrt2, at(g8, d8, 2, 1), 1e-12)
}

// TestFromCell_Wall routes around a partition:
//
//	S 1 1
//	0 0 1
//	T 1 1
func TestFromCell_Wall(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)

	dist, err := dijkstra.FromCell(g, gridgraph.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 6.0, at(g, dist, 0, 2))
	assert.True(t, math.IsInf(at(g, dist, 0, 1), 1), "blocked cell stays +Inf")
}

func TestFromCell_BlockedSource(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}}, gridgraph.Conn4)

	dist, err := dijkstra.FromCell(g, gridgraph.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	_, _, ok := dijkstra.MaxFinite(dist)
	assert.False(t, ok)

	dist, err = dijkstra.FromCell(g, gridgraph.Cell{X: 7, Y: 7})
	require.NoError(t, err)
	_, reached, _ := dijkstra.MaxFinite(dist)
	assert.Zero(t, reached)
}

// ------------------------------------------------------------------------
// 3. Multi source
// ------------------------------------------------------------------------

func TestMultiSource_BaseCosts(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.Conn4)

	dist, err := dijkstra.MultiSource(g, []dijkstra.Seed{
		{Cell: gridgraph.Cell{X: 0, Y: 0}, Cost: 5},
		{Cell: gridgraph.Cell{X: 2, Y: 2}, Cost: 0},
		{Cell: gridgraph.Cell{X: 9, Y: 9}, Cost: 0}, // out of range, ignored
	})
	require.NoError(t, err)

	// walking 4 from the free seed beats the 5 paid at (0,0)
	assert.Equal(t, 4.0, at(g, dist, 0, 0))
	assert.Equal(t, 3.0, at(g, dist, 1, 0))
	assert.Equal(t, 0.0, at(g, dist, 2, 2))

	worst, reached, ok := dijkstra.MaxFinite(dist)
	require.True(t, ok)
	assert.Equal(t, 9, reached)
	assert.Equal(t, 4.0, worst)
}

func TestMultiSource_DuplicateSeedKeepsCheapest(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 1, 1}}, gridgraph.Conn4)

	dist, err := dijkstra.MultiSource(g, []dijkstra.Seed{
		{Cell: gridgraph.Cell{X: 0, Y: 0}, Cost: 7},
		{Cell: gridgraph.Cell{X: 0, Y: 0}, Cost: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, dist)
}

// ------------------------------------------------------------------------
// 4. Door graph
// ------------------------------------------------------------------------

func TestFromSources(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("E", "D", 1)
	_, _ = g.AddVertex("F")

	dist, err := dijkstra.FromSources(g, []string{"A", "D", "A"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 0, "E": 1}, dist)
	_, ok := dist["F"]
	assert.False(t, ok, "isolated vertex is not reached")
}

func TestFromSources_Validation(t *testing.T) {
	_, err := dijkstra.FromSources(nil, []string{"A"})
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := core.NewGraph()
	_, _ = g.AddVertex("A")
	_, err = dijkstra.FromSources(g, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNoSources)
	_, err = dijkstra.FromSources(g, []string{"X"})
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}
