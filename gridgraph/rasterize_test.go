package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/geometry"
	"github.com/katalvlaran/evacroute/gridgraph"
)

func TestRasterize_Rectangle(t *testing.T) {
	poly := geometry.Rect(geometry.Point2{X: 0, Y: 0}, geometry.Point2{X: 10, Y: 5})
	opts := gridgraph.DefaultGridOptions()

	g, err := gridgraph.Rasterize(poly, opts)
	require.NoError(t, err)

	// one padding cell on each side, allowing for a ceil() round-up
	assert.GreaterOrEqual(t, g.Width, 52)
	assert.LessOrEqual(t, g.Width, 53)
	assert.GreaterOrEqual(t, g.Height, 27)
	assert.LessOrEqual(t, g.Height, 28)
	assert.InDelta(t, -0.2, g.Origin.X, 1e-12)
	assert.InDelta(t, -0.2, g.Origin.Y, 1e-12)

	// centres 0.1 … 9.9 × 0.1 … 4.9 are inside
	assert.Equal(t, 50*25, g.WalkableCount())
	assert.False(t, g.Walkable(gridgraph.Cell{X: 0, Y: 0}))
	assert.True(t, g.Walkable(gridgraph.Cell{X: 1, Y: 1}))
	assert.True(t, g.Walkable(gridgraph.Cell{X: 50, Y: 25}))
	assert.False(t, g.Walkable(gridgraph.Cell{X: 51, Y: 25}))
}

func TestRasterize_Errors(t *testing.T) {
	poly := geometry.Rect(geometry.Point2{}, geometry.Point2{X: 1, Y: 1})

	_, err := gridgraph.Rasterize(poly, gridgraph.GridOptions{Resolution: 0})
	assert.ErrorIs(t, err, gridgraph.ErrBadResolution)

	_, err = gridgraph.Rasterize(poly, gridgraph.GridOptions{Resolution: math.NaN()})
	assert.ErrorIs(t, err, gridgraph.ErrBadResolution)

	_, err = gridgraph.Rasterize(poly[:2], gridgraph.DefaultGridOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyPolygon)

	big := geometry.Rect(geometry.Point2{}, geometry.Point2{X: 1000, Y: 1000})
	_, err = gridgraph.Rasterize(big, gridgraph.GridOptions{Resolution: 0.1, MaxCells: 1000})
	assert.ErrorIs(t, err, gridgraph.ErrTooLarge)
}

func TestGrid_StepCosts(t *testing.T) {
	poly := geometry.Rect(geometry.Point2{}, geometry.Point2{X: 1, Y: 1})

	g4, err := gridgraph.Rasterize(poly, gridgraph.GridOptions{Resolution: 0.5, Conn: gridgraph.Conn4})
	require.NoError(t, err)
	require.Len(t, g4.Steps(), 4)
	for _, s := range g4.Steps() {
		assert.Equal(t, 0.5, s.Cost)
	}

	g8, err := gridgraph.Rasterize(poly, gridgraph.GridOptions{Resolution: 0.5, Conn: gridgraph.Conn8})
	require.NoError(t, err)
	require.Len(t, g8.Steps(), 8)
	diag := 0
	for _, s := range g8.Steps() {
		if s.DX != 0 && s.DY != 0 {
			diag++
			assert.InDelta(t, 0.5*math.Sqrt2, s.Cost, 1e-12)
		}
	}
	assert.Equal(t, 4, diag)
}

func TestGrid_CellAtAndCenter(t *testing.T) {
	g, err := gridgraph.From2D([][]int{{1, 1}, {1, 1}}, gridgraph.GridOptions{Resolution: 0.5})
	require.NoError(t, err)

	c := g.CellAt(geometry.Point2{X: 0.7, Y: 0.2})
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 0}, c)
	assert.Equal(t, geometry.Point2{X: 0.75, Y: 0.25}, g.Center(c))
	assert.Equal(t, gridgraph.Cell{X: -1, Y: -1}, g.CellAt(geometry.Point2{X: -0.1, Y: -0.1}))

	idx := g.Index(c)
	assert.Equal(t, c, g.Coordinate(idx))
	assert.True(t, g.Walkable(g.Coordinate(idx)))
}
