package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/geometry"
)

// Rasterize converts a floor polygon into an occupancy grid.
//
// Behavior:
//  1. Validate resolution and polygon.
//  2. Pad the polygon's bounding box by one cell on every side.
//  3. Size the grid as ceil(extent / resolution) per axis and check the
//     cell budget before allocating.
//  4. Mark a cell walkable iff its centre lies inside the polygon.
//
// Only the outer boundary is an obstacle; anything that must block walking
// has to be cut out of the polygon beforehand.
// Complexity: O(W×H×N) time, O(W×H) memory.
func Rasterize(poly geometry.Polygon, opts GridOptions) (*Grid, error) {
	if opts.Resolution <= 0 || math.IsNaN(opts.Resolution) {
		return nil, ErrBadResolution
	}
	if len(poly) < 3 {
		return nil, ErrEmptyPolygon
	}
	lo, hi, _ := poly.Bounds()
	res := opts.Resolution
	lo.X, lo.Y = lo.X-res, lo.Y-res
	hi.X, hi.Y = hi.X+res, hi.Y+res

	wf := math.Ceil((hi.X - lo.X) / res)
	hf := math.Ceil((hi.Y - lo.Y) / res)
	if opts.MaxCells > 0 && wf*hf > float64(opts.MaxCells) {
		return nil, fmt.Errorf("%w: %.0f×%.0f cells > %d", ErrTooLarge, wf, hf, opts.MaxCells)
	}

	g := newGrid(int(wf), int(hf), lo, res, opts.Conn)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			g.walkable[g.Index(c)] = poly.Contains(g.Center(c))
		}
	}

	return g, nil
}
