package gridgraph

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/evacroute/geometry"
)

// ringOffsets is the 4-neighbour expansion order of the ring search.
var ringOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// NearestWalkable returns the walkable cell closest to c in 4-neighbour
// steps, searching no further than maxRadius steps. Cells outside the grid
// are traversed but never returned. ok is false when nothing qualifies.
// Complexity: O(r²) for r = maxRadius.
func (g *Grid) NearestWalkable(c Cell, maxRadius int) (Cell, bool) {
	if g.Walkable(c) {
		return c, true
	}
	type item struct {
		cell Cell
		d    int
	}
	seen := mapset.New[Cell]()
	seen.Put(c)
	queue := []item{{cell: c}}
	for qi := 0; qi < len(queue); qi++ {
		it := queue[qi]
		if it.d > maxRadius {
			continue
		}
		if g.Walkable(it.cell) {
			return it.cell, true
		}
		for _, o := range ringOffsets {
			n := Cell{X: it.cell.X + o[0], Y: it.cell.Y + o[1]}
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, item{cell: n, d: it.d + 1})
		}
	}

	return Cell{}, false
}

// Locate anchors a door at position p onto the grid of the room whose
// footprint is poly.
//
// Behavior:
//  1. Keep p if it lies inside poly, else project it onto the boundary.
//  2. Convert to a grid cell.
//  3. If that cell is blocked, ring-search up to radii.Primary, then up to
//     radii.Fallback.
//
// Returns ErrNoWalkableCell when both searches fail.
func (g *Grid) Locate(poly geometry.Polygon, p geometry.Point2, radii SnapRadii) (Cell, error) {
	c := g.CellAt(poly.Snap(p))
	if got, ok := g.NearestWalkable(c, radii.Primary); ok {
		return got, nil
	}
	if radii.Fallback > radii.Primary {
		if got, ok := g.NearestWalkable(c, radii.Fallback); ok {
			return got, nil
		}
	}

	return Cell{}, fmt.Errorf("%w: cell (%d,%d), radius %d", ErrNoWalkableCell, c.X, c.Y, radii.Fallback)
}
