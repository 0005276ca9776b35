package gridgraph

import (
	"math"

	"github.com/katalvlaran/evacroute/geometry"
)

// newGrid allocates an all-blocked grid and precomputes neighbour steps.
func newGrid(w, h int, origin geometry.Point2, res float64, conn Connectivity) *Grid {
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	steps := make([]Step, len(offsets))
	for i, d := range offsets {
		cost := res
		if d[0] != 0 && d[1] != 0 {
			cost = res * math.Sqrt2
		}
		steps[i] = Step{DX: d[0], DY: d[1], Cost: cost}
	}

	return &Grid{
		Width:      w,
		Height:     h,
		Origin:     origin,
		Resolution: res,
		Conn:       conn,
		walkable:   make([]bool, w*h),
		steps:      steps,
	}
}

// From2D builds a grid from literal rows (rows[y][x]); non-zero values are
// walkable. The origin is (0,0). Intended for tests and hand-made plans.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadResolution.
// Complexity: O(W×H).
func From2D(rows [][]int, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Resolution <= 0 {
		return nil, ErrBadResolution
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := newGrid(w, h, geometry.Point2{}, opts.Resolution, opts.Conn)
	for y, row := range rows {
		for x, v := range row {
			g.walkable[g.Index(Cell{X: x, Y: y})] = v != 0
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Walkable reports whether c is inside the grid and walkable.
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.walkable[g.Index(c)]
}

// Len returns Width×Height.
func (g *Grid) Len() int { return len(g.walkable) }

// WalkableCount returns the number of walkable cells.
// Complexity: O(W×H).
func (g *Grid) WalkableCount() int {
	n := 0
	for _, ok := range g.walkable {
		if ok {
			n++
		}
	}

	return n
}

// Steps returns the precomputed neighbour moves for the grid's connectivity.
// Orthogonal moves cost Resolution, diagonal ones Resolution×√2.
func (g *Grid) Steps() []Step {
	return g.steps
}

// Index maps c to a row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// CellAt returns the cell containing world point p. The result may lie
// outside the grid.
func (g *Grid) CellAt(p geometry.Point2) Cell {
	return Cell{
		X: int(math.Floor((p.X - g.Origin.X) / g.Resolution)),
		Y: int(math.Floor((p.Y - g.Origin.Y) / g.Resolution)),
	}
}

// Center returns the world position of the centre of c.
func (g *Grid) Center(c Cell) geometry.Point2 {
	return geometry.Point2{
		X: g.Origin.X + (float64(c.X)+0.5)*g.Resolution,
		Y: g.Origin.Y + (float64(c.Y)+0.5)*g.Resolution,
	}
}
