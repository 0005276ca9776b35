package geometry

import "math"

// rayEpsilon keeps the ray-crossing denominator away from zero on
// horizontal edges.
const rayEpsilon = 1e-12

// Polygon is an ordered ring of floor points. The closing edge from the last
// point back to the first is implicit.
type Polygon []Point2

// Contains reports whether p lies inside the polygon, using even-odd ray
// casting towards +X. Points exactly on the boundary may fall either way.
// Polygons with fewer than 3 points contain nothing.
// Complexity: O(N).
func (poly Polygon) Contains(p Point2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	a := poly[n-1]
	for _, b := range poly {
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y+rayEpsilon) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
		a = b
	}

	return inside
}

// NearestBoundaryPoint projects p onto the closest point of any polygon edge.
// For an empty polygon p is returned unchanged.
// Complexity: O(N).
func (poly Polygon) NearestBoundaryPoint(p Point2) Point2 {
	n := len(poly)
	if n == 0 {
		return p
	}
	best := p
	bestD2 := math.Inf(1)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		vx, vy := b.X-a.X, b.Y-a.Y
		wx, wy := p.X-a.X, p.Y-a.Y
		t := (wx*vx + wy*vy) / (vx*vx + vy*vy + rayEpsilon)
		t = math.Max(0, math.Min(1, t))
		q := Point2{X: a.X + t*vx, Y: a.Y + t*vy}
		dx, dy := q.X-p.X, q.Y-p.Y
		if d2 := dx*dx + dy*dy; d2 < bestD2 {
			bestD2 = d2
			best = q
		}
	}

	return best
}

// Snap keeps p if it is inside the polygon, otherwise returns the nearest
// boundary point. Door placements usually sit inside the wall, just outside
// the room footprint; Snap pulls them back onto the room edge.
func (poly Polygon) Snap(p Point2) Point2 {
	if poly.Contains(p) {
		return p
	}

	return poly.NearestBoundaryPoint(p)
}

// Bounds returns the axis-aligned bounding box of the polygon.
// ok is false for an empty polygon.
func (poly Polygon) Bounds() (lo, hi Point2, ok bool) {
	if len(poly) == 0 {
		return Point2{}, Point2{}, false
	}
	lo, hi = poly[0], poly[0]
	for _, p := range poly[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}

	return lo, hi, true
}

// Area returns the unsigned shoelace area of the polygon.
func (poly Polygon) Area() float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	var s float64
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		s += a.X*b.Y - b.X*a.Y
	}

	return math.Abs(s) / 2
}

// Rect builds the axis-aligned rectangle with opposite corners lo and hi,
// counter-clockwise from lo.
func Rect(lo, hi Point2) Polygon {
	return Polygon{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
}
