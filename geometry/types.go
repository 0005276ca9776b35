package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for footprint extraction.
var (
	// ErrEmptyMesh indicates a mesh without vertices or triangles.
	ErrEmptyMesh = errors.New("geometry: mesh has no vertices or triangles")

	// ErrBadTriangle indicates a triangle index outside the vertex list.
	ErrBadTriangle = errors.New("geometry: triangle references a missing vertex")

	// ErrBadFootprintOptions indicates a negative or non-finite tolerance.
	ErrBadFootprintOptions = errors.New("geometry: invalid footprint options")

	// ErrNoFloor indicates that no triangle passed the floor filter.
	ErrNoFloor = errors.New("geometry: no floor triangles found")

	// ErrTooFewBoundaryEdges indicates that the floor has fewer than 3 boundary edges.
	ErrTooFewBoundaryEdges = errors.New("geometry: fewer than 3 boundary edges")

	// ErrOpenBoundary indicates that the boundary walk could not close the loop.
	ErrOpenBoundary = errors.New("geometry: boundary loop does not close")

	// ErrDegenerateFootprint indicates a traced loop with (near) zero area.
	ErrDegenerateFootprint = errors.New("geometry: footprint has zero area")
)

// Point2 is a point on the floor plane, in metres.
type Point2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Point3 is a world-space point, in metres. Z is up.
type Point3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// XY drops the vertical component.
func (p Point3) XY() Point2 { return Point2{X: p.X, Y: p.Y} }

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 { return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z} }

// Cross returns the cross product p × q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p.
func (p Point3) Norm() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

// Dist returns the Euclidean distance between two floor points.
func (p Point2) Dist(q Point2) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Mesh is a triangulated surface. Triangles index into Vertices.
type Mesh struct {
	Vertices  []Point3 `json:"vertices"`
	Triangles [][3]int `json:"triangles"`
}

// FootprintOptions tunes the floor-triangle filter used by FloorFootprint.
type FootprintOptions struct {
	// ZTolerance is the maximum distance (m) between a triangle's mean height
	// and the lowest vertex of the mesh for the triangle to count as floor.
	ZTolerance float64 `yaml:"z_tolerance"`

	// NormalTolerance is the maximum deviation of |n.z| from 1 for the
	// triangle's unit normal n.
	NormalTolerance float64 `yaml:"normal_tolerance"`

	// WeldTolerance merges a vertex into an earlier one lying within this
	// distance on every axis (m). Zero disables welding.
	WeldTolerance float64 `yaml:"weld_tolerance"`
}

// DefaultFootprintOptions returns the tolerances used for IFC space solids.
//
//   - ZTolerance:      0.02 m
//   - NormalTolerance: 0.20
//   - WeldTolerance:   1e-6 m
func DefaultFootprintOptions() FootprintOptions {
	return FootprintOptions{
		ZTolerance:      0.02,
		NormalTolerance: 0.20,
		WeldTolerance:   1e-6,
	}
}

// Validate reports ErrBadFootprintOptions when a tolerance is negative,
// NaN or infinite.
func (o FootprintOptions) Validate() error {
	for _, tol := range []struct {
		name string
		v    float64
	}{
		{"z_tolerance", o.ZTolerance},
		{"normal_tolerance", o.NormalTolerance},
		{"weld_tolerance", o.WeldTolerance},
	} {
		if !(tol.v >= 0) || math.IsInf(tol.v, 1) {
			return fmt.Errorf("%w: %s = %v", ErrBadFootprintOptions, tol.name, tol.v)
		}
	}

	return nil
}
