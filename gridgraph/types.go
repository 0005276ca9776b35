// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/evacroute.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/evacroute/geometry"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadResolution indicates a non-positive cell size.
	ErrBadResolution = errors.New("gridgraph: resolution must be positive")
	// ErrEmptyPolygon indicates a polygon with fewer than 3 points.
	ErrEmptyPolygon = errors.New("gridgraph: polygon needs at least 3 points")
	// ErrTooLarge indicates the grid would exceed the configured cell budget.
	ErrTooLarge = errors.New("gridgraph: grid exceeds cell budget")
	// ErrNoWalkableCell indicates no walkable cell near a door position.
	ErrNoWalkableCell = errors.New("gridgraph: no walkable cell within search radius")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses one grid cell; X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Step is one neighbour move and its walking cost in metres.
type Step struct {
	DX, DY int
	Cost   float64
}

// GridOptions contains tunable parameters for rasterization.
type GridOptions struct {
	// Resolution is the cell edge length in metres.
	Resolution float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// MaxCells caps Width×Height; 0 means unlimited.
	MaxCells int
}

// DefaultGridOptions returns a GridOptions with default settings:
// Resolution=0.20 m, Conn=Conn8, MaxCells=4,000,000.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Resolution: 0.20,
		Conn:       Conn8,
		MaxCells:   4_000_000,
	}
}

// SnapRadii bounds the ring search used by Locate, in cells.
type SnapRadii struct {
	Primary  int `yaml:"primary"`
	Fallback int `yaml:"fallback"`
}

// DefaultSnapRadii returns Primary=10, Fallback=25 cells.
func DefaultSnapRadii() SnapRadii {
	return SnapRadii{Primary: 10, Fallback: 25}
}

// Grid is an occupancy grid anchored in world coordinates. It is immutable
// once built. Cell (0,0) covers [Origin.X, Origin.X+Resolution) ×
// [Origin.Y, Origin.Y+Resolution).
type Grid struct {
	Width, Height int
	Origin        geometry.Point2
	Resolution    float64
	Conn          Connectivity
	walkable      []bool
	steps         []Step
}
