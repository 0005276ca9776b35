package doorgraph

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/geometry"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// Sentinel errors for door-graph construction.
var (
	// ErrNilGraph indicates a nil target graph.
	ErrNilGraph = errors.New("doorgraph: graph is nil")

	// ErrNilGrid indicates a room with portals but no grid.
	ErrNilGrid = errors.New("doorgraph: room grid is nil")

	// ErrBadParams indicates invalid bridge parameters.
	ErrBadParams = errors.New("doorgraph: invalid bridge parameters")
)

// Portal is a door anchored to a walkable cell of one room.
type Portal struct {
	DoorID string
	Cell   gridgraph.Cell
}

// Room is one space's grid with the doors anchored in it.
type Room struct {
	ID      string
	Grid    *gridgraph.Grid
	Portals []Portal
}

// Landing is a door considered for level bridging.
type Landing struct {
	DoorID string
	Level  string
	Pos    geometry.Point3

	// Circulation marks doors in corridors, halls or stair cores.
	Circulation bool
}

// BridgeParams tunes AddLevelBridges.
type BridgeParams struct {
	// VerticalCost is the cost per metre of height difference.
	VerticalCost float64 `yaml:"vertical_cost"`

	// HorizontalPenalty scales the horizontal offset between the doors.
	HorizontalPenalty float64 `yaml:"horizontal_penalty"`

	// MaxLandings caps K, the number of base candidates per upper door.
	MaxLandings int `yaml:"max_landings"`
}

// DefaultBridgeParams returns VerticalCost 1.4, HorizontalPenalty 0.2 and
// MaxLandings 4.
func DefaultBridgeParams() BridgeParams {
	return BridgeParams{
		VerticalCost:      1.4,
		HorizontalPenalty: 0.2,
		MaxLandings:       4,
	}
}

// Validate reports ErrBadParams when a cost is negative, NaN or infinite,
// or when MaxLandings is negative.
func (p BridgeParams) Validate() error {
	switch {
	case !(p.VerticalCost >= 0) || math.IsInf(p.VerticalCost, 1):
		return fmt.Errorf("%w: vertical_cost = %v", ErrBadParams, p.VerticalCost)
	case !(p.HorizontalPenalty >= 0) || math.IsInf(p.HorizontalPenalty, 1):
		return fmt.Errorf("%w: horizontal_penalty = %v", ErrBadParams, p.HorizontalPenalty)
	case p.MaxLandings < 0:
		return fmt.Errorf("%w: max_landings = %d", ErrBadParams, p.MaxLandings)
	}

	return nil
}

// BridgeReport describes what AddLevelBridges did.
type BridgeReport struct {
	// Levels lists the distinct level labels seen, in first-seen order.
	Levels []string

	// Base and Upper are the joined levels; empty when nothing was bridged.
	Base, Upper string

	// ByElevation is true when levels were ordered by storey elevation.
	ByElevation bool

	// Candidates is the number of base landing candidates used.
	Candidates int

	// CirculationOnly is true when candidates were restricted to
	// circulation doors.
	CirculationOnly bool

	// Edges is the number of bridge edges added.
	Edges int
}
