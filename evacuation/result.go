package evacuation

import (
	"sort"

	"github.com/katalvlaran/evacroute/doorgraph"
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind string

// Diagnostic kinds.
const (
	DoorNoPosition   DiagnosticKind = "door_no_position"
	DoorNoSpace      DiagnosticKind = "door_no_space"
	DoorManySpaces   DiagnosticKind = "door_many_spaces"
	DoorNotAnchored  DiagnosticKind = "door_not_anchored"
	DoorUnreachable  DiagnosticKind = "door_unreachable"
	SpaceNoFootprint DiagnosticKind = "space_no_footprint"
	SpaceTooLarge    DiagnosticKind = "space_too_large"
	SpaceIslands     DiagnosticKind = "space_unreached_cells"
	SingleLevel      DiagnosticKind = "single_level"
)

// Diagnostic is a non-fatal data-quality finding.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	SpaceID string         `json:"space_id,omitempty"`
	DoorID  string         `json:"door_id,omitempty"`
	Message string         `json:"message"`
}

// SpaceResult is the outcome for one space.
type SpaceResult struct {
	ID       string `json:"space_id"`
	Name     string `json:"space_name"`
	LongName string `json:"space_name_long,omitempty"`
	Level    string `json:"level,omitempty"`

	// Worst is the worst-case distance to an exit in metres; meaningful
	// only when Computed is true.
	Worst    float64 `json:"worst_distance_m"`
	Computed bool    `json:"computed"`

	// BlockedReason is set when Computed is false.
	BlockedReason string `json:"blocked_reason,omitempty"`

	// Doors is the number of adjacent usable doors, Seeds the number that
	// were anchored and reached an exit.
	Doors int `json:"doors"`
	Seeds int `json:"seeds"`

	// WalkableCells and UnreachedCells describe the grid; unreached cells
	// are walkable but cut off from every seed.
	WalkableCells  int `json:"walkable_cells"`
	UnreachedCells int `json:"unreached_cells"`
}

// Distance returns Worst and whether it was computed.
func (s SpaceResult) Distance() (float64, bool) {
	return s.Worst, s.Computed
}

// GraphEdge is one door-graph edge as reported.
type GraphEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight_m"`

	// Kind is "intra_room" or "level_bridge".
	Kind string `json:"kind"`

	// Via is the room crossed by an intra-room edge.
	Via string `json:"via,omitempty"`
}

// GraphStats summarises the door graph of a run.
type GraphStats struct {
	Doors          int `json:"doors"`
	IntraRoomEdges int `json:"intra_room_edges"`
	BridgeEdges    int `json:"bridge_edges"`

	// AdjacencyLinks counts the distinct door–space pairs of the model.
	AdjacencyLinks int `json:"adjacency_links"`

	// Edges lists the graph edges in insertion order.
	Edges []GraphEdge `json:"edges"`

	Bridges doorgraph.BridgeReport `json:"-"`
}

// Result is the outcome of Run. Spaces follow model order, exactly one
// entry per space.
type Result struct {
	Spaces []SpaceResult `json:"spaces"`

	// ExitDoors lists every exit door of the model, in model order.
	ExitDoors []string `json:"exit_doors"`

	// ExitDistance maps every door reached from an exit to its distance.
	ExitDistance map[string]float64 `json:"exit_distance_m"`

	// Unreachable lists anchored doors no exit can reach, in model order.
	Unreachable []string `json:"unreachable_doors"`

	Graph       GraphStats   `json:"graph"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// ExitCount returns the number of exit doors in the model.
func (r *Result) ExitCount() int { return len(r.ExitDoors) }

// Distances returns the computed worst cases by space ID; blocked spaces
// are absent.
func (r *Result) Distances() map[string]float64 {
	out := make(map[string]float64, len(r.Spaces))
	for _, s := range r.Spaces {
		if s.Computed {
			out[s.ID] = s.Worst
		}
	}

	return out
}

// Blocked returns the number of spaces without a computed distance.
func (r *Result) Blocked() int {
	n := 0
	for _, s := range r.Spaces {
		if !s.Computed {
			n++
		}
	}

	return n
}

// WorstSpaces returns up to n computed spaces ordered by descending worst
// case; ties keep model order. n <= 0 returns all of them.
func (r *Result) WorstSpaces(n int) []SpaceResult {
	var out []SpaceResult
	for _, s := range r.Spaces {
		if s.Computed {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Worst > out[j].Worst })
	if n > 0 && n < len(out) {
		out = out[:n]
	}

	return out
}
