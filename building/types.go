package building

import (
	"errors"

	"github.com/katalvlaran/evacroute/geometry"
)

// ErrInvalidModel indicates a document that cannot be used as a model.
var ErrInvalidModel = errors.New("building: invalid model")

// exitFunctionCode is the door Function value meaning "leads outside".
const exitFunctionCode = 1

// Space is an enclosed floor area.
type Space struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	LongName string         `json:"long_name,omitempty"`
	Level    string         `json:"level,omitempty"`
	Mesh     *geometry.Mesh `json:"mesh,omitempty"`
}

// DisplayName returns LongName, falling back to Name, then ID.
func (s Space) DisplayName() string {
	switch {
	case s.LongName != "":
		return s.LongName
	case s.Name != "":
		return s.Name
	}

	return s.ID
}

// Door is a point-like portal between spaces or to the outside.
type Door struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Mark     string           `json:"mark,omitempty"`
	Level    string           `json:"level,omitempty"`
	Position *geometry.Point3 `json:"position,omitempty"`

	// IsExternal mirrors the Pset_DoorCommon.IsExternal property.
	IsExternal *bool `json:"is_external,omitempty"`

	// Function is the door function code; 1 means exit.
	Function *int `json:"function,omitempty"`
}

// IsExit reports whether the door leads directly outside: IsExternal is
// true, or Function is the exit code.
func (d Door) IsExit() bool {
	if d.IsExternal != nil && *d.IsExternal {
		return true
	}

	return d.Function != nil && *d.Function == exitFunctionCode
}

// Storey is a named building level with its elevation in metres.
type Storey struct {
	Name      string  `json:"name"`
	Elevation float64 `json:"elevation"`
}

// ElementKind classifies the element side of a space boundary.
type ElementKind string

const (
	// ElementDoor is a door bounding a space directly.
	ElementDoor ElementKind = "door"
	// ElementWall is a wall bounding a space.
	ElementWall ElementKind = "wall"
)

// Boundary relates a space to a bounding element.
type Boundary struct {
	SpaceID   string      `json:"space"`
	ElementID string      `json:"element"`
	Kind      ElementKind `json:"kind"`
}

// Void relates an opening to the wall it is cut into.
type Void struct {
	OpeningID string `json:"opening"`
	WallID    string `json:"wall"`
}

// Fill relates a door to the opening it fills.
type Fill struct {
	OpeningID string `json:"opening"`
	DoorID    string `json:"door"`
}

// Document is the serialised form of a model.
type Document struct {
	Spaces     []Space    `json:"spaces"`
	Doors      []Door     `json:"doors"`
	Storeys    []Storey   `json:"storeys,omitempty"`
	Boundaries []Boundary `json:"boundaries,omitempty"`
	Voids      []Void     `json:"voids,omitempty"`
	Fills      []Fill     `json:"fills,omitempty"`
}

// Provider is the model access the evacuation engine needs.
type Provider interface {
	// Spaces returns all spaces in stable order.
	Spaces() []Space
	// Doors returns all doors in stable order.
	Doors() []Door
	// Adjacency returns the door ↔ space relation.
	Adjacency() *Adjacency
	// StoreyElevations maps level labels to elevations in metres.
	StoreyElevations() map[string]float64
}
