// File: types.go
// Role: Graph, Edge, Arc, EdgeKind, EdgeOption, sentinel errors, NewGraph.
// Concurrency:
//   - Graph fields are guarded by mu; Edge values handed out are copies.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// EdgeKind tells how an edge was derived.
type EdgeKind int

const (
	// EdgeIntraRoom is a walking distance between two doors of one room.
	EdgeIntraRoom EdgeKind = iota

	// EdgeLevelBridge is a synthetic vertical link between two storeys.
	EdgeLevelBridge
)

// String returns "intra_room" or "level_bridge".
func (k EdgeKind) String() string {
	if k == EdgeLevelBridge {
		return "level_bridge"
	}

	return "intra_room"
}

// Edge is an undirected connection between two doors.
type Edge struct {
	// ID is the insertion sequence number, starting at 0.
	ID int

	// From and To are the endpoint door IDs, in insertion order.
	From, To string

	// Weight is the traversal cost in metres.
	Weight float64

	// Kind tells how the edge was derived.
	Kind EdgeKind

	// Via is the room crossed by an intra-room edge; empty for bridges.
	Via string
}

// Arc is the index-level view of an edge as seen from one endpoint.
// Shortest-path code iterates arcs to avoid string lookups.
type Arc struct {
	To     int
	Weight float64
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithKind sets the edge kind (default EdgeIntraRoom).
func WithKind(kind EdgeKind) EdgeOption {
	return func(e *Edge) { e.Kind = kind }
}

// WithVia records the room an intra-room edge crosses.
func WithVia(spaceID string) EdgeOption {
	return func(e *Edge) { e.Via = spaceID }
}

// Graph is the door graph.
//
// ids[i] is the door ID of vertex i; index is its inverse.
// arcs[i] lists the arcs leaving vertex i (each undirected edge appears
// once at each endpoint).
type Graph struct {
	mu sync.RWMutex

	ids   []string
	index map[string]int
	edges []Edge
	arcs  [][]Arc
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}
