package building

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Model is an in-memory Provider backed by a Document.
type Model struct {
	doc        Document
	adjacency  *Adjacency
	elevations map[string]float64
}

var _ Provider = (*Model)(nil)

// NewModel validates doc and resolves its adjacency.
//
// Errors: ErrInvalidModel on an empty space or door ID, or on an ID used
// twice within spaces or within doors.
func NewModel(doc Document) (*Model, error) {
	if err := checkIDs("space", len(doc.Spaces), func(i int) string { return doc.Spaces[i].ID }); err != nil {
		return nil, err
	}
	if err := checkIDs("door", len(doc.Doors), func(i int) string { return doc.Doors[i].ID }); err != nil {
		return nil, err
	}

	elev := make(map[string]float64, len(doc.Storeys))
	for _, s := range doc.Storeys {
		if s.Name != "" {
			elev[s.Name] = s.Elevation
		}
	}

	return &Model{doc: doc, adjacency: ResolveAdjacency(doc), elevations: elev}, nil
}

func checkIDs(kind string, n int, id func(int) string) error {
	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v == "" {
			return fmt.Errorf("%w: %s #%d has an empty id", ErrInvalidModel, kind, i)
		}
		if j, dup := seen[v]; dup {
			return fmt.Errorf("%w: %s id %q used by #%d and #%d", ErrInvalidModel, kind, v, j, i)
		}
		seen[v] = i
	}

	return nil
}

// Spaces returns the spaces in document order.
func (m *Model) Spaces() []Space { return append([]Space(nil), m.doc.Spaces...) }

// Doors returns the doors in document order.
func (m *Model) Doors() []Door { return append([]Door(nil), m.doc.Doors...) }

// Adjacency returns the resolved door ↔ space relation.
func (m *Model) Adjacency() *Adjacency { return m.adjacency }

// StoreyElevations returns a copy of the level → elevation map.
func (m *Model) StoreyElevations() map[string]float64 {
	out := make(map[string]float64, len(m.elevations))
	for k, v := range m.elevations {
		out[k] = v
	}

	return out
}

// Decode reads a single JSON Document from r and builds a Model.
// Data after the document is rejected with ErrInvalidModel.
func Decode(r io.Reader) (*Model, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidModel)
	}

	return NewModel(doc)
}

// Load opens path and decodes it with Decode.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("building: open model: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
