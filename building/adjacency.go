package building

import (
	"github.com/zyedidia/generic/mapset"
)

// Adjacency is the door ↔ space relation. Each door lists its spaces in
// first-linked order, without duplicates.
type Adjacency struct {
	doorSpaces map[string][]string
	pairs      mapset.Set[[2]string]
}

// NewAdjacency returns an empty relation.
func NewAdjacency() *Adjacency {
	return &Adjacency{
		doorSpaces: make(map[string][]string),
		pairs:      mapset.New[[2]string](),
	}
}

// Link records that doorID touches spaceID. Repeated links are no-ops.
func (a *Adjacency) Link(doorID, spaceID string) {
	key := [2]string{doorID, spaceID}
	if a.pairs.Has(key) {
		return
	}
	a.pairs.Put(key)
	a.doorSpaces[doorID] = append(a.doorSpaces[doorID], spaceID)
}

// SpacesOf returns the spaces a door touches.
func (a *Adjacency) SpacesOf(doorID string) []string {
	return append([]string(nil), a.doorSpaces[doorID]...)
}

// Links returns the number of distinct door–space pairs.
func (a *Adjacency) Links() int { return a.pairs.Size() }

// ResolveAdjacency derives the door ↔ space relation of doc.
//
// Steps:
//  1. Direct: every boundary whose element is a door links that door.
//  2. Transitive: for every fill door → opening, the opening's host wall
//     (from voids) links the door to every space the wall bounds.
//
// Relations naming unknown elements are skipped silently; a door with no
// resolved space simply has no adjacency.
func ResolveAdjacency(doc Document) *Adjacency {
	adj := NewAdjacency()

	// 1) Direct boundaries, and walls → spaces for step 2
	wallSpaces := make(map[string][]string)
	for _, b := range doc.Boundaries {
		switch b.Kind {
		case ElementDoor:
			adj.Link(b.ElementID, b.SpaceID)
		case ElementWall:
			wallSpaces[b.ElementID] = append(wallSpaces[b.ElementID], b.SpaceID)
		}
	}

	// 2) Door → opening → wall → spaces
	openingWall := make(map[string]string, len(doc.Voids))
	for _, v := range doc.Voids {
		openingWall[v.OpeningID] = v.WallID
	}
	for _, f := range doc.Fills {
		wall, ok := openingWall[f.OpeningID]
		if !ok {
			continue
		}
		for _, sid := range wallSpaces[wall] {
			adj.Link(f.DoorID, sid)
		}
	}

	return adj
}
