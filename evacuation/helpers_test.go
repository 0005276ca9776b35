package evacuation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/building"
	"github.com/katalvlaran/evacroute/geometry"
)

func room(id, level string, x0, y0, x1, y1, z float64) building.Space {
	m := geometry.Box(geometry.Point2{X: x0, Y: y0}, geometry.Point2{X: x1, Y: y1}, z, z+3)

	return building.Space{ID: id, Name: id, Level: level, Mesh: &m}
}

func door(id, level string, x, y, z float64) building.Door {
	return building.Door{ID: id, Name: id, Level: level, Position: &geometry.Point3{X: x, Y: y, Z: z}}
}

func exit(id, level string, x, y, z float64) building.Door {
	d := door(id, level, x, y, z)
	ext := true
	d.IsExternal = &ext

	return d
}

func links(doorID string, spaces ...string) []building.Boundary {
	out := make([]building.Boundary, len(spaces))
	for i, s := range spaces {
		out[i] = building.Boundary{SpaceID: s, ElementID: doorID, Kind: building.ElementDoor}
	}

	return out
}

func model(t *testing.T, doc building.Document) *building.Model {
	t.Helper()
	m, err := building.NewModel(doc)
	require.NoError(t, err)

	return m
}

// cornerExitRoom is one 10 m × 5 m room with an exit door in the corner.
func cornerExitRoom(t *testing.T) *building.Model {
	return model(t, building.Document{
		Spaces:     []building.Space{room("A", "L0", 0, 0, 10, 5, 0)},
		Doors:      []building.Door{exit("E", "L0", 0, 0, 0)},
		Boundaries: links("E", "A"),
	})
}

// twoRoomChain is two 5 m × 5 m rooms side by side; the only exit is on the
// far wall of the second one.
func twoRoomChain(t *testing.T) *building.Model {
	return model(t, building.Document{
		Spaces: []building.Space{
			room("R1", "L0", 0, 0, 5, 5, 0),
			room("R2", "L0", 5, 0, 10, 5, 0),
		},
		Doors: []building.Door{
			door("D", "L0", 5, 2.5, 0),
			exit("E", "L0", 10, 2.5, 0),
		},
		Boundaries: append(links("D", "R1", "R2"), links("E", "R2")...),
	})
}
