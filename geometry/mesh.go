package geometry

// Box returns the closed triangulated box spanning the rectangle lo–hi on
// the floor plane and heights z0 (floor) to z1 (ceiling). Triangles are
// wound outwards.
func Box(lo, hi Point2, z0, z1 float64) Mesh {
	v := []Point3{
		{X: lo.X, Y: lo.Y, Z: z0}, {X: hi.X, Y: lo.Y, Z: z0},
		{X: hi.X, Y: hi.Y, Z: z0}, {X: lo.X, Y: hi.Y, Z: z0},
		{X: lo.X, Y: lo.Y, Z: z1}, {X: hi.X, Y: lo.Y, Z: z1},
		{X: hi.X, Y: hi.Y, Z: z1}, {X: lo.X, Y: hi.Y, Z: z1},
	}
	t := [][3]int{
		{0, 2, 1}, {0, 3, 2}, // floor
		{4, 5, 6}, {4, 6, 7}, // ceiling
		{0, 1, 5}, {0, 5, 4}, // south
		{1, 2, 6}, {1, 6, 5}, // east
		{2, 3, 7}, {2, 7, 6}, // north
		{3, 0, 4}, {3, 4, 7}, // west
	}

	return Mesh{Vertices: v, Triangles: t}
}
