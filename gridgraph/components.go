package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of walkable
// cells, according to the grid's connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order, components ordered by their first cell.
//
// A room footprint with a neck narrower than one cell rasterizes into
// several islands; only the islands containing a door are reachable.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	total := g.Len()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if !g.walkable[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, s := range g.steps {
				v := Cell{X: u.X + s.DX, Y: u.Y + s.DY}
				if !g.Walkable(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
