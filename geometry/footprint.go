package geometry

import (
	"fmt"
	"math"
)

// minNormal is the smallest cross-product length treated as a real triangle.
const minNormal = 1e-12

// minArea is the smallest footprint area (m²) accepted as non-degenerate.
const minArea = 1e-9

// edgeKey identifies an undirected mesh edge by its ordered vertex pair.
type edgeKey [2]int

func makeEdgeKey(u, v int) edgeKey {
	if u < v {
		return edgeKey{u, v}
	}

	return edgeKey{v, u}
}

// FloorFootprint extracts the 2D floor outline of a closed space mesh.
//
// Steps:
//  1. Weld coincident vertices (opts.WeldTolerance).
//  2. Keep triangles whose unit normal is vertical within opts.NormalTolerance
//     and whose mean height is within opts.ZTolerance of the lowest vertex.
//  3. Count edge usage over the kept triangles; edges used exactly once are
//     boundary edges.
//  4. Walk the boundary starting from its lowest-leftmost vertex, which is
//     always on the outer ring, following unvisited neighbours until the
//     walk returns to the start. The walk is capped at len(boundary)+20 steps.
//
// Returns the traced ring projected onto the floor plane.
// Complexity: O(V + T + E) time and memory.
func FloorFootprint(m Mesh, opts FootprintOptions) (Polygon, error) {
	if len(m.Vertices) == 0 || len(m.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	for i, t := range m.Triangles {
		for _, vi := range t {
			if vi < 0 || vi >= len(m.Vertices) {
				return nil, fmt.Errorf("%w: triangle %d index %d", ErrBadTriangle, i, vi)
			}
		}
	}

	// 1) Weld
	canon := weld(m.Vertices, opts.WeldTolerance)

	// 2) Floor filter
	zMin := math.Inf(1)
	for _, v := range m.Vertices {
		zMin = math.Min(zMin, v.Z)
	}
	floor := make([][3]int, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		v0, v1, v2 := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		norm := n.Norm()
		if norm < minNormal {
			continue // sliver
		}
		if math.Abs(math.Abs(n.Z/norm)-1) > opts.NormalTolerance {
			continue // wall
		}
		if math.Abs((v0.Z+v1.Z+v2.Z)/3-zMin) > opts.ZTolerance {
			continue // ceiling or raised slab
		}
		a, b, c := canon[t[0]], canon[t[1]], canon[t[2]]
		if a == b || b == c || a == c {
			continue
		}
		floor = append(floor, [3]int{a, b, c})
	}
	if len(floor) == 0 {
		return nil, ErrNoFloor
	}

	// 3) Boundary edges, in first-seen order
	counts := make(map[edgeKey]int, 3*len(floor))
	order := make([]edgeKey, 0, 3*len(floor))
	for _, t := range floor {
		for _, e := range [3]edgeKey{makeEdgeKey(t[0], t[1]), makeEdgeKey(t[1], t[2]), makeEdgeKey(t[2], t[0])} {
			if counts[e] == 0 {
				order = append(order, e)
			}
			counts[e]++
		}
	}
	boundary := order[:0]
	for _, e := range order {
		if counts[e] == 1 {
			boundary = append(boundary, e)
		}
	}
	if len(boundary) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewBoundaryEdges, len(boundary))
	}

	// 4) Walk
	loop, err := traceLoop(boundary, m.Vertices)
	if err != nil {
		return nil, err
	}
	poly := make(Polygon, len(loop))
	for i, vi := range loop {
		poly[i] = m.Vertices[vi].XY()
	}
	if poly.Area() < minArea {
		return nil, ErrDegenerateFootprint
	}

	return poly, nil
}

// weld maps every vertex index to the lowest earlier index lying within
// tol of it on every axis, or to itself when there is none. Only vertices
// that map to themselves are merge targets. Vertices are bucketed on a
// tol-sized lattice and each lookup scans the 27 surrounding buckets.
// With tol <= 0 every vertex maps to itself.
func weld(verts []Point3, tol float64) []int {
	canon := make([]int, len(verts))
	for i := range canon {
		canon[i] = i
	}
	if tol <= 0 {
		return canon
	}

	cell := func(x float64) int64 { return int64(math.Floor(x / tol)) }
	near := func(p, q Point3) bool {
		return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
	}
	buckets := make(map[[3]int64][]int, len(verts))
	for i, v := range verts {
		key := [3]int64{cell(v.X), cell(v.Y), cell(v.Z)}
		best := -1
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, j := range buckets[[3]int64{key[0] + dx, key[1] + dy, key[2] + dz}] {
						if (best < 0 || j < best) && near(v, verts[j]) {
							best = j
						}
					}
				}
			}
		}
		if best >= 0 {
			canon[i] = best
			continue
		}
		buckets[key] = append(buckets[key], i)
	}

	return canon
}

// traceLoop walks boundary edges into a single closed ring of vertex indices.
func traceLoop(boundary []edgeKey, verts []Point3) ([]int, error) {
	adj := make(map[int][]int, len(boundary))
	for _, e := range boundary {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	// lowest-leftmost boundary vertex; ties broken by boundary order
	start := boundary[0][0]
	for _, e := range boundary {
		for _, vi := range e {
			a, b := verts[vi], verts[start]
			if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
				start = vi
			}
		}
	}

	loop := []int{start}
	visited := map[int]bool{start: true}
	prev, cur := -1, start
	for step := 0; step < len(boundary)+20; step++ {
		next := -1
		for _, nb := range adj[cur] {
			if nb == prev {
				continue
			}
			if nb == start && len(loop) >= 3 {
				return loop, nil
			}
			if !visited[nb] {
				next = nb
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%w: stuck after %d vertices", ErrOpenBoundary, len(loop))
		}
		visited[next] = true
		loop = append(loop, next)
		prev, cur = cur, next
	}

	return nil, fmt.Errorf("%w: iteration cap reached", ErrOpenBoundary)
}
