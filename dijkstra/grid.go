package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// FromCell computes walking distances from src to every cell of g.
//
// Returns a row-major slice of len g.Len(); blocked and unreachable cells
// hold +Inf. A blocked or out-of-range src yields an all-+Inf slice, not an
// error: a door that could not be anchored simply reaches nothing.
//
// Complexity:
//
//   - Time:  O(C log C) for C walkable cells
//   - Space: O(C)
func FromCell(g *gridgraph.Grid, src gridgraph.Cell) ([]float64, error) {
	return MultiSource(g, []Seed{{Cell: src}})
}

// MultiSource computes, for every cell, min over seeds of
// (seed.Cost + walking distance from seed.Cell).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. No seed may carry a negative or NaN cost (ErrNegativeCost).
//
// Seeds on blocked or out-of-range cells are ignored. When several seeds
// share a cell, the cheapest one wins.
func MultiSource(g *gridgraph.Grid, seeds []Seed) ([]float64, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrNilGrid
	}
	for i, s := range seeds {
		if s.Cost < 0 || math.IsNaN(s.Cost) {
			return nil, fmt.Errorf("%w: seed %d cost=%v", ErrNegativeCost, i, s.Cost)
		}
	}

	// 2) Initialize distances to +Inf
	r := &gridRunner{
		g:    g,
		dist: make([]float64, g.Len()),
		pq:   make(nodePQ, 0, len(seeds)),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}

	// 3) Seed
	for _, s := range seeds {
		if !g.Walkable(s.Cell) {
			continue
		}
		idx := g.Index(s.Cell)
		if s.Cost < r.dist[idx] {
			r.dist[idx] = s.Cost
			heap.Push(&r.pq, nodeItem{id: idx, dist: s.Cost})
		}
	}

	// 4) Main loop
	r.process()

	return r.dist, nil
}

// gridRunner holds the mutable state for a single grid search.
type gridRunner struct {
	g    *gridgraph.Grid
	dist []float64
	pq   nodePQ
}

// process pops the closest cell and relaxes its walkable neighbours until
// the heap is empty.
func (r *gridRunner) process() {
	steps := r.g.Steps()
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		// stale entry: a shorter distance was recorded after this push
		if item.dist != r.dist[item.id] {
			continue
		}
		u := r.g.Coordinate(item.id)
		for _, s := range steps {
			v := gridgraph.Cell{X: u.X + s.DX, Y: u.Y + s.DY}
			if !r.g.Walkable(v) {
				continue
			}
			vi := r.g.Index(v)
			nd := item.dist + s.Cost
			if nd < r.dist[vi] {
				r.dist[vi] = nd
				heap.Push(&r.pq, nodeItem{id: vi, dist: nd})
			}
		}
	}
}

// MaxFinite returns the largest finite value in dist and the number of
// finite entries. ok is false when no entry is finite.
func MaxFinite(dist []float64) (worst float64, reached int, ok bool) {
	for _, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		if reached == 0 || d > worst {
			worst = d
		}
		reached++
	}

	return worst, reached, reached > 0
}
