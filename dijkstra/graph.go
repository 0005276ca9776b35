package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/core"
)

// FromSources runs a multi-source Dijkstra over the door graph with every
// source at distance 0.
//
// Returns a map holding only the vertices that were reached; absent
// vertices are disconnected from every source.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. sources must be non-empty (ErrNoSources).
//  3. every source must exist in g (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func FromSources(g *core.Graph, sources []string) (map[string]float64, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	n := g.VertexCount()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	// 2) Seed every source at 0
	pq := make(nodePQ, 0, n)
	for _, s := range sources {
		i, ok := g.Index(s)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, s)
		}
		if dist[i] == 0 {
			continue
		}
		dist[i] = 0
		heap.Push(&pq, nodeItem{id: i, dist: 0})
	}

	// 3) Main loop
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		if item.dist != dist[item.id] {
			continue
		}
		for _, a := range g.Arcs(item.id) {
			nd := item.dist + a.Weight
			if nd < dist[a.To] {
				dist[a.To] = nd
				heap.Push(&pq, nodeItem{id: a.To, dist: nd})
			}
		}
	}

	// 4) Export reached vertices by ID
	out := make(map[string]float64, n)
	for i, d := range dist {
		if !math.IsInf(d, 1) {
			out[g.VertexID(i)] = d
		}
	}

	return out, nil
}
