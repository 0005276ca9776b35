// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount/CountByKind/Arcs.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc (insertion order).
//   - Arcs() returns arcs in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts an undirected edge between from and to, creating missing
// endpoints. Parallel edges are kept.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock mu; ensure endpoints.
//  3. Append the edge and one arc at each endpoint.
//
// Returns the new Edge.ID.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (int, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return -1, ErrEmptyVertexID
	}
	if from == to {
		return -1, ErrLoopNotAllowed
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return -1, fmt.Errorf("%w: %s—%s weight=%v", ErrBadWeight, from, to, weight)
	}

	// 2) Endpoints
	g.mu.Lock()
	defer g.mu.Unlock()
	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)

	// 3) Catalog + adjacency
	e := Edge{ID: len(g.edges), From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(&e)
	}
	g.edges = append(g.edges, e)
	g.arcs[u] = append(g.arcs[u], Arc{To: v, Weight: weight})
	g.arcs[v] = append(g.arcs[v], Arc{To: u, Weight: weight})

	return e.ID, nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// CountByKind returns the number of edges of the given kind.
// Complexity: O(E).
func (g *Graph) CountByKind(kind EdgeKind) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, e := range g.edges {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

// Arcs returns a copy of the arcs leaving vertex index i.
// Complexity: O(deg(i)).
func (g *Graph) Arcs(i int) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.arcs) {
		return nil
	}
	out := make([]Arc, len(g.arcs[i]))
	copy(out, g.arcs[i])

	return out
}
