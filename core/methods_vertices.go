// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Index/VertexID/VertexCount.
// Determinism:
//   - Vertex indices follow insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddVertex inserts id if absent and returns its dense index.
// Adding an existing vertex is a no-op that returns the existing index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(id), nil
}

// addVertexLocked assumes mu is held for writing.
func (g *Graph) addVertexLocked(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = i
	g.arcs = append(g.arcs, nil)

	return i
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Index returns the dense index of id.
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// VertexID returns the door ID stored at index i.
// Panics if i is out of range.
func (g *Graph) VertexID(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.ids) {
		panic(fmt.Sprintf("core: vertex index %d out of range [0,%d)", i, len(g.ids)))
	}

	return g.ids[i]
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}
