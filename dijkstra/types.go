package dijkstra

import (
	"errors"

	"github.com/katalvlaran/evacroute/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementations.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSources indicates an empty source list.
	ErrNoSources = errors.New("dijkstra: no source vertices")

	// ErrVertexNotFound indicates a source vertex absent from the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeCost indicates a seed with a negative or NaN base cost.
	ErrNegativeCost = errors.New("dijkstra: seed cost must be non-negative")
)

// Seed is a starting cell of a multi-source grid search together with the
// cost already spent reaching it.
type Seed struct {
	Cell gridgraph.Cell
	Cost float64
}

// nodeItem represents a node and its tentative distance.
// It is stored in the priority queue to order nodes by increasing distance.
type nodeItem struct {
	id   int     // grid cell index or graph vertex index
	dist float64 // distance from the sources
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id.
// We use the "lazy-decrease-key" approach: when we find a shorter distance to
// a node, we push a new item. The outdated entry remains but is ignored when
// popped (its dist no longer matches the best known distance).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties by id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
