// Package dijkstra implements the shortest-path searches of the evacuation
// engine: over the cells of a room grid and over the building's door graph.
//
// Dijkstra computes minimum-cost distances from one or more sources to all
// other reachable nodes of a graph with non-negative edge weights. Nodes are
// processed in order of increasing distance using a min-heap priority queue.
//
// Entry points:
//
//   - FromCell:    single-source search over the walkable cells of a grid.
//   - MultiSource: multi-source grid search; each seed carries a base cost,
//     so every cell ends up with min over seeds of (base + walk).
//   - FromSources: multi-source search over a *core.Graph, every source at 0.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the distance array.
//   - O(E) worst-case for entries in the heap under "lazy-decrease-key".
//
// Notes on implementation choices:
//
//   - Distances are float64 metres; unreachable nodes hold +Inf.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and skipping entries whose popped distance differs from the current best.
//   - Grid searches walk the grid's precomputed Steps, so Conn4/Conn8 and the
//     √2 diagonal cost are decided once, by the grid.
package dijkstra
