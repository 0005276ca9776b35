// Package core provides the thread-safe, in-memory door graph that joins the
// rooms of a building.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are door IDs. Each vertex gets a dense integer index on
//     insertion; indices are stable for the lifetime of the graph and follow
//     insertion order, so iteration is deterministic.
//   - Edges carry a float64 weight in metres and a Kind: intra-room walking
//     distance (EdgeIntraRoom, tagged with the room it crosses) or a
//     synthetic stair proxy (EdgeLevelBridge).
//   - Parallel edges are allowed: two doors that share two rooms get one
//     edge per room; shortest-path search keeps the cheaper one.
//   - A single sync.RWMutex guards vertices, edges and adjacency, so rooms
//     can be processed on separate goroutines while writing into one graph.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrBadWeight      - negative, NaN or infinite weight.
//	ErrLoopNotAllowed - edge from a door to itself.
//
// Complexity:
//
//   - AddVertex, AddEdge: O(1) amortized.
//   - Arcs:               O(deg(v)).
//   - Edges, CountByKind: O(E).
package core
