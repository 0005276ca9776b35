// Package doorgraph builds the building-wide door graph from per-room grids.
//
// What:
//
//   - AddIntraRoomEdges: for every room with two or more anchored doors, one
//     single-source grid Dijkstra per door gives the walking distance to the
//     room's other doors; each finite distance becomes an EdgeIntraRoom edge.
//     Rooms are independent, so the searches run on a bounded worker pool;
//     edges are inserted afterwards in room order, then portal order.
//   - AddLevelBridges: a stair proxy. Doors are grouped by level; the lowest
//     and highest level (by storey elevation when at least two are known,
//     else by label) are joined by linking every upper-level door to its K
//     horizontally nearest base-level landing candidates.
//
// Why the bridge heuristic:
//
//	Stair geometry is rarely modelled well enough to route through. Weight =
//	vertical drop × VerticalCost + horizontal offset × HorizontalPenalty
//	gives a conservative climb cost without it. Only the base and upper
//	levels are joined; intermediate storeys get no bridges.
//
// Landing candidates are base-level doors whose name or mark matches a
// circulation keyword; when none match, every base-level door is a
// candidate.
//
// Errors:
//
//   - ErrNilGraph:  nil *core.Graph.
//   - ErrNilGrid:   a room with portals but no grid.
//   - ErrBadParams: negative, NaN or infinite bridge costs, or a negative
//     MaxLandings.
package doorgraph
