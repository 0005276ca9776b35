// Package evacuation computes, for every space of a building, the worst-case
// walking distance from any point inside it to an exterior exit.
//
// Pipeline (one Run):
//
//  1. Footprint:  space mesh → floor polygon (geometry.FloorFootprint).
//  2. Grid:       polygon → occupancy grid (gridgraph.Rasterize).
//  3. Anchor:     door position → walkable cell per adjacent space
//     (gridgraph.Grid.Locate).
//  4. Door graph: intra-room walking distances between co-located doors,
//     plus level bridges (doorgraph).
//  5. Propagate:  multi-source Dijkstra over the door graph from every exit
//     door (dijkstra.FromSources) → distance-to-exit per door.
//  6. Solve:      per space, multi-source grid Dijkstra seeded at its doors
//     with base cost = the door's distance-to-exit; the maximum finite
//     value is the space's worst case (dijkstra.MultiSource).
//
// Stages 1–3, the intra-room searches of 4 and stage 6 are independent per
// space and run on a bounded worker pool. Results are merged in model
// order, so two runs over the same model are identical.
//
// Failure model:
//
//   - Invalid options, including footprint tolerances and bridge
//     parameters: Run fails with ErrBadOptions before any work.
//   - No spaces, or no exit doors at all: Run fails (ErrNoSpaces,
//     ErrNoExitDoors).
//   - Everything else is local. A space without a usable footprint, doors
//     or exit-reachable doors is reported with Computed=false and a
//     BlockedReason; problems with individual doors are collected as
//     Diagnostics and written to the configured logger.
//
// Options:
//
//   - WithResolution, WithDiagonals, WithMaxCells: grid shape and budget.
//   - WithFootprint, WithSnapRadii: geometry tolerances.
//   - WithBridgeParams, WithCirculationKeywords: level bridge heuristic.
//   - WithWorkers, WithLogger: execution and logging.
package evacuation
