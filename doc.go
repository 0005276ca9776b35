// Package evacroute measures evacuation route lengths in building models.
//
// 🚀 What is evacroute?
//
//	For every occupiable space of a building it computes the walking
//	distance from the farthest point inside the space to an exterior exit,
//	and checks that distance against the maximum route length of a rules
//	table:
//		• Floor footprints from space meshes
//		• Occupancy grids at a fixed cell size (0.20 m by default)
//		• Door anchoring on walkable cells
//		• A door graph joining rooms and storeys
//		• Multi-source Dijkstra from the exits, composed room by room
//		• pass / fail / blocked verdicts with single/multiple-exit limits
//
// ✨ Why a door graph?
//
//   - Each room is rasterized and searched on its own; rooms only meet at
//     doors, so the building-wide problem stays small.
//   - Rooms are independent, so grids and searches run in parallel.
//   - Stairs are approximated by level bridges: no stair geometry needed.
//
// Packages:
//
//	geometry/   — points, polygons, meshes, floor footprint extraction
//	gridgraph/  — occupancy grid, rasterizer, door-cell locator
//	dijkstra/   — grid and door-graph shortest paths
//	core/       — thread-safe weighted door graph
//	building/   — input model, adjacency, JSON loader, circulation keywords
//	doorgraph/  — intra-room edges and level bridges
//	evacuation/ — the end-to-end run and per-space worst cases
//	compliance/ — rules table and verdicts
//	config/     — YAML + environment configuration for the CLI
//	cmd/evacroute — command-line front end
//
// Quick ASCII example:
//
//	+---------+---------+
//	|   R1    D   R2    E  → outside
//	+---------+---------+
//
//	dist(E) = 0, dist(D) = walk(D→E in R2)
//	worst(R1) = dist(D) + farthest point of R1 from D
//
// Getting started:
//
//	go install github.com/katalvlaran/evacroute/cmd/evacroute@latest
//	evacroute -model building.json -rules rules.json
package evacroute
