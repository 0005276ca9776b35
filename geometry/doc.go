// Package geometry turns the 3D shape of an enclosed space into the 2D
// floor footprint the rest of evacroute works on.
//
// What:
//
//   - Point2, Point3 and Polygon value types.
//   - Mesh: a triangle soup (vertex list + index triples) as delivered by a
//     building model.
//   - FloorFootprint: isolates the floor triangles of a mesh and traces the
//     outer boundary loop as an ordered Polygon.
//   - Polygon.Contains (even-odd ray casting) and Polygon.Snap (projection
//     onto the nearest boundary point).
//
// Why:
//
//   - Rooms in a building model are closed solids; evacuation distances are
//     measured on the floor plane only.
//
// Complexity:
//
//   - FloorFootprint: O(T + E) for T triangles and E boundary edges.
//   - Contains, Snap: O(N) for N polygon vertices.
//
// Errors:
//
//   - ErrEmptyMesh:           mesh has no vertices or no triangles.
//   - ErrBadTriangle:         a triangle references a missing vertex.
//   - ErrNoFloor:             no triangle qualifies as floor.
//   - ErrTooFewBoundaryEdges: fewer than 3 boundary edges were found.
//   - ErrOpenBoundary:        boundary walk did not return to its start.
//   - ErrDegenerateFootprint: traced loop has zero area.
//   - ErrBadFootprintOptions: negative, NaN or infinite tolerance
//     (FootprintOptions.Validate).
package geometry
