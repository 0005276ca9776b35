// Package gridgraph rasterizes a room footprint into a uniform occupancy grid
// and treats that grid as a graph of walkable cells.
//
// What:
//
//   - Rasterize: polygon → Grid. The bounding box is padded by one cell on
//     each side; a cell is walkable iff its centre lies inside the polygon.
//   - Grid: row-major walkable flags with world origin and resolution,
//     Conn4 or Conn8 neighbour steps with metric step costs.
//   - Locate: snaps a door position onto the nearest walkable cell
//     (projection onto the footprint, then ring search over 4-neighbours).
//   - ConnectedComponents: walkable regions ("islands") under the grid's
//     connectivity.
//
// Why:
//
//   - Walking distance inside a room is approximated by shortest paths on
//     the grid; the grid is the only obstacle model (interior walls are not
//     rasterized, only the outer boundary).
//
// Complexity:
//
//   - Rasterize:           O(W×H×N) for N polygon vertices.
//   - Locate:              O(N + r²) for search radius r.
//   - ConnectedComponents: O(W×H×d), d = 4 or 8.
//
// Options:
//
//   - GridOptions.Resolution: cell edge length in metres (default 0.20).
//   - GridOptions.Conn:       Conn4 or Conn8 (default Conn8).
//   - GridOptions.MaxCells:   cell budget per grid (default 4,000,000).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: bad literal input to From2D.
//   - ErrBadResolution:  resolution ≤ 0.
//   - ErrEmptyPolygon:   polygon with fewer than 3 points.
//   - ErrTooLarge:       grid would exceed MaxCells.
//   - ErrNoWalkableCell: Locate found nothing within the fallback radius.
package gridgraph
