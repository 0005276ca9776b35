package evacuation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/building"
	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dijkstra"
	"github.com/katalvlaran/evacroute/doorgraph"
	"github.com/katalvlaran/evacroute/geometry"
	"github.com/katalvlaran/evacroute/gridgraph"
	"github.com/katalvlaran/evacroute/internal/workers"
)

// runner holds the mutable state of one Run.
type runner struct {
	opts  Options
	model building.Provider
	res   *Result

	// usable are the positioned doors with at least one known space.
	usable []building.Door
	work   []spaceWork
	links  int
}

// spaceWork is the per-space slot filled by the parallel stages.
type spaceWork struct {
	space   building.Space
	doors   []building.Door
	poly    geometry.Polygon
	grid    *gridgraph.Grid
	portals []doorgraph.Portal
	reason  string
	diags   []Diagnostic
	result  SpaceResult
}

func (w *spaceWork) note(kind DiagnosticKind, doorID, format string, args ...interface{}) {
	w.diags = append(w.diags, Diagnostic{
		Kind:    kind,
		SpaceID: w.space.ID,
		DoorID:  doorID,
		Message: fmt.Sprintf(format, args...),
	})
}

// Run computes the worst-case exit distance of every space of m.
//
// Steps:
//  1. Validate options and the model; collect exit doors.
//  2. Keep positioned doors with a known adjacent space.
//  3. Per space (parallel): footprint, grid, door anchors.
//  4. Build the door graph: intra-room edges, then level bridges.
//  5. Distance-to-exit per door; list anchored doors no exit reaches.
//  6. Per space (parallel): seeded grid search, worst finite distance.
//
// Errors: ErrNilProvider, ErrBadOptions, ErrNoSpaces, ErrNoExitDoors, or a
// wrapped door-graph construction error. Per-space problems never fail the
// run.
func Run(m building.Provider, opts ...Option) (*Result, error) {
	// 1) Validate
	if m == nil {
		return nil, ErrNilProvider
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(o); err != nil {
		return nil, err
	}
	spaces := m.Spaces()
	if len(spaces) == 0 {
		return nil, ErrNoSpaces
	}
	doors := m.Doors()
	r := &runner{
		opts:  o,
		model: m,
		res:   &Result{ExitDistance: map[string]float64{}},
		work:  make([]spaceWork, len(spaces)),
	}
	for _, d := range doors {
		if d.IsExit() {
			r.res.ExitDoors = append(r.res.ExitDoors, d.ID)
		}
	}
	if len(r.res.ExitDoors) == 0 {
		return nil, ErrNoExitDoors
	}

	// 2) Doors
	for i, s := range spaces {
		r.work[i].space = s
	}
	r.collectDoors(doors)

	// 3) Spaces
	workers.ForEach(len(r.work), o.Workers, func(i int) { r.prepare(&r.work[i]) })
	r.flush()

	// 4) Door graph
	g, err := r.buildGraph()
	if err != nil {
		return nil, err
	}

	// 5) Exit distances
	if err := r.propagate(g); err != nil {
		return nil, err
	}

	// 6) Worst case
	workers.ForEach(len(r.work), o.Workers, func(i int) { r.solve(&r.work[i]) })
	r.flush()
	r.res.Spaces = make([]SpaceResult, len(r.work))
	for i := range r.work {
		r.res.Spaces[i] = r.work[i].result
	}

	return r.res, nil
}

func validate(o Options) error {
	switch {
	case !(o.Grid.Resolution > 0) || math.IsInf(o.Grid.Resolution, 1):
		return fmt.Errorf("%w: resolution %v", ErrBadOptions, o.Grid.Resolution)
	case o.Grid.Conn != gridgraph.Conn4 && o.Grid.Conn != gridgraph.Conn8:
		return fmt.Errorf("%w: connectivity %v", ErrBadOptions, o.Grid.Conn)
	case o.Grid.MaxCells < 0:
		return fmt.Errorf("%w: max cells %d", ErrBadOptions, o.Grid.MaxCells)
	case o.Snap.Primary < 0 || o.Snap.Fallback < 0:
		return fmt.Errorf("%w: snap radii %+v", ErrBadOptions, o.Snap)
	case o.Logger == nil:
		return fmt.Errorf("%w: nil logger", ErrBadOptions)
	}
	if err := o.Footprint.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadOptions, err)
	}
	if err := o.Bridges.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadOptions, err)
	}

	return nil
}

// note records a run-level diagnostic and logs it.
func (r *runner) note(d Diagnostic) {
	r.res.Diagnostics = append(r.res.Diagnostics, d)
	switch {
	case d.SpaceID != "" && d.DoorID != "":
		r.opts.Logger.Printf("evacuation: %s: space %s, door %s: %s", d.Kind, d.SpaceID, d.DoorID, d.Message)
	case d.SpaceID != "":
		r.opts.Logger.Printf("evacuation: %s: space %s: %s", d.Kind, d.SpaceID, d.Message)
	case d.DoorID != "":
		r.opts.Logger.Printf("evacuation: %s: door %s: %s", d.Kind, d.DoorID, d.Message)
	default:
		r.opts.Logger.Printf("evacuation: %s: %s", d.Kind, d.Message)
	}
}

// flush moves per-space diagnostics into the result in space order.
func (r *runner) flush() {
	for i := range r.work {
		for _, d := range r.work[i].diags {
			r.note(d)
		}
		r.work[i].diags = nil
	}
}

// collectDoors keeps positioned doors with at least one known adjacent
// space and hands each to its spaces, in model order.
func (r *runner) collectDoors(doors []building.Door) {
	index := make(map[string]int, len(r.work))
	for i := range r.work {
		index[r.work[i].space.ID] = i
	}
	adj := r.model.Adjacency()
	if adj == nil {
		adj = building.NewAdjacency()
	}
	r.links = adj.Links()

	for _, d := range doors {
		if d.Position == nil {
			r.note(Diagnostic{Kind: DoorNoPosition, DoorID: d.ID, Message: "door has no position; excluded"})
			continue
		}
		var slots []int
		for _, sid := range adj.SpacesOf(d.ID) {
			if i, ok := index[sid]; ok {
				slots = append(slots, i)
			}
		}
		switch {
		case len(slots) == 0:
			r.note(Diagnostic{Kind: DoorNoSpace, DoorID: d.ID, Message: "door has no adjacent space; excluded"})
			continue
		case len(slots) > 2:
			r.note(Diagnostic{Kind: DoorManySpaces, DoorID: d.ID,
				Message: fmt.Sprintf("door touches %d spaces; all are used", len(slots))})
		}
		for _, i := range slots {
			r.work[i].doors = append(r.work[i].doors, d)
		}
		r.usable = append(r.usable, d)
	}
}

// prepare extracts the footprint, rasterizes it and anchors the doors.
func (r *runner) prepare(w *spaceWork) {
	if w.space.Mesh == nil {
		w.reason = ReasonNoMesh
		return
	}
	poly, err := geometry.FloorFootprint(*w.space.Mesh, r.opts.Footprint)
	if err != nil {
		w.reason = ReasonNoMesh
		w.note(SpaceNoFootprint, "", "%v", err)
		return
	}
	grid, err := gridgraph.Rasterize(poly, r.opts.Grid)
	switch {
	case errors.Is(err, gridgraph.ErrTooLarge):
		w.reason = ReasonTooLarge
		w.note(SpaceTooLarge, "", "%v", err)
		return
	case err != nil:
		w.reason = ReasonNoMesh
		w.note(SpaceNoFootprint, "", "%v", err)
		return
	}
	w.poly, w.grid = poly, grid

	for _, d := range w.doors {
		c, err := grid.Locate(poly, d.Position.XY(), r.opts.Snap)
		if err != nil {
			w.note(DoorNotAnchored, d.ID, "%v", err)
			continue
		}
		w.portals = append(w.portals, doorgraph.Portal{DoorID: d.ID, Cell: c})
	}
}

// buildGraph joins the anchored doors with intra-room edges and bridges.
func (r *runner) buildGraph() (*core.Graph, error) {
	g := core.NewGraph()
	var rooms []doorgraph.Room
	for i := range r.work {
		w := &r.work[i]
		if w.grid != nil && len(w.portals) > 0 {
			rooms = append(rooms, doorgraph.Room{ID: w.space.ID, Grid: w.grid, Portals: w.portals})
		}
	}
	if _, err := doorgraph.AddIntraRoomEdges(g, rooms, r.opts.Workers); err != nil {
		return nil, fmt.Errorf("evacuation: door graph: %w", err)
	}

	var landings []doorgraph.Landing
	for _, d := range r.usable {
		if !g.HasVertex(d.ID) {
			continue
		}
		landings = append(landings, doorgraph.Landing{
			DoorID:      d.ID,
			Level:       d.Level,
			Pos:         *d.Position,
			Circulation: building.IsCirculation(d, r.opts.CirculationKeywords),
		})
	}
	rep, err := doorgraph.AddLevelBridges(g, landings, r.model.StoreyElevations(), r.opts.Bridges)
	if err != nil {
		return nil, fmt.Errorf("evacuation: level bridges: %w", err)
	}
	if len(rep.Levels) < 2 {
		r.note(Diagnostic{Kind: SingleLevel,
			Message: fmt.Sprintf("%d level(s) among anchored doors; no level bridges added", len(rep.Levels))})
	} else {
		r.opts.Logger.Printf("evacuation: bridged %s → %s with %d edges (%d candidates)",
			rep.Upper, rep.Base, rep.Edges, rep.Candidates)
	}

	edges := g.Edges()
	r.res.Graph = GraphStats{
		Doors:          g.VertexCount(),
		IntraRoomEdges: g.CountByKind(core.EdgeIntraRoom),
		BridgeEdges:    g.CountByKind(core.EdgeLevelBridge),
		AdjacencyLinks: r.links,
		Edges:          make([]GraphEdge, len(edges)),
		Bridges:        rep,
	}
	for i, e := range edges {
		r.res.Graph.Edges[i] = GraphEdge{From: e.From, To: e.To, Weight: e.Weight, Kind: e.Kind.String(), Via: e.Via}
	}

	return g, nil
}

// propagate computes distance-to-exit for every door of g and lists the
// anchored doors left unreached.
func (r *runner) propagate(g *core.Graph) error {
	var sources []string
	for _, id := range r.res.ExitDoors {
		if g.HasVertex(id) {
			sources = append(sources, id)
		}
	}
	if len(sources) > 0 {
		dist, err := dijkstra.FromSources(g, sources)
		if err != nil {
			return fmt.Errorf("evacuation: exit distances: %w", err)
		}
		r.res.ExitDistance = dist
	}

	for _, d := range r.usable {
		if !g.HasVertex(d.ID) {
			continue
		}
		if _, ok := r.res.ExitDistance[d.ID]; !ok {
			r.res.Unreachable = append(r.res.Unreachable, d.ID)
			r.note(Diagnostic{Kind: DoorUnreachable, DoorID: d.ID, Message: "no path from any exit door"})
		}
	}

	return nil
}

// solve runs the seeded grid search of one space and fills w.result.
func (r *runner) solve(w *spaceWork) {
	s := w.space
	res := SpaceResult{
		ID:       s.ID,
		Name:     s.Name,
		LongName: s.LongName,
		Level:    s.Level,
		Doors:    len(w.doors),
	}
	defer func() { w.result = res }()

	if w.reason != "" {
		res.BlockedReason = w.reason
		return
	}
	res.WalkableCells = w.grid.WalkableCount()
	if len(w.doors) == 0 {
		res.BlockedReason = ReasonNoDoors
		return
	}

	var seeds []dijkstra.Seed
	for _, p := range w.portals {
		if d, ok := r.res.ExitDistance[p.DoorID]; ok {
			seeds = append(seeds, dijkstra.Seed{Cell: p.Cell, Cost: d})
		}
	}
	res.Seeds = len(seeds)
	if len(seeds) == 0 {
		res.BlockedReason = ReasonNoReachableDoors
		return
	}

	field, err := dijkstra.MultiSource(w.grid, seeds)
	if err != nil {
		res.BlockedReason = ReasonNoReachableDoors
		w.note(DoorUnreachable, "", "%v", err)
		return
	}
	worst, reached, ok := dijkstra.MaxFinite(field)
	if !ok {
		res.BlockedReason = ReasonNoReachableDoors
		return
	}
	res.Worst, res.Computed = worst, true
	res.UnreachedCells = res.WalkableCells - reached
	if res.UnreachedCells > 0 {
		w.note(SpaceIslands, "", "%d of %d walkable cells unreachable from any door (%d walkable islands)",
			res.UnreachedCells, res.WalkableCells, len(w.grid.ConnectedComponents()))
	}
}
