package doorgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/evacroute/core"
	"github.com/katalvlaran/evacroute/dijkstra"
	"github.com/katalvlaran/evacroute/internal/workers"
)

// search is one single-source grid Dijkstra: portal src of room room.
// out[j] holds the distance to portal src+1+j.
type search struct {
	room, src int
	out       []float64
	err       error
}

// AddIntraRoomEdges registers every portal door as a vertex of g and adds
// one EdgeIntraRoom edge per pair of portals sharing a room, weighted by the
// grid walking distance between their cells. Unreachable pairs get no edge.
//
// Steps:
//  1. Validate; add portal doors as vertices in room order.
//  2. Plan one search per portal that has later portals in its room.
//  3. Run the searches on at most limit goroutines (<= 0: GOMAXPROCS).
//  4. Insert edges in room order, then portal order.
//
// Returns the number of edges added.
// Complexity: O(Σ P_r · C_r log C_r) for P_r portals and C_r cells per room.
func AddIntraRoomEdges(g *core.Graph, rooms []Room, limit int) (int, error) {
	// 1) Validate and register vertices
	if g == nil {
		return 0, ErrNilGraph
	}
	for _, r := range rooms {
		if len(r.Portals) > 0 && r.Grid == nil {
			return 0, fmt.Errorf("%w: room %q", ErrNilGrid, r.ID)
		}
		for _, p := range r.Portals {
			if _, err := g.AddVertex(p.DoorID); err != nil {
				return 0, fmt.Errorf("doorgraph: room %q: %w", r.ID, err)
			}
		}
	}

	// 2) Plan
	var jobs []search
	for ri, r := range rooms {
		for pi := 0; pi+1 < len(r.Portals); pi++ {
			jobs = append(jobs, search{room: ri, src: pi})
		}
	}

	// 3) Search
	workers.ForEach(len(jobs), limit, func(i int) {
		j := &jobs[i]
		r := rooms[j.room]
		dist, err := dijkstra.FromCell(r.Grid, r.Portals[j.src].Cell)
		if err != nil {
			j.err = err
			return
		}
		rest := r.Portals[j.src+1:]
		j.out = make([]float64, len(rest))
		for k, p := range rest {
			j.out[k] = math.Inf(1)
			if r.Grid.Walkable(p.Cell) {
				j.out[k] = dist[r.Grid.Index(p.Cell)]
			}
		}
	})

	// 4) Insert
	added := 0
	for _, j := range jobs {
		if j.err != nil {
			return added, fmt.Errorf("doorgraph: room %q: %w", rooms[j.room].ID, j.err)
		}
		r := rooms[j.room]
		from := r.Portals[j.src].DoorID
		for k, d := range j.out {
			to := r.Portals[j.src+1+k].DoorID
			if math.IsInf(d, 1) || from == to {
				continue
			}
			if _, err := g.AddEdge(from, to, d, core.WithVia(r.ID)); err != nil {
				return added, fmt.Errorf("doorgraph: room %q: %w", r.ID, err)
			}
			added++
		}
	}

	return added, nil
}
