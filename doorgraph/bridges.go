package doorgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/evacroute/core"
)

// AddLevelBridges links the upper level to the base level with
// EdgeLevelBridge edges.
//
// Steps:
//  1. Group landings by level label (empty labels are ignored).
//  2. Fewer than two levels: nothing to bridge, return the report.
//  3. Pick base and upper: by elevation when at least two levels have one,
//     else by sorted label.
//  4. Candidates: circulation doors of the base level, else all of them.
//  5. For each upper door, link its K = min(MaxLandings, candidates) nearest
//     candidates by horizontal distance (stable on ties).
//
// Bridge weight = |Δz| × VerticalCost + dxy × HorizontalPenalty, with Δz
// taken from the door positions.
func AddLevelBridges(g *core.Graph, landings []Landing, elevations map[string]float64, p BridgeParams) (BridgeReport, error) {
	var rep BridgeReport
	if g == nil {
		return rep, ErrNilGraph
	}
	if err := p.Validate(); err != nil {
		return rep, err
	}

	// 1) Group
	seen := mapset.New[string]()
	byLevel := make(map[string][]Landing)
	for _, l := range landings {
		if l.Level == "" {
			continue
		}
		if !seen.Has(l.Level) {
			seen.Put(l.Level)
			rep.Levels = append(rep.Levels, l.Level)
		}
		byLevel[l.Level] = append(byLevel[l.Level], l)
	}

	// 2) Single level
	if len(rep.Levels) < 2 {
		return rep, nil
	}

	// 3) Order levels
	rep.Base, rep.Upper, rep.ByElevation = pickLevels(rep.Levels, elevations)

	// 4) Candidates
	base := byLevel[rep.Base]
	var cands []Landing
	for _, l := range base {
		if l.Circulation {
			cands = append(cands, l)
		}
	}
	rep.CirculationOnly = len(cands) > 0
	if !rep.CirculationOnly {
		cands = base
	}
	rep.Candidates = len(cands)
	k := p.MaxLandings
	if k > len(cands) {
		k = len(cands)
	}

	// 5) Link
	order := make([]int, len(cands))
	dxy := make([]float64, len(cands))
	for _, u := range byLevel[rep.Upper] {
		for i, c := range cands {
			order[i] = i
			dxy[i] = u.Pos.XY().Dist(c.Pos.XY())
		}
		sort.SliceStable(order, func(a, b int) bool { return dxy[order[a]] < dxy[order[b]] })
		for _, i := range order[:k] {
			c := cands[i]
			w := math.Abs(u.Pos.Z-c.Pos.Z)*p.VerticalCost + dxy[i]*p.HorizontalPenalty
			if _, err := g.AddEdge(u.DoorID, c.DoorID, w, core.WithKind(core.EdgeLevelBridge)); err != nil {
				return rep, fmt.Errorf("doorgraph: bridge %s—%s: %w", u.DoorID, c.DoorID, err)
			}
			rep.Edges++
		}
	}

	return rep, nil
}

// pickLevels returns the lowest and highest level. Levels with a known
// elevation are used when there are at least two of them; otherwise labels
// are sorted lexicographically.
func pickLevels(levels []string, elevations map[string]float64) (base, upper string, byElevation bool) {
	var known []string
	for _, l := range levels {
		if _, ok := elevations[l]; ok {
			known = append(known, l)
		}
	}
	if len(known) >= 2 {
		sort.SliceStable(known, func(i, j int) bool {
			ei, ej := elevations[known[i]], elevations[known[j]]
			if ei != ej {
				return ei < ej
			}
			return known[i] < known[j]
		})

		return known[0], known[len(known)-1], true
	}

	sorted := append([]string(nil), levels...)
	sort.Strings(sorted)

	return sorted[0], sorted[len(sorted)-1], false
}
