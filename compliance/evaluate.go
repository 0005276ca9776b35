package compliance

import (
	"fmt"

	"github.com/katalvlaran/evacroute/building"
	"github.com/katalvlaran/evacroute/evacuation"
)

// Evaluate turns per-space worst cases into verdicts, one record per space
// in input order.
//
// Steps:
//  1. Resolve limits for p.Typology; pick the single-exit limit when
//     p.ExitCount <= 1, else the multiple-exits limit.
//  2. Apply the extinguishing bonus.
//  3. Classify each space: blocked when not computed, else pass iff
//     worst <= effective limit.
//
// Returns ErrRulesUnavailable when t is nil.
func Evaluate(spaces []evacuation.SpaceResult, t *Table, p Params) (Report, error) {
	if t == nil {
		return Report{}, ErrRulesUnavailable
	}

	// 1) Limit
	rep := Report{Limits: t.Limits(p.Typology)}
	limit := rep.Limits.MultipleExits
	rep.Rule = RuleMultipleExits
	if p.ExitCount <= 1 {
		limit = rep.Limits.SingleExit
		rep.Rule = RuleSingleExit
	}

	// 2) Bonus
	rep.Effective = limit
	if p.Extinguishing {
		rep.Effective = limit * ExtinguishingBonus
	}

	// 3) Verdicts
	rep.Records = make([]Record, 0, len(spaces))
	for _, s := range spaces {
		rec := Record{
			SpaceID:       s.ID,
			SpaceName:     s.Name,
			SpaceNameLong: longName(s),
			Required:      rep.Effective,
			Rule:          rep.Rule,
		}
		worst, ok := s.Distance()
		switch {
		case !ok:
			rec.Status = StatusBlocked
			rec.Note = fmt.Sprintf("could not compute evacuation distance: %s", s.BlockedReason)
		case worst <= rep.Effective:
			rec.Status = StatusPass
			rec.Actual = &worst
		default:
			over := worst - rep.Effective
			rec.Status = StatusFail
			rec.Actual = &worst
			rec.Shortfall = &over
			rec.Note = fmt.Sprintf("evacuation route exceeds limit by %.2f m (%.2f m vs %.1f m)",
				over, worst, rep.Effective)
		}
		rep.Records = append(rep.Records, rec)
	}
	rep.Summary = Summarize(rep.Records)

	return rep, nil
}

// Summarize counts records per status and finds the largest actual
// distance.
func Summarize(records []Record) Summary {
	sum := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPass:
			sum.Pass++
		case StatusFail:
			sum.Fail++
		default:
			sum.Blocked++
		}
		if r.Actual != nil && (sum.MaxDistance == nil || *r.Actual > *sum.MaxDistance) {
			v := *r.Actual
			sum.MaxDistance = &v
		}
	}

	return sum
}

// longName is the display name of the space followed by the level, if any.
func longName(s evacuation.SpaceResult) string {
	name := building.Space{ID: s.ID, Name: s.Name, LongName: s.LongName}.DisplayName()
	if s.Level != "" {
		return fmt.Sprintf("%s (%s)", name, s.Level)
	}

	return name
}
