// Package compliance checks worst-case evacuation distances against the
// maximum route lengths of a rules table.
//
// Rules table (JSON):
//
//	{
//	  "general":     {"max_route_single_exit_m": 25, "max_route_multiple_exits_m": 50, "dead_end_max_m": 25},
//	  "by_typology": {"office": {"max_route_multiple_exits_m": 60}}
//	}
//
// Every value is optional. A typology value overrides the general one;
// anything still missing falls back to 25 / 50 / 25 m.
//
// Verdict per space:
//
//   - The building has at most one exit door: the single-exit limit applies,
//     otherwise the multiple-exits limit.
//   - Automatic extinguishing multiplies the limit by 1.25.
//   - pass:    worst ≤ effective limit.
//   - fail:    worst > effective limit; the overage is reported.
//   - blocked: no worst case could be computed. Never counted as pass.
//
// Errors:
//
//   - ErrRulesUnavailable: the table is missing, unreadable or malformed,
//     including anything other than exactly one JSON object.
//     Distances remain valid; only the verdict is impossible.
package compliance
