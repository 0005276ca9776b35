package compliance

import "errors"

// ErrRulesUnavailable indicates a missing or malformed rules table.
var ErrRulesUnavailable = errors.New("cannot evaluate compliance — rules unavailable")

// Fallback limits in metres, and the extinguishing multiplier.
const (
	DefaultSingleExit    = 25.0
	DefaultMultipleExits = 50.0
	DefaultDeadEnd       = 25.0
	ExtinguishingBonus   = 1.25
)

// Rule labels.
const (
	RuleSingleExit    = "SI3.3 single exit"
	RuleMultipleExits = "SI3.3 multiple exits"
)

// RuleSet holds optional route limits in metres.
type RuleSet struct {
	SingleExit    *float64 `json:"max_route_single_exit_m,omitempty"`
	MultipleExits *float64 `json:"max_route_multiple_exits_m,omitempty"`
	DeadEnd       *float64 `json:"dead_end_max_m,omitempty"`
}

// Table is the rules table: general limits plus per-typology overrides.
type Table struct {
	General    RuleSet            `json:"general"`
	ByTypology map[string]RuleSet `json:"by_typology,omitempty"`
}

// Limits are the resolved limits for one typology.
type Limits struct {
	SingleExit    float64  `json:"single_exit_limit_m"`
	MultipleExits float64  `json:"multiple_exits_limit_m"`
	DeadEnd       float64  `json:"dead_end_limit_m"`
	Notes         []string `json:"notes,omitempty"`
}

// Status is a per-space verdict.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusBlocked Status = "blocked"
)

// Params describes the building being checked.
type Params struct {
	// ExitCount is the number of exit doors in the building.
	ExitCount int

	// Typology selects by_typology overrides; empty uses general limits.
	Typology string

	// Extinguishing enables the automatic extinguishing bonus.
	Extinguishing bool
}

// Record is the verdict for one space.
type Record struct {
	SpaceID       string   `json:"space_id"`
	SpaceName     string   `json:"space_name"`
	SpaceNameLong string   `json:"space_name_long"`
	Status        Status   `json:"check_status"`
	Actual        *float64 `json:"actual_distance_m"`
	Required      float64  `json:"required_distance_m"`
	Rule          string   `json:"rule"`
	Shortfall     *float64 `json:"shortfall_m"`
	Note          string   `json:"diagnostic_note"`
}

// Summary aggregates a report. Total always equals the number of records.
type Summary struct {
	Total       int      `json:"total"`
	Pass        int      `json:"pass"`
	Fail        int      `json:"fail"`
	Blocked     int      `json:"blocked"`
	MaxDistance *float64 `json:"max_distance_m"`
}

// Report is the outcome of Evaluate.
type Report struct {
	Limits    Limits   `json:"limits"`
	Rule      string   `json:"rule"`
	Effective float64  `json:"effective_limit_m"`
	Records   []Record `json:"records"`
	Summary   Summary  `json:"summary"`
}
