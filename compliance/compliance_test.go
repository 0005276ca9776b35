package compliance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacroute/compliance"
	"github.com/katalvlaran/evacroute/evacuation"
)

func f(v float64) *float64 { return &v }

func computed(id string, worst float64) evacuation.SpaceResult {
	return evacuation.SpaceResult{ID: id, Name: id, Worst: worst, Computed: true}
}

func TestParse(t *testing.T) {
	tbl, err := compliance.Parse(strings.NewReader(`{
		"general": {"max_route_single_exit_m": 25, "max_route_multiple_exits_m": 50},
		"by_typology": {"hospital": {"max_route_multiple_exits_m": 30, "dead_end_max_m": 15}}
	}`))
	require.NoError(t, err)
	require.NotNil(t, tbl.General.SingleExit)
	assert.Equal(t, 25.0, *tbl.General.SingleExit)
	assert.Nil(t, tbl.General.DeadEnd)
	assert.Contains(t, tbl.ByTypology, "hospital")
}

func TestParse_Unavailable(t *testing.T) {
	for name, in := range map[string]string{
		"syntax":   `{"general": `,
		"type":     `{"general": {"dead_end_max_m": "far"}}`,
		"negative": `{"by_typology": {"x": {"max_route_single_exit_m": -1}}}`,
		"trailing": `{"general": {}} trailing garbage`,
		"two docs": `{"general": {"max_route_single_exit_m": 10}}{"x": 1}`,
		"null":     `null`,
		"array":    `[]`,
		"empty":    ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := compliance.Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, compliance.ErrRulesUnavailable)
		})
	}

	_, err := compliance.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, compliance.ErrRulesUnavailable)
	assert.Contains(t, err.Error(), "cannot evaluate compliance — rules unavailable")
}

func TestParse_FirstBadTypologyIsStable(t *testing.T) {
	in := `{"by_typology": {
		"zoo":    {"dead_end_max_m": -3},
		"arena":  {"max_route_single_exit_m": -1, "dead_end_max_m": -2},
		"museum": {"max_route_multiple_exits_m": -4}
	}}`
	for i := 0; i < 20; i++ {
		_, err := compliance.Parse(strings.NewReader(in))
		require.ErrorIs(t, err, compliance.ErrRulesUnavailable)
		assert.Contains(t, err.Error(), "by_typology.arena.max_route_single_exit_m = -1")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"general": {"dead_end_max_m": 20}}`), 0o600))
	tbl, err := compliance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, tbl.Limits("").DeadEnd)
}

func TestTable_Limits(t *testing.T) {
	tbl := &compliance.Table{
		General: compliance.RuleSet{SingleExit: f(20)},
		ByTypology: map[string]compliance.RuleSet{
			"office": {MultipleExits: f(60)},
		},
	}

	l := tbl.Limits("")
	assert.Equal(t, 20.0, l.SingleExit)
	assert.Equal(t, compliance.DefaultMultipleExits, l.MultipleExits)
	assert.Equal(t, compliance.DefaultDeadEnd, l.DeadEnd)

	l = tbl.Limits(" office ")
	assert.Equal(t, 20.0, l.SingleExit, "general value kept when typology is silent")
	assert.Equal(t, 60.0, l.MultipleExits)
	assert.Equal(t, []string{"Using typology overrides: office"}, l.Notes)

	l = tbl.Limits("school")
	assert.Equal(t, compliance.DefaultMultipleExits, l.MultipleExits)
	require.Len(t, l.Notes, 1)
	assert.Contains(t, l.Notes[0], "general limits only")

	empty := &compliance.Table{}
	l = empty.Limits("anything")
	assert.Equal(t, compliance.Limits{
		SingleExit: 25, MultipleExits: 50, DeadEnd: 25, Notes: l.Notes,
	}, l)
}

func TestEvaluate_ThreeExitsMultipleExitRule(t *testing.T) {
	tbl := &compliance.Table{ByTypology: map[string]compliance.RuleSet{
		"office": {MultipleExits: f(50)},
	}}
	rep, err := compliance.Evaluate([]evacuation.SpaceResult{
		computed("near", 45),
		computed("far", 55),
	}, tbl, compliance.Params{ExitCount: 3, Typology: "office"})
	require.NoError(t, err)

	assert.Equal(t, compliance.RuleMultipleExits, rep.Rule)
	assert.Equal(t, 50.0, rep.Effective)

	near, far := rep.Records[0], rep.Records[1]
	assert.Equal(t, compliance.StatusPass, near.Status)
	assert.Nil(t, near.Shortfall)
	assert.Equal(t, compliance.StatusFail, far.Status)
	require.NotNil(t, far.Shortfall)
	assert.InDelta(t, 5.0, *far.Shortfall, 1e-12)
	assert.Contains(t, far.Note, "exceeds limit by 5.00 m")

	assert.Equal(t, compliance.Summary{Total: 2, Pass: 1, Fail: 1, MaxDistance: f(55)}, rep.Summary)
}

func TestEvaluate_BoundaryIsPass(t *testing.T) {
	rep, err := compliance.Evaluate([]evacuation.SpaceResult{
		computed("equal", 25),
		computed("above", 26),
	}, &compliance.Table{}, compliance.Params{ExitCount: 1})
	require.NoError(t, err)
	assert.Equal(t, compliance.RuleSingleExit, rep.Rule)
	assert.Equal(t, compliance.StatusPass, rep.Records[0].Status)
	assert.Equal(t, compliance.StatusFail, rep.Records[1].Status)
}

func TestEvaluate_ExtinguishingBonus(t *testing.T) {
	spaces := []evacuation.SpaceResult{computed("s", 60)}
	tbl := &compliance.Table{}

	plain, err := compliance.Evaluate(spaces, tbl, compliance.Params{ExitCount: 2})
	require.NoError(t, err)
	bonus, err := compliance.Evaluate(spaces, tbl, compliance.Params{ExitCount: 2, Extinguishing: true})
	require.NoError(t, err)

	assert.Equal(t, plain.Effective*1.25, bonus.Effective)
	assert.Equal(t, 62.5, bonus.Effective)
	assert.Equal(t, compliance.StatusFail, plain.Records[0].Status)
	assert.Equal(t, compliance.StatusPass, bonus.Records[0].Status)
}

func TestEvaluate_BlockedNeverPasses(t *testing.T) {
	rep, err := compliance.Evaluate([]evacuation.SpaceResult{
		{ID: "b", Name: "Store", LongName: "Storage room", Level: "L0", BlockedReason: evacuation.ReasonNoMesh},
		computed("ok", 1),
	}, &compliance.Table{}, compliance.Params{ExitCount: 2})
	require.NoError(t, err)

	b := rep.Records[0]
	assert.Equal(t, compliance.StatusBlocked, b.Status)
	assert.Nil(t, b.Actual)
	assert.Nil(t, b.Shortfall)
	assert.Equal(t, "Storage room (L0)", b.SpaceNameLong)
	assert.Contains(t, b.Note, "no mesh")
	assert.Equal(t, compliance.Summary{Total: 2, Pass: 1, Blocked: 1, MaxDistance: f(1)}, rep.Summary)
}

func TestEvaluate_SpaceNameFallbacks(t *testing.T) {
	rep, err := compliance.Evaluate([]evacuation.SpaceResult{
		{ID: "s1", Name: "101", Level: "L2", Worst: 3, Computed: true},
		{ID: "s2", Worst: 4, Computed: true},
	}, &compliance.Table{}, compliance.Params{ExitCount: 1})
	require.NoError(t, err)
	assert.Equal(t, "101 (L2)", rep.Records[0].SpaceNameLong)
	assert.Equal(t, "s2", rep.Records[1].SpaceNameLong)
}

func TestEvaluate_NoRules(t *testing.T) {
	_, err := compliance.Evaluate(nil, nil, compliance.Params{})
	assert.ErrorIs(t, err, compliance.ErrRulesUnavailable)
}
