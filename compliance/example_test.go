package compliance_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/evacroute/compliance"
	"github.com/katalvlaran/evacroute/evacuation"
)

// ExampleEvaluate checks two spaces of a building with three exits.
func ExampleEvaluate() {
	tbl, err := compliance.Parse(strings.NewReader(`{"by_typology": {"office": {"max_route_multiple_exits_m": 50}}}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rep, _ := compliance.Evaluate([]evacuation.SpaceResult{
		{ID: "a", Name: "Open plan", Worst: 45, Computed: true},
		{ID: "b", Name: "Archive", Worst: 55, Computed: true},
		{ID: "c", Name: "Plant", BlockedReason: evacuation.ReasonNoMesh},
	}, tbl, compliance.Params{ExitCount: 3, Typology: "office"})

	for _, r := range rep.Records {
		line := fmt.Sprintf("%-9s %-7s %s", r.SpaceName, r.Status, r.Note)
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("pass=%d fail=%d blocked=%d\n", rep.Summary.Pass, rep.Summary.Fail, rep.Summary.Blocked)
	// Output:
	// Open plan pass
	// Archive   fail    evacuation route exceeds limit by 5.00 m (55.00 m vs 50.0 m)
	// Plant     blocked could not compute evacuation distance: no mesh
	// pass=1 fail=1 blocked=1
}
