package compliance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
)

// Parse decodes a rules table from r. The input must hold exactly one JSON
// object. Any decoding problem, trailing data, a non-object document, and
// any negative or non-finite limit are reported as ErrRulesUnavailable.
func Parse(r io.Reader) (*Table, error) {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRulesUnavailable, err)
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after rules table", ErrRulesUnavailable)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil, fmt.Errorf("%w: rules table is not a JSON object", ErrRulesUnavailable)
	}

	var t Table
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRulesUnavailable, err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Load reads a rules table from path with Parse.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRulesUnavailable, err)
	}
	defer f.Close()

	return Parse(f)
}

func (t *Table) validate() error {
	check := func(where string, rs RuleSet) error {
		fields := []struct {
			name string
			v    *float64
		}{
			{"max_route_single_exit_m", rs.SingleExit},
			{"max_route_multiple_exits_m", rs.MultipleExits},
			{"dead_end_max_m", rs.DeadEnd},
		}
		for _, fld := range fields {
			if v := fld.v; v != nil && (*v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0)) {
				return fmt.Errorf("%w: %s.%s = %v", ErrRulesUnavailable, where, fld.name, *v)
			}
		}
		return nil
	}
	if err := check("general", t.General); err != nil {
		return err
	}

	// sorted so the first offending typology is the same on every run
	typs := make([]string, 0, len(t.ByTypology))
	for typ := range t.ByTypology {
		typs = append(typs, typ)
	}
	sort.Strings(typs)
	for _, typ := range typs {
		if err := check("by_typology."+typ, t.ByTypology[typ]); err != nil {
			return err
		}
	}

	return nil
}

// Limits resolves the limits for typology: typology values override
// general ones, missing values fall back to the defaults.
func (t *Table) Limits(typology string) Limits {
	typology = strings.TrimSpace(typology)
	l := Limits{
		SingleExit:    pick(DefaultSingleExit, t.General.SingleExit),
		MultipleExits: pick(DefaultMultipleExits, t.General.MultipleExits),
		DeadEnd:       pick(DefaultDeadEnd, t.General.DeadEnd),
	}

	over, ok := t.ByTypology[typology]
	switch {
	case typology == "":
		l.Notes = append(l.Notes, "Using general limits only (no typology given).")
	case !ok:
		l.Notes = append(l.Notes, fmt.Sprintf("Using general limits only (no rules for typology %q).", typology))
	default:
		l.SingleExit = pick(l.SingleExit, over.SingleExit)
		l.MultipleExits = pick(l.MultipleExits, over.MultipleExits)
		l.DeadEnd = pick(l.DeadEnd, over.DeadEnd)
		l.Notes = append(l.Notes, fmt.Sprintf("Using typology overrides: %s", typology))
	}

	return l
}

func pick(fallback float64, v *float64) float64 {
	if v == nil {
		return fallback
	}

	return *v
}
