// Command evacroute computes worst-case evacuation distances for every space
// of a building model and checks them against a rules table.
//
// Usage:
//
//	evacroute -model building.json [-rules rules.json] [-config evacroute.yaml]
//	          [-env .env] [-typology office] [-extinguishing] [-top 10]
//
// Settings come from the YAML config, then EVACROUTE_* variables (a .env
// file is loaded first when present), then flags. The JSON report goes to
// stdout, warnings to stderr.
//
// Exit codes: 0 success, 1 run failure, 2 usage error, 3 distances computed
// but rules unavailable.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/evacroute/building"
	"github.com/katalvlaran/evacroute/compliance"
	"github.com/katalvlaran/evacroute/config"
	"github.com/katalvlaran/evacroute/evacuation"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
	exitNoRules
)

// report is the JSON document written to stdout.
type report struct {
	Model           string                   `json:"model"`
	ExitDoors       []string                 `json:"exit_doors"`
	Graph           evacuation.GraphStats    `json:"graph"`
	Compliance      *compliance.Report       `json:"compliance,omitempty"`
	ComplianceError string                   `json:"compliance_error,omitempty"`
	Spaces          []evacuation.SpaceResult `json:"spaces"`
	WorstSpaces     []evacuation.SpaceResult `json:"worst_spaces,omitempty"`
	Unreachable     []string                 `json:"unreachable_doors,omitempty"`
	Diagnostics     []evacuation.Diagnostic  `json:"diagnostics,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("evacroute", flag.ContinueOnError)
	fset.SetOutput(stderr)
	var (
		modelPath     = fset.String("model", "", "building model JSON (required)")
		configPath    = fset.String("config", "", "YAML configuration file")
		envPath       = fset.String("env", ".env", "dotenv file with EVACROUTE_* overrides")
		rulesPath     = fset.String("rules", "", "rules table JSON")
		typology      = fset.String("typology", "", "building typology for rule overrides")
		extinguishing = fset.Bool("extinguishing", false, "building has automatic extinguishing")
		top           = fset.Int("top", 0, "number of worst spaces to list")
	)
	if err := fset.Parse(args); err != nil {
		return exitUsage
	}
	if *modelPath == "" {
		fmt.Fprintln(stderr, "evacroute: -model is required")
		fset.Usage()
		return exitUsage
	}
	logger := log.New(stderr, "evacroute: ", log.LstdFlags)

	// 1) Settings
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Printf("%v", err)
			return exitUsage
		}
	}
	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Printf("load %s: %v", *envPath, err)
		return exitUsage
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		logger.Printf("%v", err)
		return exitUsage
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rules":
			cfg.Compliance.Rules = *rulesPath
		case "typology":
			cfg.Compliance.Typology = *typology
		case "extinguishing":
			cfg.Compliance.Extinguishing = *extinguishing
		case "top":
			cfg.Report.Top = *top
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Printf("%v", err)
		return exitUsage
	}

	// 2) Distances
	m, err := building.Load(*modelPath)
	if err != nil {
		logger.Printf("%v", err)
		return exitFailure
	}
	res, err := evacuation.Run(m, cfg.EngineOptions(logger)...)
	if err != nil {
		logger.Printf("%v", err)
		return exitFailure
	}
	out := report{
		Model:       *modelPath,
		ExitDoors:   res.ExitDoors,
		Graph:       res.Graph,
		Spaces:      res.Spaces,
		WorstSpaces: res.WorstSpaces(cfg.Report.Top),
		Unreachable: res.Unreachable,
	}
	if cfg.Report.Top == 0 {
		out.WorstSpaces = nil
	}
	if cfg.Report.Diagnostics {
		out.Diagnostics = res.Diagnostics
	}

	// 3) Verdicts
	code := exitOK
	var tbl *compliance.Table
	if cfg.Compliance.Rules == "" {
		err = fmt.Errorf("%w: no rules file configured", compliance.ErrRulesUnavailable)
	} else {
		tbl, err = compliance.Load(cfg.Compliance.Rules)
	}
	if err == nil {
		var rep compliance.Report
		rep, err = compliance.Evaluate(res.Spaces, tbl, compliance.Params{
			ExitCount:     res.ExitCount(),
			Typology:      cfg.Compliance.Typology,
			Extinguishing: cfg.Compliance.Extinguishing,
		})
		out.Compliance = &rep
	}
	if err != nil {
		out.Compliance = nil
		out.ComplianceError = err.Error()
		logger.Printf("%v", err)
		code = exitNoRules
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Printf("write report: %v", err)
		return exitFailure
	}

	return code
}
