package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evacroute/building"
	"github.com/katalvlaran/evacroute/doorgraph"
	"github.com/katalvlaran/evacroute/evacuation"
	"github.com/katalvlaran/evacroute/geometry"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EVACROUTE_"

// ErrInvalidConfig indicates an unreadable or inconsistent configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Engine holds the distance engine settings.
type Engine struct {
	Resolution          float64                   `yaml:"resolution"`
	Diagonals           bool                      `yaml:"diagonals"`
	MaxCells            int                       `yaml:"max_cells"`
	Workers             int                       `yaml:"workers"`
	Footprint           geometry.FootprintOptions `yaml:"footprint"`
	Snap                gridgraph.SnapRadii       `yaml:"snap"`
	Bridges             doorgraph.BridgeParams    `yaml:"bridges"`
	CirculationKeywords []string                  `yaml:"circulation_keywords"`
}

// Compliance selects the rules table and the building properties.
type Compliance struct {
	Rules         string `yaml:"rules"`
	Typology      string `yaml:"typology"`
	Extinguishing bool   `yaml:"extinguishing"`
}

// Report shapes the CLI output.
type Report struct {
	// Top is the number of worst spaces listed; 0 lists none.
	Top int `yaml:"top"`

	// Diagnostics includes the diagnostic list in the output.
	Diagnostics bool `yaml:"diagnostics"`
}

// Config is the full CLI configuration.
type Config struct {
	Engine     Engine     `yaml:"engine"`
	Compliance Compliance `yaml:"compliance"`
	Report     Report     `yaml:"report"`
}

// Default mirrors evacuation.DefaultOptions.
func Default() Config {
	o := evacuation.DefaultOptions()

	return Config{
		Engine: Engine{
			Resolution:          o.Grid.Resolution,
			Diagonals:           o.Grid.Conn == gridgraph.Conn8,
			MaxCells:            o.Grid.MaxCells,
			Workers:             o.Workers,
			Footprint:           o.Footprint,
			Snap:                o.Snap,
			Bridges:             o.Bridges,
			CirculationKeywords: append([]string(nil), building.DefaultCirculationKeywords...),
		},
		Report: Report{Top: 10, Diagnostics: true},
	}
}

// Parse overlays the YAML document data on Default and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, cfg.Validate()
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return Parse(data)
}

// ApplyEnv overrides fields from EVACROUTE_* variables found by lookup
// (os.LookupEnv in the CLI):
//
//	EVACROUTE_RESOLUTION, EVACROUTE_DIAGONALS, EVACROUTE_MAX_CELLS,
//	EVACROUTE_WORKERS, EVACROUTE_RULES, EVACROUTE_TYPOLOGY,
//	EVACROUTE_EXTINGUISHING, EVACROUTE_TOP
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok
	}
	var errs []error
	parseFloat := func(name string, dst *float64) {
		if v, ok := get(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = f
		}
	}
	parseInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	parseBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	parseFloat("RESOLUTION", &c.Engine.Resolution)
	parseBool("DIAGONALS", &c.Engine.Diagonals)
	parseInt("MAX_CELLS", &c.Engine.MaxCells)
	parseInt("WORKERS", &c.Engine.Workers)
	if v, ok := get("RULES"); ok {
		c.Compliance.Rules = v
	}
	if v, ok := get("TYPOLOGY"); ok {
		c.Compliance.Typology = v
	}
	parseBool("EXTINGUISHING", &c.Compliance.Extinguishing)
	parseInt("TOP", &c.Report.Top)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, errors.Join(errs...))
	}

	return c.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	e := c.Engine
	switch {
	case !(e.Resolution > 0):
		return fmt.Errorf("%w: engine.resolution must be positive, got %v", ErrInvalidConfig, e.Resolution)
	case e.MaxCells < 0:
		return fmt.Errorf("%w: engine.max_cells must be >= 0, got %d", ErrInvalidConfig, e.MaxCells)
	case e.Snap.Primary < 0 || e.Snap.Fallback < 0:
		return fmt.Errorf("%w: engine.snap radii must be >= 0", ErrInvalidConfig)
	case c.Report.Top < 0:
		return fmt.Errorf("%w: report.top must be >= 0, got %d", ErrInvalidConfig, c.Report.Top)
	}
	if err := e.Footprint.Validate(); err != nil {
		return fmt.Errorf("%w: engine.footprint: %w", ErrInvalidConfig, err)
	}
	if err := e.Bridges.Validate(); err != nil {
		return fmt.Errorf("%w: engine.bridges: %w", ErrInvalidConfig, err)
	}

	return nil
}

// EngineOptions converts the engine settings to evacuation options, with
// warnings sent to logger.
func (c Config) EngineOptions(logger *log.Logger) []evacuation.Option {
	e := c.Engine

	return []evacuation.Option{
		evacuation.WithResolution(e.Resolution),
		evacuation.WithDiagonals(e.Diagonals),
		evacuation.WithMaxCells(e.MaxCells),
		evacuation.WithWorkers(e.Workers),
		evacuation.WithFootprint(e.Footprint),
		evacuation.WithSnapRadii(e.Snap),
		evacuation.WithBridgeParams(e.Bridges),
		evacuation.WithCirculationKeywords(e.CirculationKeywords),
		evacuation.WithLogger(logger),
	}
}
