package evacuation

import (
	"errors"
	"io"
	"log"

	"github.com/katalvlaran/evacroute/building"
	"github.com/katalvlaran/evacroute/doorgraph"
	"github.com/katalvlaran/evacroute/geometry"
	"github.com/katalvlaran/evacroute/gridgraph"
)

// Sentinel errors for Run.
var (
	// ErrNilProvider indicates a nil model provider.
	ErrNilProvider = errors.New("evacuation: model provider is nil")

	// ErrNoSpaces indicates a model without spaces: nothing to compute.
	ErrNoSpaces = errors.New("evacuation: model has no spaces")

	// ErrNoExitDoors indicates a model without exit doors: nothing to compute.
	ErrNoExitDoors = errors.New("evacuation: model has no exit doors")

	// ErrBadOptions indicates an invalid option value.
	ErrBadOptions = errors.New("evacuation: invalid options")
)

// Blocked reasons reported in SpaceResult.BlockedReason.
const (
	ReasonNoMesh           = "no mesh"
	ReasonNoDoors          = "no doors"
	ReasonNoReachableDoors = "no exit-reachable doors"
	ReasonTooLarge         = "computation too large"
)

// Options configures Run.
type Options struct {
	// Grid sets resolution (metres), connectivity and the per-space cell
	// budget.
	Grid gridgraph.GridOptions

	// Footprint sets the floor extraction tolerances.
	Footprint geometry.FootprintOptions

	// Snap sets the door-cell ring search radii, in cells.
	Snap gridgraph.SnapRadii

	// Bridges tunes the level bridge heuristic.
	Bridges doorgraph.BridgeParams

	// CirculationKeywords mark landing candidates for level bridges.
	CirculationKeywords []string

	// Workers caps the worker pool; <= 0 means GOMAXPROCS.
	Workers int

	// Logger receives warnings. Never nil after DefaultOptions.
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the engine defaults:
//   - Grid:       0.20 m cells, diagonals on, 4,000,000 cells per space.
//   - Footprint:  z tolerance 0.02 m, normal tolerance 0.20.
//   - Snap:       10 cells, then 25.
//   - Bridges:    1.4 per vertical metre, 0.2 horizontal penalty, K ≤ 4.
//   - Keywords:   building.DefaultCirculationKeywords.
//   - Workers:    GOMAXPROCS.
//   - Logger:     discards everything.
func DefaultOptions() Options {
	return Options{
		Grid:                gridgraph.DefaultGridOptions(),
		Footprint:           geometry.DefaultFootprintOptions(),
		Snap:                gridgraph.DefaultSnapRadii(),
		Bridges:             doorgraph.DefaultBridgeParams(),
		CirculationKeywords: building.DefaultCirculationKeywords,
		Logger:              log.New(io.Discard, "", 0),
	}
}

// WithResolution sets the grid cell edge length in metres.
func WithResolution(res float64) Option {
	return func(o *Options) { o.Grid.Resolution = res }
}

// WithDiagonals toggles 8-connected movement.
func WithDiagonals(on bool) Option {
	return func(o *Options) {
		o.Grid.Conn = gridgraph.Conn4
		if on {
			o.Grid.Conn = gridgraph.Conn8
		}
	}
}

// WithMaxCells sets the per-space cell budget; 0 disables it.
func WithMaxCells(n int) Option {
	return func(o *Options) { o.Grid.MaxCells = n }
}

// WithFootprint replaces the floor extraction tolerances.
func WithFootprint(f geometry.FootprintOptions) Option {
	return func(o *Options) { o.Footprint = f }
}

// WithSnapRadii replaces the door-cell search radii.
func WithSnapRadii(r gridgraph.SnapRadii) Option {
	return func(o *Options) { o.Snap = r }
}

// WithBridgeParams replaces the level bridge parameters.
func WithBridgeParams(p doorgraph.BridgeParams) Option {
	return func(o *Options) { o.Bridges = p }
}

// WithCirculationKeywords replaces the circulation keyword list.
func WithCirculationKeywords(kw []string) Option {
	return func(o *Options) { o.CirculationKeywords = append([]string(nil), kw...) }
}

// WithWorkers caps the worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the warning logger; nil restores the discard logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		o.Logger = l
	}
}
