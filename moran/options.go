package moran

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/morangrid/gridgraph"
	"github.com/katalvlaran/morangrid/normal"
	"github.com/rs/zerolog"
)

// Defaults.
const (
	// DefaultChunkSize is the number of cells per parallel LISA task.
	DefaultChunkSize = 1000

	// DefaultSignificance is the p-value threshold below which a cell gets
	// a cluster label other than ns.
	DefaultSignificance = 0.05

	// DefaultParallel enables chunked evaluation for large grids.
	DefaultParallel = true
)

// kurtosis is the assumed-normal b2 used by both variance formulas.
const kurtosis = 3.0

// decimals is the rounding precision of every reported statistic.
const decimals = 6

// Option configures Global, Local and Analyze via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// operation is invoked.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	// Connectivity selects the neighbour rule. Ignored by the *FromGraph
	// entry points, which use the graph's own Conn.
	Connectivity gridgraph.Connectivity

	// Parallel enables chunked evaluation of local statistics.
	Parallel bool

	// ChunkSize is the number of cells per task; parallel evaluation is
	// engaged only when Parallel is set and n > ChunkSize.
	ChunkSize int

	// Workers bounds the number of chunks evaluated concurrently.
	Workers int

	// Significance is the p-value cut-off for cluster labels.
	Significance float64

	// Dist converts z-scores to p-values.
	Dist normal.Distribution

	// Logger receives debug events.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Queen connectivity
//   - Parallel=true, ChunkSize=1000, Workers=GOMAXPROCS
//   - Significance=0.05
//   - the erf-approximation normal distribution
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		Connectivity: gridgraph.Queen,
		Parallel:     DefaultParallel,
		ChunkSize:    DefaultChunkSize,
		Workers:      runtime.GOMAXPROCS(0),
		Significance: DefaultSignificance,
		Dist:         normal.Approx{},
		Logger:       zerolog.Nop(),
	}
}

// WithConnectivity selects Queen or Rook adjacency.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: connectivity %v", ErrOptionViolation, c)
			return
		}
		o.Connectivity = c
	}
}

// WithParallel toggles chunked parallel evaluation of local statistics.
func WithParallel(on bool) Option {
	return func(o *Options) {
		o.Parallel = on
	}
}

// WithChunkSize sets the cells per parallel task. size must be > 0.
func WithChunkSize(size int) Option {
	return func(o *Options) {
		if size <= 0 {
			o.err = fmt.Errorf("%w: ChunkSize must be positive (%d)", ErrOptionViolation, size)
			return
		}
		o.ChunkSize = size
	}
}

// WithWorkers bounds concurrent chunk tasks. n must be > 0.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSignificance sets the cluster-label threshold, 0 < alpha < 1.
func WithSignificance(alpha float64) Option {
	return func(o *Options) {
		if !(alpha > 0 && alpha < 1) {
			o.err = fmt.Errorf("%w: Significance must be in (0,1) (%v)", ErrOptionViolation, alpha)
			return
		}
		o.Significance = alpha
	}
}

// WithExactNormal uses gonum's exact normal CDF for p-values.
func WithExactNormal() Option {
	return func(o *Options) {
		o.Dist = normal.Exact{}
	}
}

// WithLogger routes debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// gatherOptions applies opts over the defaults and returns the first
// recorded violation, if any.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	return o, nil
}
