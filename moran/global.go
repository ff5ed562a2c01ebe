package moran

import (
	"fmt"
	"math"

	"github.com/katalvlaran/morangrid/gridgraph"
	"github.com/montanaflynn/stats"
)

// Global computes Moran's I for the whole grid.
//
// Steps:
//  1. mean of all cells; deviations d_i = x_i − mean.
//  2. numerator   = Σ_i Σ_{j∈N(i)} d_i·d_j.
//  3. denominator = Σ_i d_i².
//  4. I = (n/S0)·(numerator/denominator), or 0 when S0 or denominator is 0.
//  5. E[I] = −1/(n−1).
//  6. Var[I] from S0/S1/S2 with b2 = 3, falling back to 2/((n−1)·S0)
//     when (n−1)(n−2)(n−3)·S0² = 0.
//  7. z = (I − E[I])/√Var[I] when Var[I] > 0, else 0; two-tailed p.
//
// Errors: ErrInvalidInput (with the gridgraph sentinel) for empty, ragged or
// non-finite grids, ErrInvalidInput+ErrTooFewCells for n < 2,
// ErrOptionViolation for bad options.
func Global(grid [][]float64, opts ...Option) (GlobalResult, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return GlobalResult{}, err
	}
	gg, err := gridgraph.From2D(grid, o.Connectivity)
	if err != nil {
		return GlobalResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return global(gg, gg.Neighbors(), o)
}

// GlobalFromGraph is Global over an already built GridGraph; the graph's
// own connectivity is used.
func GlobalFromGraph(gg *gridgraph.GridGraph, opts ...Option) (GlobalResult, error) {
	if gg == nil {
		return GlobalResult{}, ErrNilGraph
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return GlobalResult{}, err
	}
	return global(gg, gg.Neighbors(), o)
}

func global(gg *gridgraph.GridGraph, nm gridgraph.NeighborMap, o Options) (GlobalResult, error) {
	values, _ := gg.Flatten()
	n := len(values)
	if n < 2 {
		return GlobalResult{}, fmt.Errorf("%w: %w: global statistic needs n >= 2, got %d", ErrInvalidInput, ErrTooFewCells, n)
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return GlobalResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	dev := deviations(values, mean)

	var numerator, denominator float64
	for i, ns := range nm {
		for _, j := range ns {
			numerator += dev[i] * dev[j]
		}
	}
	for _, d := range dev {
		denominator += d * d
	}

	w := Summarize(nm)
	fn := float64(n)

	moransI := 0.0
	if w.S0 > 0 && denominator > 0 {
		moransI = (fn / w.S0) * (numerator / denominator)
	}
	expected := -1 / (fn - 1)
	variance := globalVariance(fn, w)

	z := 0.0
	if variance > 0 {
		z = (moransI - expected) / math.Sqrt(variance)
	}
	p := o.Dist.TwoTailedP(z)

	o.Logger.Debug().
		Int("rows", gg.Rows).Int("cols", gg.Cols).
		Str("connectivity", gg.Conn.String()).
		Float64("s0", w.S0).Float64("s1", w.S1).Float64("s2", w.S2).
		Bool("degenerate", denominator == 0).
		Msg("global moran's i")

	return GlobalResult{
		MoransI:   round(moransI),
		ExpectedI: round(expected),
		Variance:  round(variance),
		ZScore:    round(z),
		PValue:    round(p),
	}, nil
}

// globalVariance is the finite-sample variance of I under b2 = 3.
func globalVariance(n float64, w WeightsSummary) float64 {
	s0sq := w.S0 * w.S0
	den := (n - 1) * (n - 2) * (n - 3) * s0sq
	if den == 0 {
		if w.S0 <= 0 {
			return 0
		}
		return 2 / ((n - 1) * w.S0)
	}
	num := n*((n*n-3*n+3)*w.S1-n*w.S2+3*s0sq) -
		kurtosis*((n*n-n)*w.S1-2*n*w.S2+6*s0sq)
	return num / den
}

func deviations(values []float64, mean float64) []float64 {
	dev := make([]float64, len(values))
	for i, v := range values {
		dev[i] = v - mean
	}
	return dev
}

// round rounds half away from zero to the reporting precision.
func round(x float64) float64 {
	r, err := stats.Round(x, decimals)
	if err != nil {
		return x
	}
	return r
}
