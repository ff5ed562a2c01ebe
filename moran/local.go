package moran

import (
	"fmt"
	"math"

	"github.com/katalvlaran/morangrid/gridgraph"
	"github.com/katalvlaran/morangrid/normal"
	"github.com/montanaflynn/stats"
)

// lisaInput is the immutable state shared by every LISA chunk.
type lisaInput struct {
	values   []float64
	dev      []float64
	nm       gridgraph.NeighborMap
	mean     float64
	variance float64 // sample variance, divisor n−1
	n        float64
	alpha    float64
	dist     normal.Distribution
}

// Local computes the local Moran's I (LISA) of every cell and returns the
// results in the grid's row/column shape.
//
// For cell i with k = |N(i)| neighbours:
//
//	local_i   = d_i · Σ_{j∈N(i)} d_j / Var          (0 when Var = 0)
//	E[local]  = −1/(n−1)
//	Var_i     = max(0, k(n−b2)/(n−1) + k²(2b2−n)/((n−1)(n−2)) − [n>3]·k²/(n−1)²)
//	z_i       = (local_i − E[local])/√Var_i          (0 when Var_i = 0)
//
// Cells with p ≥ Significance are ns; otherwise the label compares the
// cell and its neighbour mean with the global mean (hh, ll, hl, lh).
//
// A single-cell grid yields one neutral result (0, 0, 1, ns).
func Local(grid [][]float64, opts ...Option) ([][]LocalResult, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.From2D(grid, o.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return local(gg, gg.Neighbors(), o)
}

// LocalFromGraph is Local over an already built GridGraph; the graph's own
// connectivity is used.
func LocalFromGraph(gg *gridgraph.GridGraph, opts ...Option) ([][]LocalResult, error) {
	if gg == nil {
		return nil, ErrNilGraph
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	return local(gg, gg.Neighbors(), o)
}

func local(gg *gridgraph.GridGraph, nm gridgraph.NeighborMap, o Options) ([][]LocalResult, error) {
	values, _ := gg.Flatten()
	n := len(values)

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	variance := 0.0
	if n > 1 {
		if variance, err = stats.SampleVariance(values); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	if variance == 0 {
		o.Logger.Debug().Int("cells", n).Msg("zero variance grid, local statistics degenerate")
	}

	in := &lisaInput{
		values:   values,
		dev:      deviations(values, mean),
		nm:       nm,
		mean:     mean,
		variance: variance,
		n:        float64(n),
		alpha:    o.Significance,
		dist:     o.Dist,
	}

	var flat []LocalResult
	if o.Parallel && n > o.ChunkSize {
		flat = computeChunked(in, n, o)
	} else {
		flat = in.compute(0, n)
	}

	return reshape(flat, gg.Rows, gg.Cols), nil
}

// compute evaluates cells [lo, hi) into a fresh slice.
func (in *lisaInput) compute(lo, hi int) []LocalResult {
	out := make([]LocalResult, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = in.cell(i)
	}
	return out
}

// cell evaluates the LISA statistic of cell i.
func (in *lisaInput) cell(i int) LocalResult {
	ns := in.nm[i]
	n := in.n

	weighted := 0.0
	for _, j := range ns {
		weighted += in.dev[j]
	}
	li := 0.0
	if in.variance > 0 {
		li = in.dev[i] * weighted / in.variance
	}

	expected := 0.0
	if n > 1 {
		expected = -1 / (n - 1)
	}
	lv := localVariance(n, float64(len(ns)))

	z := 0.0
	if lv > 0 {
		z = (li - expected) / math.Sqrt(lv)
	}
	p := in.dist.TwoTailedP(z)

	return LocalResult{
		LocalI:  round(li),
		ZScore:  round(z),
		PValue:  round(p),
		Cluster: in.classify(i, p),
	}
}

// localVariance is the finite-sample LISA variance for a cell with k
// neighbours, clamped at 0. Terms whose divisor vanishes (n ≤ 2) drop out.
func localVariance(n, k float64) float64 {
	if n <= 1 {
		return 0
	}
	term1 := k * (n - kurtosis) / (n - 1)
	term2 := 0.0
	if n > 2 {
		term2 = k * k * (2*kurtosis - n) / ((n - 1) * (n - 2))
	}
	correction := 0.0
	if n > 3 {
		correction = k * k / ((n - 1) * (n - 1))
	}
	return math.Max(0, term1+term2-correction)
}

// classify labels cell i given its unrounded p-value.
func (in *lisaInput) classify(i int, p float64) ClusterType {
	if p >= in.alpha {
		return NotSignificant
	}
	ns := in.nm[i]
	neighborMean := 0.0
	if len(ns) > 0 {
		for _, j := range ns {
			neighborMean += in.values[j]
		}
		neighborMean /= float64(len(ns))
	}
	high := in.values[i] > in.mean
	highNeighbors := neighborMean > in.mean
	switch {
	case high && highNeighbors:
		return HighHigh
	case !high && !highNeighbors:
		return LowLow
	case high:
		return HighLow
	default:
		return LowHigh
	}
}

// reshape views a row-major slice as rows×cols without copying.
func reshape(flat []LocalResult, rows, cols int) [][]LocalResult {
	out := make([][]LocalResult, rows)
	for r := range out {
		out[r] = flat[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return out
}
