// Package moran computes Moran's I spatial autocorrelation over a grid of
// numeric observations: one global index for the whole grid and a local
// index (LISA) for every cell.
//
// 🚀 What
//
//   - Global: Moran's I, its expectation −1/(n−1), the finite-sample
//     variance derived from the weight summaries S0/S1/S2 (kurtosis b2 = 3),
//     the z-score and a two-tailed p-value.
//   - Local: per-cell local I, z-score, p-value and a cluster label
//     (hh, ll, hl, lh or ns) relative to the global mean.
//   - Analyze: both statistics plus cluster counts and contiguous hotspot
//     regions, ready to encode as JSON.
//
// Weights
//
//	Only binary adjacency is modelled: w_ij = 1 when j is a Queen or Rook
//	neighbour of i (see package gridgraph), 0 otherwise. The neighbour map is
//	a sparse adjacency list, never a dense n×n matrix.
//
// Degenerate inputs
//
//	Division by a zero or negative quantity (sum of squared deviations,
//	variance, local variance, S0) yields 0.0 for the dependent statistic
//	instead of an error. A uniform grid therefore has I = 0. Grids with
//	n ≤ 3 fall back to variance 2/((n−1)·S0).
//
// Execution
//
//	Local statistics may be evaluated over contiguous index chunks in
//	parallel (errgroup bounded by Workers). Each chunk reads only immutable
//	inputs and returns its own slice; slices are joined in index order, so
//	sequential and parallel runs are bit-identical.
//
// Options
//
//   - WithConnectivity(gridgraph.Queen | gridgraph.Rook): default Queen.
//   - WithParallel(bool): default true.
//   - WithChunkSize(int): default 1000; parallel only when n > ChunkSize.
//   - WithWorkers(int): default runtime.GOMAXPROCS(0).
//   - WithSignificance(float64): cluster threshold, default 0.05.
//   - WithExactNormal(): gonum's exact CDF instead of the erf approximation.
//   - WithLogger(zerolog.Logger): debug events, silent by default.
//
// Errors
//
//   - ErrInvalidInput wraps every input failure (empty or ragged grid,
//     non-finite cell, too few cells) together with the specific sentinel.
//   - ErrOptionViolation reports an invalid Option value.
//
// All reported statistics are rounded to 6 decimal places.
package moran
