// Package morangrid measures spatial autocorrelation on rasters: does a
// cell look like its neighbours (clustering), unlike them (dispersion), or
// neither?
//
// 🚀 What is morangrid?
//
//	A small, deterministic library built around Moran's I:
//		• gridgraph: flatten a rectangular grid, build Queen/Rook neighbour maps
//		• normal:    z-score → p-value via a closed-form erf approximation
//		• moran:     global Moran's I and per-cell LISA with cluster labels
//
// ✨ Why morangrid?
//
//   - Sparse by construction: adjacency comes from coordinate arithmetic,
//     O(R×C), never an n×n weights matrix.
//   - Exact finite-sample variance from S0/S1/S2, with documented fallbacks
//     for tiny grids and silent 0.0 results for degenerate divisors.
//   - Parallel LISA over contiguous chunks, bit-identical to the
//     sequential path.
//
// Quick ASCII example:
//
//	1 1 0 0 0
//	1 1 0 0 0
//	0 0 1 1 1      Queen: I = 0.386663, E[I] = −0.041667
//	0 0 1 1 1
//	0 0 1 1 1
//
// See examples/ for a runnable hotspot report.
package morangrid
