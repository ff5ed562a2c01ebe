// Package gridgraph treats a rectangular grid of real-valued observations
// as a graph of spatial neighbours.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid (a raster or image).
//   - Flatten exposes the cells as index-aligned values and coordinates in
//     row-major order: idx = row*Cols + col.
//   - Neighbors derives a NeighborMap (sparse adjacency list keyed by linear
//     index) from coordinate arithmetic, never from a pairwise distance scan.
//   - Regions groups cells sharing a label into contiguous components.
//
// Connectivity:
//
//   - Queen: 8-neighbourhood (axis-aligned and diagonal cells). Default.
//   - Rook:  4-neighbourhood (axis-aligned cells only).
//
// Edge and corner cells simply have fewer neighbours; there is no wrap-around
// and no cell is its own neighbour. Both modes are symmetric: j ∈ N(i) ⇔ i ∈ N(j).
// All implied weights are binary (1.0).
//
// Complexity:
//
//   - NewGridGraph: O(R×C) time and memory.
//   - Neighbors:    O(R×C×d), Memory: O(R×C×d) (d = 4 or 8).
//   - Regions:      O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNaNInf: a cell is NaN or ±Inf.
//   - ErrUnknownConnectivity: ParseConnectivity got an unknown name.
package gridgraph
