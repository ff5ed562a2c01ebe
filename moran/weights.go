package moran

import "github.com/katalvlaran/morangrid/gridgraph"

// WeightsSummary holds the summary statistics of a binary weights matrix.
//
//	S0 = Σ_i Σ_j w_ij
//	S1 = ½ Σ_i Σ_j (w_ij + w_ji)²
//	S2 = Σ_i (row_sum_i)² + Σ_j (col_sum_j)²
//
// For the symmetric maps built by gridgraph, S1 = 2·S0 and S2 = 2·Σ deg².
type WeightsSummary struct {
	S0 float64 `json:"s0"`
	S1 float64 `json:"s1"`
	S2 float64 `json:"s2"`
}

// Summarize computes S0, S1 and S2 of nm in a single pass over its edges.
// It does not assume symmetry: an edge i→j whose reverse is missing adds 1
// to S1 (both ordered pairs contribute ½), a mutual edge adds 2 per direction.
// Complexity: O(n·d²).
func Summarize(nm gridgraph.NeighborMap) WeightsSummary {
	colSums := make([]int, len(nm))
	var s0, s1, rowSq int
	for i, ns := range nm {
		deg := len(ns)
		s0 += deg
		rowSq += deg * deg
		for _, j := range ns {
			colSums[j]++
			if hasNeighbor(nm[j], i) {
				s1 += 2
			} else {
				s1++
			}
		}
	}
	colSq := 0
	for _, c := range colSums {
		colSq += c * c
	}
	return WeightsSummary{
		S0: float64(s0),
		S1: float64(s1),
		S2: float64(rowSq + colSq),
	}
}

func hasNeighbor(ns []int, x int) bool {
	for _, v := range ns {
		if v == x {
			return true
		}
	}
	return false
}
