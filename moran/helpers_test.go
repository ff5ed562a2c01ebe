package moran_test

import (
	"math"
	"math/rand"
)

// diagonalBlocks builds the 5×5 fixture: 1s where row<2 && col<2 or
// row≥2 && col≥2, 0 elsewhere.
func diagonalBlocks() [][]float64 {
	grid := make([][]float64, 5)
	for r := range grid {
		grid[r] = make([]float64, 5)
		for c := range grid[r] {
			if (r < 2 && c < 2) || (r >= 2 && c >= 2) {
				grid[r][c] = 1
			}
		}
	}
	return grid
}

// checkerboard builds an n×n alternating 0/1 grid.
func checkerboard(n int) [][]float64 {
	grid := make([][]float64, n)
	for r := range grid {
		grid[r] = make([]float64, n)
		for c := range grid[r] {
			grid[r][c] = float64((r + c) % 2)
		}
	}
	return grid
}

// uniform builds a rows×cols grid filled with v.
func uniform(rows, cols int, v float64) [][]float64 {
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for c := range grid[r] {
			grid[r][c] = v
		}
	}
	return grid
}

// randomGrid builds a deterministic pseudo-random grid.
func randomGrid(rows, cols int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for c := range grid[r] {
			grid[r][c] = rng.NormFloat64()*3 + float64(r)
		}
	}
	return grid
}

// round6 mirrors the 6-decimal reporting precision.
func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
