package moran_test

import (
	"testing"

	"github.com/katalvlaran/morangrid/moran"
)

// benchmarkLocal runs Local on a 300×300 grid with the given options.
func benchmarkLocal(b *testing.B, opts ...moran.Option) {
	grid := randomGrid(300, 300, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := moran.Local(grid, opts...); err != nil {
			b.Fatalf("Local failed: %v", err)
		}
	}
}

func BenchmarkLocal_Sequential(b *testing.B) {
	benchmarkLocal(b, moran.WithParallel(false))
}

func BenchmarkLocal_Parallel(b *testing.B) {
	benchmarkLocal(b, moran.WithChunkSize(1000))
}

func BenchmarkGlobal(b *testing.B) {
	grid := randomGrid(300, 300, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := moran.Global(grid); err != nil {
			b.Fatalf("Global failed: %v", err)
		}
	}
}
