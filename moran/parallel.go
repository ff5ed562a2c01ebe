package moran

import "golang.org/x/sync/errgroup"

// chunkRange is a contiguous half-open index range [lo, hi).
type chunkRange struct {
	lo, hi int
}

// chunks partitions [0, n) into contiguous ranges of at most size cells.
func chunks(n, size int) []chunkRange {
	out := make([]chunkRange, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		out = append(out, chunkRange{lo: lo, hi: min(lo+size, n)})
	}
	return out
}

// computeChunked fans the chunks out over at most o.Workers goroutines and
// joins the per-chunk slices in index order. Chunks share only read-only
// input; each writes its own slot of parts.
func computeChunked(in *lisaInput, n int, o Options) []LocalResult {
	ranges := chunks(n, o.ChunkSize)
	parts := make([][]LocalResult, len(ranges))

	o.Logger.Debug().
		Int("cells", n).
		Int("chunks", len(ranges)).
		Int("chunk_size", o.ChunkSize).
		Int("workers", o.Workers).
		Msg("parallel lisa fan-out")

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for k, cr := range ranges {
		k, cr := k, cr
		g.Go(func() error {
			parts[k] = in.compute(cr.lo, cr.hi)
			return nil
		})
	}
	// Tasks never fail; Wait is the join barrier.
	_ = g.Wait()

	flat := make([]LocalResult, 0, n)
	for _, p := range parts {
		flat = append(flat, p...)
	}
	return flat
}
