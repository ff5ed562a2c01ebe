package moran

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/katalvlaran/morangrid/gridgraph"
)

// Analyze builds the grid graph and neighbour map once and runs both
// engines over them. Counts and Hotspots are derived from the local results.
func Analyze(grid [][]float64, opts ...Option) (*Report, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.From2D(grid, o.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	nm := gg.Neighbors()

	g, err := global(gg, nm, o)
	if err != nil {
		return nil, err
	}
	l, err := local(gg, nm, o)
	if err != nil {
		return nil, err
	}

	return &Report{
		Rows:         gg.Rows,
		Cols:         gg.Cols,
		Connectivity: gg.Conn.String(),
		Weights:      Summarize(nm),
		Global:       g,
		Local:        l,
		Counts:       CountClusters(l),
		Hotspots:     Hotspots(gg, l),
	}, nil
}

// CountClusters tallies local results by cluster type.
func CountClusters(local [][]LocalResult) ClusterCounts {
	var c ClusterCounts
	for _, row := range local {
		for _, r := range row {
			switch r.Cluster {
			case HighHigh:
				c.HH++
			case LowLow:
				c.LL++
			case HighLow:
				c.HL++
			case LowHigh:
				c.LH++
			default:
				c.NS++
			}
		}
	}
	return c
}

// Hotspots groups significant cells into contiguous regions of one cluster
// type under gg's connectivity. ns cells are background. local must have
// gg's shape.
func Hotspots(gg *gridgraph.GridGraph, local [][]LocalResult) []gridgraph.Region {
	return gg.Regions(func(idx int) (string, bool) {
		r, c := gg.Coordinate(idx)
		ct := local[r][c].Cluster
		return string(ct), ct != NotSignificant && ct != ""
	})
}

// JSON encodes the report.
func (r *Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}
