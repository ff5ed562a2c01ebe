package moran

import "github.com/katalvlaran/morangrid/gridgraph"

// ClusterType labels a cell relative to its neighbourhood and the global mean.
type ClusterType string

const (
	// HighHigh: value and neighbour mean both above the global mean.
	HighHigh ClusterType = "hh"
	// LowLow: value and neighbour mean both at or below the global mean.
	LowLow ClusterType = "ll"
	// HighLow: high value among low neighbours.
	HighLow ClusterType = "hl"
	// LowHigh: low value among high neighbours.
	LowHigh ClusterType = "lh"
	// NotSignificant: p-value at or above the significance threshold.
	NotSignificant ClusterType = "ns"
)

// GlobalResult is the grid-wide Moran's I with its significance.
type GlobalResult struct {
	MoransI   float64 `json:"morans_i"`
	ExpectedI float64 `json:"expected_i"`
	Variance  float64 `json:"variance"`
	ZScore    float64 `json:"z_score"`
	PValue    float64 `json:"p_value"`
}

// LocalResult is the LISA statistic of a single cell.
type LocalResult struct {
	LocalI  float64     `json:"local_i"`
	ZScore  float64     `json:"z_score"`
	PValue  float64     `json:"p_value"`
	Cluster ClusterType `json:"cluster_type"`
}

// ClusterCounts tallies local results per cluster type.
type ClusterCounts struct {
	HH int `json:"hh"`
	LL int `json:"ll"`
	HL int `json:"hl"`
	LH int `json:"lh"`
	NS int `json:"ns"`
}

// Report bundles the global and local statistics of one grid.
type Report struct {
	Rows         int                `json:"rows"`
	Cols         int                `json:"cols"`
	Connectivity string             `json:"connectivity"`
	Weights      WeightsSummary     `json:"weights"`
	Global       GlobalResult       `json:"global"`
	Local        [][]LocalResult    `json:"local"`
	Counts       ClusterCounts      `json:"counts"`
	Hotspots     []gridgraph.Region `json:"hotspots"`
}
