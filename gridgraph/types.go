package gridgraph

import (
	"fmt"
	"strings"
)

// Connectivity selects the neighbour rule: Queen (8 cells) or Rook (4 cells).
type Connectivity int

const (
	// Queen uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Queen Connectivity = iota
	// Rook uses 4-directional adjacency: N, S, W, E.
	Rook
)

// String returns the lowercase name of the connectivity mode.
func (c Connectivity) String() string {
	switch c {
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	default:
		return fmt.Sprintf("connectivity(%d)", int(c))
	}
}

// Valid reports whether c is one of the supported modes.
func (c Connectivity) Valid() bool {
	return c == Queen || c == Rook
}

// ParseConnectivity maps "queen" or "rook" (case-insensitive) to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "queen":
		return Queen, nil
	case "rook":
		return Rook, nil
	default:
		return Queen, fmt.Errorf("%w: %q", ErrUnknownConnectivity, s)
	}
}

// Coord is a (row, col) position within the grid.
type Coord struct {
	Row, Col int
}

// Sample pairs a cell value with its coordinate.
type Sample struct {
	Value float64
	Coord Coord
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Queen.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Queen}
}

// GridGraph treats a 2D numeric grid as a graph. It is immutable once built.
// Rows and Cols define dimensions; values holds the cells in row-major order.
// offsets is precomputed from Conn for adjacency lookups.
type GridGraph struct {
	Rows, Cols int
	Conn       Connectivity
	values     []float64
	offsets    [][2]int
}

// NeighborMap maps a linear cell index to the linear indices of its neighbours.
// Neighbour order is fixed by the connectivity offsets, so it is reproducible.
type NeighborMap [][]int

// Region is a contiguous group of cells sharing one label.
type Region struct {
	Label string `json:"label"`
	Cells []int  `json:"cells"`
}
