package gridgraph

import (
	"fmt"
	"math"
)

// Offsets as (dRow, dCol), ordered row-major so neighbour lists are stable.
var (
	queenOffsets = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookOffsets  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It copies the input into a flat row-major buffer, so later mutation of
// values does not affect the graph.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNaNInf on a non-finite cell
// and ErrUnknownConnectivity if opts.Conn is not Queen or Rook.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if !opts.Conn.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownConnectivity, opts.Conn)
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	flat := make([]float64, 0, rows*cols)
	for r, row := range values {
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: at (%d,%d)", ErrNaNInf, r, c)
			}
			flat = append(flat, v)
		}
	}

	return &GridGraph{
		Rows:    rows,
		Cols:    cols,
		Conn:    opts.Conn,
		values:  flat,
		offsets: offsetsFor(opts.Conn),
	}, nil
}

// From2D is shorthand for NewGridGraph with only the connectivity set.
func From2D(values [][]float64, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Conn: conn})
}

func offsetsFor(conn Connectivity) [][2]int {
	if conn == Rook {
		return rookOffsets
	}
	return queenOffsets
}

// Len returns the number of cells, Rows*Cols.
func (gg *GridGraph) Len() int {
	return len(gg.values)
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// Index maps (row,col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.Cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Cols, idx % gg.Cols
}

// Value returns the cell value at linear index idx.
func (gg *GridGraph) Value(idx int) float64 {
	return gg.values[idx]
}

// Flatten returns the cell values and their coordinates as index-aligned
// slices in row-major order. Both slices are fresh copies.
func (gg *GridGraph) Flatten() (values []float64, coords []Coord) {
	values = make([]float64, len(gg.values))
	copy(values, gg.values)
	coords = make([]Coord, len(gg.values))
	for i := range coords {
		r, c := gg.Coordinate(i)
		coords[i] = Coord{Row: r, Col: c}
	}
	return values, coords
}

// Samples returns one Sample per cell in canonical linear order.
func (gg *GridGraph) Samples() []Sample {
	out := make([]Sample, len(gg.values))
	for i, v := range gg.values {
		r, c := gg.Coordinate(i)
		out[i] = Sample{Value: v, Coord: Coord{Row: r, Col: c}}
	}
	return out
}
