package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/morangrid/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged
// or non-finite inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]float64
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]float64{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NaN", [][]float64{{1, math.NaN()}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNaNInf},
		{"Inf", [][]float64{{math.Inf(-1)}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNaNInf},
		{"BadConn", [][]float64{{1}}, gridgraph.GridOptions{Conn: gridgraph.Connectivity(7)}, gridgraph.ErrUnknownConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_CopiesInput ensures later mutation of the source grid
// does not leak into the graph.
func TestNewGridGraph_CopiesInput(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	gg, err := gridgraph.From2D(grid, gridgraph.Queen)
	require.NoError(t, err)

	grid[0][0] = 99
	assert.Equal(t, 1.0, gg.Value(0))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]float64{{0, 1, 0}, {1, 0, 1}}, gridgraph.Rook)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, gg.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
	for _, rc := range [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, gg.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
	}
}

//----------------------------------------------------------------------------//
// Flatten Tests
//----------------------------------------------------------------------------//

// TestFlatten_RowMajor verifies idx = row*cols + col and index alignment.
func TestFlatten_RowMajor(t *testing.T) {
	grid := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Queen)
	require.NoError(t, err)

	values, coords := gg.Flatten()
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, values)
	require.Len(t, coords, 6)
	for i, c := range coords {
		assert.Equal(t, i, gg.Index(c.Row, c.Col))
		assert.Equal(t, grid[c.Row][c.Col], values[i])
		r, col := gg.Coordinate(i)
		assert.Equal(t, gridgraph.Coord{Row: r, Col: col}, c)
	}

	samples := gg.Samples()
	require.Len(t, samples, 6)
	assert.Equal(t, gridgraph.Sample{Value: 6, Coord: gridgraph.Coord{Row: 1, Col: 2}}, samples[5])
}

// TestFlatten_SingleCell accepts a 1×1 grid; degenerate n is handled downstream.
func TestFlatten_SingleCell(t *testing.T) {
	gg, err := gridgraph.From2D([][]float64{{7}}, gridgraph.Queen)
	require.NoError(t, err)
	values, coords := gg.Flatten()
	assert.Equal(t, []float64{7}, values)
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 0}}, coords)
}

//----------------------------------------------------------------------------//
// Connectivity Tests
//----------------------------------------------------------------------------//

func TestParseConnectivity(t *testing.T) {
	c, err := gridgraph.ParseConnectivity("Queen")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Queen, c)

	c, err = gridgraph.ParseConnectivity(" rook ")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Rook, c)
	assert.Equal(t, "rook", c.String())

	_, err = gridgraph.ParseConnectivity("bishop")
	assert.ErrorIs(t, err, gridgraph.ErrUnknownConnectivity)
}
