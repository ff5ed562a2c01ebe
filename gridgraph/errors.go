package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNaNInf indicates a cell holds NaN or ±Inf.
	ErrNaNInf = errors.New("gridgraph: NaN or Inf cell value")
	// ErrUnknownConnectivity indicates an unrecognized connectivity name or value.
	ErrUnknownConnectivity = errors.New("gridgraph: unknown connectivity")
)
