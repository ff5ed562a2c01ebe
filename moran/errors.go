package moran

import "errors"

// Sentinel errors for moran operations. Grid validation failures from
// gridgraph are wrapped together with ErrInvalidInput, so callers may match
// either errors.Is(err, ErrInvalidInput) or the specific gridgraph sentinel.
var (
	// ErrInvalidInput is the umbrella for unusable grids; no partial result accompanies it.
	ErrInvalidInput = errors.New("moran: invalid input")

	// ErrTooFewCells indicates the grid has fewer cells than the statistic needs.
	ErrTooFewCells = errors.New("moran: too few cells")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("moran: invalid option supplied")

	// ErrNilGraph is returned when a nil *gridgraph.GridGraph is passed.
	ErrNilGraph = errors.New("moran: grid graph is nil")
)
