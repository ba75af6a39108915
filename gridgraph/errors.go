package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is the umbrella for every input rejected at construction.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrBadCost indicates a cell cost outside 0..9.
	ErrBadCost = fmt.Errorf("%w: cell cost must be in [0,9]", ErrMalformedGrid)
	// ErrOutOfBounds indicates a cell lookup outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
)
