package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownCell indicates a cell code that is not one of 0, 1, 2, a, b.
	ErrUnknownCell = errors.New("grid: unknown cell code")
	// ErrMalformedMap indicates a map file that cannot be decoded.
	ErrMalformedMap = errors.New("grid: malformed map")
)
