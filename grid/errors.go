package grid

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrDecode indicates the source bitmap could not be read or decoded.
	ErrDecode = errors.New("grid: cannot decode bitmap")
)
