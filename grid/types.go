package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and validation.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidGrid is matched by every *InvalidGridError.
	ErrInvalidGrid = errors.New("grid: invalid grid")
)

// InvalidGridError reports a Grid that cannot be traversed.
type InvalidGridError struct {
	Width, Height int
	Reason        string
}

// Error implements error.
func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("grid: invalid %dx%d grid: %s", e.Width, e.Height, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidGrid) match.
func (e *InvalidGridError) Is(target error) bool {
	return target == ErrInvalidGrid
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Grid is a rectangular grid of integer cell values.
// Cells[y][x] holds the value at column x, row y.
//
// A Grid is not safe for concurrent use; a traversal owns and mutates it.
type Grid struct {
	Width, Height int
	Cells         [][]int
}
