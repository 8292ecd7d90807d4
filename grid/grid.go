package grid

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later traversal never touches the caller's rows.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// Filled returns a width×height grid with every cell set to value.
func Filled(width, height, value int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, height)
	for y := range cells {
		row := make([]int, width)
		for x := range row {
			row[x] = value
		}
		cells[y] = row
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// Validate reports whether g can be indexed safely.
// It returns an *InvalidGridError for a nil grid, degenerate dimensions,
// or rows that disagree with Width and Height.
func (g *Grid) Validate() error {
	if g == nil {
		return &InvalidGridError{Reason: "nil grid"}
	}
	if g.Width < 1 || g.Height < 1 {
		return &InvalidGridError{Width: g.Width, Height: g.Height, Reason: "zero width or height"}
	}
	if len(g.Cells) != g.Height {
		return &InvalidGridError{Width: g.Width, Height: g.Height, Reason: "row count does not match height"}
	}
	for _, row := range g.Cells {
		if len(row) != g.Width {
			return &InvalidGridError{Width: g.Width, Height: g.Height, Reason: "row length does not match width"}
		}
	}

	return nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the value at (x,y). The caller must check InBounds first.
func (g *Grid) At(x, y int) int {
	return g.Cells[y][x]
}

// Set overwrites the value at (x,y). The caller must check InBounds first.
func (g *Grid) Set(x, y, v int) {
	g.Cells[y][x] = v
}

// Count returns the number of cells equal to v.
// Complexity: O(W×H).
func (g *Grid) Count(v int) int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c == v {
				n++
			}
		}
	}
	return n
}

// BlindScan returns the first cell equal to v, scanning rows top to bottom
// and each row left to right. The result is reported as (column, row).
// When no cell matches it returns (0, 0, false).
// Complexity: O(W×H).
func (g *Grid) BlindScan(v int) (x, y int, ok bool) {
	for y, row := range g.Cells {
		for x, c := range row {
			if c == v {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]int, len(g.Cells))
	for y, row := range g.Cells {
		cells[y] = append([]int(nil), row...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
