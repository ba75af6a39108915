package gridgraph

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular matrix of costs.
// It deep-copies the input so later mutation of values has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadCost if a cost
// lies outside [0, MaxCost].
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int8, h)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells[r] = make([]int8, w)
		for c, v := range row {
			if v < 0 || v > MaxCost {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrBadCost, r, c, v)
			}
			cells[r][c] = int8(v)
		}
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cost returns the cost of entering cell p.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) Cost(p Point) (int64, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}

	return int64(g.cells[p.Row][p.Col]), nil
}

// Start is the top-left cell.
func (g *Grid) Start() Point { return Point{} }

// Goal is the bottom-right cell.
func (g *Grid) Goal() Point { return Point{Row: g.rows - 1, Col: g.cols - 1} }

// String renders the grid in its textual form, one digit line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteByte('0' + byte(g.cells[r][c]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
