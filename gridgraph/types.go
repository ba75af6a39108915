package gridgraph

import "fmt"

// MaxCost is the largest cost a single cell may carry.
const MaxCost = 9

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// Offset returns the point shifted by dRow rows and dCol columns.
// The result is not bounds-checked.
func (p Point) Offset(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular matrix of cell costs.
// rows and cols are fixed at construction; cells[r][c] holds the cost of (r,c).
type Grid struct {
	rows, cols int
	cells      [][]int8
}
