// Package gridgraph models a rectangular grid of per-cell entry costs as the
// vertex set of an implicit graph.
//
// What:
//
//   - Grid wraps a rectangular matrix of costs in 0..9. It is immutable once
//     built and safe to share between goroutines without locking.
//   - Cells are addressed by Point{Row, Col}; Row grows downward, Col grows
//     to the right. The start cell is the top-left corner and the goal cell
//     is the bottom-right corner.
//   - Parse reads the textual form: one line per row, one ASCII digit per cell.
//
// Why:
//
//   - Searches that need more than a position per vertex (direction, run
//     length, fuel, ...) build their own state on top of Grid and ask it only
//     for bounds and costs.
//
// Complexity:
//
//   - New, Parse:     O(R×C) time and memory (deep copy).
//   - Cost, InBounds: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: empty, ragged, or non-digit input. ErrEmptyGrid,
//     ErrNonRectangular and ErrBadCost all wrap it.
//   - ErrOutOfBounds: a lookup outside the grid extents.
package gridgraph
