package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a digit grid: one line per row, one ASCII digit per cell.
// Trailing carriage returns are stripped and blank lines at the end of the
// input are ignored. Any other character yields ErrMalformedGrid naming its
// line and column (both 1-based).
// Complexity: O(R×C).
func Parse(r io.Reader) (*Grid, error) {
	var (
		values [][]int
		blank  int // blank lines seen since the last row
		line   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		if blank > 0 && len(values) > 0 {
			return nil, fmt.Errorf("%w: blank line inside grid before line %d", ErrMalformedGrid, line)
		}
		blank = 0
		row := make([]int, len(text))
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not a digit", ErrMalformedGrid, line, i+1, ch)
			}
			row[i] = int(ch - '0')
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return New(values)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
