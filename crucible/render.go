package crucible

import (
	"strings"

	"github.com/cbackas/advent-of-code/gridgraph"
)

// Render draws path over the digits of g, replacing every entered block with
// an arrow for the direction the crucible entered it.
func Render(g *gridgraph.Grid, path []State) string {
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	for _, st := range path {
		if st.Run.Count == 0 || !g.InBounds(st.Pos) {
			continue
		}
		rows[st.Pos.Row][st.Pos.Col] = st.Run.Dir.Arrow()
	}

	var sb strings.Builder
	for _, r := range rows {
		sb.Write(r)
		sb.WriteByte('\n')
	}
	return sb.String()
}
