package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbackas/advent-of-code/gridgraph"
)

func TestParse_RoundTrip(t *testing.T) {
	const in = "2413\n3215\n3255\n"
	g, err := gridgraph.ParseString(in)
	require.NoError(t, err)

	rows, cols := g.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, in, g.String())
}

func TestParse_Tolerance(t *testing.T) {
	cases := map[string]string{
		"CRLF":           "12\r\n34\r\n",
		"NoFinalNewline": "12\n34",
		"TrailingBlank":  "12\n34\n\n\n",
		"LeadingBlank":   "\n12\n34\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := gridgraph.ParseString(in)
			require.NoError(t, err)
			assert.Equal(t, "12\n34\n", g.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		msg  string
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid, ""},
		{"OnlyBlank", "\n\n", gridgraph.ErrEmptyGrid, ""},
		{"Ragged", "123\n12\n", gridgraph.ErrNonRectangular, "row 1"},
		{"Letter", "12\n3x\n", gridgraph.ErrMalformedGrid, "line 2 column 2"},
		{"GapInside", "12\n\n34\n", gridgraph.ErrMalformedGrid, "blank line"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}
