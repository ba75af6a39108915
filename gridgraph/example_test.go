package gridgraph_test

import (
	"fmt"

	"github.com/cbackas/advent-of-code/gridgraph"
)

// ExampleParse reads a digit grid and looks up a few cells.
func ExampleParse() {
	g, err := gridgraph.ParseString("241\n321\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, cols := g.Dimensions()
	fmt.Printf("%dx%d start=%v goal=%v\n", rows, cols, g.Start(), g.Goal())

	c, _ := g.Cost(g.Goal())
	fmt.Println("goal cost:", c)

	_, err = g.Cost(gridgraph.Point{Row: 5, Col: 5})
	fmt.Println(err)
	// Output:
	// 2x3 start=(0,0) goal=(1,2)
	// goal cost: 1
	// gridgraph: point out of bounds: (5,5) not in 2x3 grid
}
