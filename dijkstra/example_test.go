// Package dijkstra_test provides examples demonstrating how to use Search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/cbackas/advent-of-code/dijkstra"
)

// ExampleSearch_Triangle demonstrates a search over a small explicit graph
// wrapped in a SuccessorFunc.
func ExampleSearch_triangle() {
	// 1) Describe the graph as an adjacency list: A—B(1), B—C(2), A—C(5).
	adj := map[string][]dijkstra.Successor[string]{
		"A": {{State: "B", Cost: 1}, {State: "C", Cost: 5}},
		"B": {{State: "A", Cost: 1}, {State: "C", Cost: 2}},
		"C": {{State: "A", Cost: 5}, {State: "B", Cost: 2}},
	}
	next := func(s string) ([]dijkstra.Successor[string], error) { return adj[s], nil }

	// 2) Search from A until C is popped, asking for the path.
	res, err := dijkstra.Search("A", next, func(s string) bool { return s == "C" }, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The cheapest route is A→B→C = 1 + 2.
	fmt.Printf("cost=%d path=%v\n", res.Cost, res.Path)
	// Output: cost=3 path=[A B C]
}

// ExampleSearch_Implicit shows a graph that is never materialized: states are
// integers, each state n steps to n+1 (cost 1) or 2n (cost 3).
func ExampleSearch_implicit() {
	next := func(n int) ([]dijkstra.Successor[int], error) {
		if n > 100 {
			return nil, nil
		}
		return []dijkstra.Successor[int]{{State: n + 1, Cost: 1}, {State: 2 * n, Cost: 3}}, nil
	}
	res, _ := dijkstra.Search(1, next, func(n int) bool { return n == 20 }, dijkstra.WithReturnPath())
	fmt.Printf("cost=%d path=%v\n", res.Cost, res.Path)
	// Output: cost=10 path=[1 2 3 4 5 10 20]
}
