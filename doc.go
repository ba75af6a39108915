// Package adventofcode is the root of a small toolkit for the "clumsy
// crucible" puzzle: find the cheapest route across a grid of city blocks when
// the cart must move in straight runs of bounded length.
//
// Packages:
//
//	gridgraph/    immutable digit grid: parsing, bounds, per-block cost
//	movement/     directions, run bookkeeping, and the turn/stop Policy
//	dijkstra/     generic best-first search over implicit, lazily expanded graphs
//	crucible/     successor expansion, heat-loss extraction, concurrent modes, path replay
//	config/       YAML + .env + CRUCIBLE_* environment configuration
//	cmd/crucible/ command-line entry point
//
// Quick ASCII example (PartOne, at most three blocks straight):
//
//	1999        1999
//	1999   →    v999      heat loss 5
//	1111        v>>>
//
//	go run ./cmd/crucible solve input.txt
package adventofcode
