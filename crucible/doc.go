// Package crucible computes the minimum heat loss of a crucible pushed from
// the top-left to the bottom-right of a city-block grid, where the crucible
// must move straight for a bounded run before it may turn.
//
// The package glues three pieces together:
//
//   - gridgraph.Grid supplies bounds and the cost of entering each block;
//   - movement.Policy decides which directions are legal after a run;
//   - dijkstra.Search walks the implicit graph of State values.
//
// Expander turns a State into its successors. MinHeatLoss runs one search;
// SolveModes runs several policies over the same grid concurrently, each
// with its own frontier. VerifyPath replays a returned path against the
// policy to prove it is legal and re-add its cost.
package crucible
