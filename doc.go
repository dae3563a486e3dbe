// Package astar finds shortest paths between two cells of a 2-D occupancy grid.
//
// It exposes three entry points:
//
//   - Engine.FindPath: run the search to completion and get a Result.
//   - Engine.NewStepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - FindPaths: run a batch of independent searches over one shared grid with a worker pool.
//
// Moves follow 8-connectivity. The cost of a move is the Euclidean distance
// between the two cells scaled by 10 and rounded (10 orthogonal, 14 diagonal);
// the goal estimate defaults to the scaled Manhattan distance. Both can be
// changed with WithStepCost and WithHeuristic.
//
// Among open nodes with equal score the one inserted first is expanded first,
// which keeps results reproducible for a given grid and request.
package astar
