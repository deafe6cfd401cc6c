// Package hampath computes exact shortest and longest Hamiltonian paths.
//
// A Hamiltonian path visits every location exactly once and does not return
// to its start. The input is a symmetric distance matrix from the matrix
// package, where matrix.NoEdge marks unconnected pairs.
//
// Algorithm (Held–Karp over subsets):
//
//   - State (mask, cur): mask is the set of visited locations, cur the last one.
//   - solve(full, cur) = 0; otherwise the best over unvisited neighbours i of
//     dist(cur,i) + solve(mask|1<<i, i), where "best" is min or max.
//   - States with no way to finish hold a direction-specific sentinel that is
//     filtered out explicitly and never reported as a distance.
//
// Entry points:
//
//   - SolveFrom: one start, one direction, fresh memo table.
//   - SolveDirection: all starts, one direction.
//   - Solve: all starts, both directions.
//
// Memo tables are 2ⁿ·n int64 arenas owned by one direction run. Sequential
// runs share the table across starts of that direction (WithSharedMemo);
// parallel runs (WithParallel) give every worker its own table.
//
//   - Complexity: O(n²·2ⁿ)
//   - Memory:     O(n·2ⁿ) per table
//   - Limit:      n ≤ MaxLocations
//
// If no start admits a full path, the solver returns ErrNoHamiltonianPath
// rather than a numeric sentinel.
package hampath
