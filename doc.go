// Package hamroute finds the exact shortest and longest routes that visit
// every named location exactly once, without returning to the start.
//
// 🚀 What is hamroute?
//
//	A small, deterministic solver for Hamiltonian paths on undirected
//	weighted graphs that may be missing edges:
//		• Route network: thread-safe graph of named locations (core)
//		• Distance matrix: dense symmetric view with a NoEdge sentinel (matrix)
//		• Held–Karp: bitmask dynamic program, minimize or maximize (hampath)
//		• Multi-start: every location tried as a start, best route kept
//		• Input: "London to Dublin = 464" line format (parser)
//		• CLI: hamroute solve <file>, hamroute generate
//
// ✨ Guarantees
//
//   - Exact: no heuristics; up to hampath.MaxLocations locations.
//   - Explicit failure: a graph without a Hamiltonian path yields
//     hampath.ErrNoHamiltonianPath, never a sentinel number.
//   - Deterministic: ties break by lowest start, then lowest successor;
//     sequential, shared-memo and parallel runs agree.
//
// Layout:
//
//	core/           Graph, Edge and first-seen location ordering
//	matrix/         Builder, Distance, connectivity pre-check
//	hampath/        Held–Karp engine, memo arena, Solve / SolveFrom
//	parser/         line reader and writer for matrix.Triplet values
//	builder/        seeded route-network generators
//	cmd/hamroute/   cobra CLI (viper config, zap logging)
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      5   1
//	       \  │
//	         C
//
//	shortest path is 2 (A → B → C), longest path is 6 (A → C → B).
//
//	go install github.com/katalvlaran/hamroute/cmd/hamroute@latest
package hamroute
