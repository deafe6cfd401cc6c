// SPDX-License-Identifier: MIT

// Package builder generates deterministic route networks for fixtures,
// benchmarks and the "hamroute generate" command.
//
// A network is assembled with BuildGraph from one or more Constructors
// (Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse) and functional
// options:
//
//   - WithIDScheme / WithSymbolIDs / WithExcelColumnIDs / WithSymbNumb:
//     location naming (default decimal "0","1",...).
//   - WithSeed / WithRand: RNG for RandomSparse and random weight functions.
//   - WithWeightFn: edge distances (default constant DefaultEdgeWeight).
//
// ByName maps the CLI topology names (see Topologies) to a Constructor sized
// by Params; Grid is N rows by Cols columns with "r,c" location names.
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical graph, including
//     location first-seen order and edge insertion order.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource) and never panic; option
//     constructors panic on nil arguments.
package builder
