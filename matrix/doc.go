// Package matrix builds the dense, symmetric distance matrix the exact path
// solver works on.
//
// The package provides:
//
//   - Builder, FromTriplets and FromGraph: assign every location an index in
//     first-seen order and write each undirected distance into both (a,b) and
//     (b,a) of an n×n table that starts out entirely NoEdge.
//   - Distance: O(1) bounds-checked lookups, the name ↔ index mapping, and a
//     Row accessor for hot loops.
//   - Connected/Reachable: a breadth-first reachability check used to reject
//     inputs that cannot contain a Hamiltonian path.
//
// A Distance is immutable once built unless Set is called explicitly; the
// solver never mutates it.
package matrix
