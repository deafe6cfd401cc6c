// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the builder and the distance matrix.
package matrix

// NoEdge marks an unconnected pair in a Distance matrix.
// Distances are non-negative, so NoEdge can never be confused with 0 or any
// real distance.
const NoEdge int64 = -1

// Location is a named place with its index in [0,n).
// Indices are assigned in first-seen order by Builder.
type Location struct {
	Name  string
	Index int
}

// Triplet is one undirected "From to To = Distance" input record.
type Triplet struct {
	From     string
	To       string
	Distance int64
}
