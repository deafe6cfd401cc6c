// SPDX-License-Identifier: MIT

// Package core defines the route network: named locations joined by
// undirected, non-negatively weighted edges.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID     - location ID is the empty string.
//	ErrVertexNotFound    - requested location does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrBadWeight         - negative edge weight.
//	ErrLoopNotAllowed    - edge from a location to itself.
//	ErrDuplicateEdge     - second edge between the same pair in a strict graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided location ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent location.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a repeated location pair in a graph built WithStrictEdges.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge is an undirected connection between two locations.
//
// From/To keep the orientation in which the edge was first added; lookups
// treat the pair as unordered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as given to AddEdge.
	From string

	// To is the second endpoint as given to AddEdge.
	To string

	// Weight is the travel distance between the endpoints.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictEdges makes AddEdge reject a second edge between the same pair
// of locations. By default a repeated pair overwrites the stored weight.
func WithStrictEdges() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the in-memory route network.
//
// Locations are remembered in first-seen order; that order becomes the
// location index used by the matrix package. mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	strict bool // reject duplicate pairs

	nextEdgeID uint64                       // monotonic edge ID counter
	order      []string                     // location IDs in first-seen order
	vertices   map[string]int               // location ID → position in order
	edges      map[string]*Edge             // edge ID → Edge
	edgeOrder  []string                     // edge IDs in insertion order
	adjacency  map[string]map[string]string // from → to → edge ID (mirrored)
}

// NewGraph creates an empty route network.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]int),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Strict reports whether the graph rejects duplicate location pairs.
func (g *Graph) Strict() bool { return g.strict }
