// SPDX-License-Identifier: MIT

// Package matrix - Graph Builder: turns (name, name, distance) triplets or a
// core.Graph into a Distance matrix.
//
// Contract:
//   - Each unique name gets the next free index on first encounter.
//   - The matrix starts as all NoEdge; each triplet writes (a,b) and (b,a).
//   - A repeated pair keeps the last distance written.
//   - Triplets are assumed to come from a parser; the builder only rejects
//     values that would break the matrix invariants.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/hamroute/core"
)

// indexedEdge is a triplet with both endpoints already resolved to indices.
type indexedEdge struct {
	u, v int
	w    int64
}

// Builder accumulates triplets and assigns location indices.
// The zero value is not usable; call NewBuilder. Builder is not safe for
// concurrent use; core.Graph is the concurrent-safe collection surface.
type Builder struct {
	names []string
	index map[string]int
	edges []indexedEdge
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Add records one undirected distance between from and to.
//
// Errors:
//   - ErrEmptyName, ErrSelfEdge, ErrNegativeDistance.
//
// Complexity: O(1) amortized.
func (b *Builder) Add(from, to string, distance int64) error {
	if from == "" || to == "" {
		return fmt.Errorf("Builder.Add(%q,%q): %w", from, to, ErrEmptyName)
	}
	if from == to {
		return fmt.Errorf("Builder.Add(%q,%q): %w", from, to, ErrSelfEdge)
	}
	if distance < 0 {
		return fmt.Errorf("Builder.Add(%q,%q): %w", from, to, ErrNegativeDistance)
	}
	u := b.intern(from)
	v := b.intern(to)
	b.edges = append(b.edges, indexedEdge{u: u, v: v, w: distance})

	return nil
}

// AddLocation registers a location without any edge. Isolated locations make
// every Hamiltonian path impossible, which is a valid input.
func (b *Builder) AddLocation(name string) error {
	if name == "" {
		return fmt.Errorf("Builder.AddLocation: %w", ErrEmptyName)
	}
	b.intern(name)

	return nil
}

// AddTriplet is Add for a Triplet value.
func (b *Builder) AddTriplet(t Triplet) error {
	return b.Add(t.From, t.To, t.Distance)
}

// Len returns the number of locations seen so far.
func (b *Builder) Len() int { return len(b.names) }

// intern returns the index of name, assigning the next free one when new.
func (b *Builder) intern(name string) int {
	if i, ok := b.index[name]; ok {
		return i
	}
	i := len(b.names)
	b.index[name] = i
	b.names = append(b.names, name)

	return i
}

// Build materializes the symmetric distance matrix.
// The builder stays usable; later Adds affect only later Builds.
//
// Errors:
//   - ErrEmpty if no location was added.
//
// Complexity: O(n² + E).
func (b *Builder) Build() (*Distance, error) {
	if len(b.names) == 0 {
		return nil, ErrEmpty
	}
	d := newDistance(b.names)
	for _, e := range b.edges {
		// indices come from intern and weights were validated in Add.
		d.data[e.u*d.n+e.v] = e.w
		d.data[e.v*d.n+e.u] = e.w
	}

	return d, nil
}

// FromTriplets builds a Distance matrix from triplets in order.
func FromTriplets(ts []Triplet) (*Distance, error) {
	b := NewBuilder()
	for _, t := range ts {
		if err := b.AddTriplet(t); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// FromGraph builds a Distance matrix from a route network. Location indices
// follow g.Vertices() (first-seen order), so isolated vertices are kept.
//
// Errors:
//   - ErrGraphNil, ErrEmpty.
//
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (*Distance, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	b := NewBuilder()
	for _, id := range g.Vertices() {
		if err := b.AddLocation(id); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if err := b.Add(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
