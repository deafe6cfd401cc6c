// SPDX-License-Identifier: MIT

// Package matrix - Distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the location index (name ↔ index) next to the numbers it labels.
//
// Complexity quicksheet:
//   - newDistance: O(n²) NoEdge-init; At/Set/Has: O(1); Clone: O(n²).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxName  = "Name"  // method tag used in error wrappers
	ctxIndex = "Index" // method tag used in error wrappers
)

// distanceErrorf wraps an error with a uniform Distance context and callsite indices.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// Distance is a symmetric n×n table of travel distances between locations.
//   - n is the number of locations.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - names[i] is the location with index i; index is the inverse map.
//
// Unconnected pairs hold NoEdge. The diagonal also holds NoEdge; the solver
// never reads it.
type Distance struct {
	n     int
	data  []int64
	names []string
	index map[string]int
}

var _ fmt.Stringer = (*Distance)(nil)

// newDistance allocates an n×n matrix filled with NoEdge for the given names.
// Caller guarantees len(names) > 0 and unique names.
func newDistance(names []string) *Distance {
	n := len(names)
	data := make([]int64, n*n)
	for i := range data {
		data[i] = NoEdge
	}
	index := make(map[string]int, n)
	for i, name := range names {
		index[name] = i
	}

	return &Distance{
		n:     n,
		data:  data,
		names: append([]string(nil), names...),
		index: index,
	}
}

// N returns the number of locations.
func (d *Distance) N() int { return d.n }

// inBounds reports whether (i,j) addresses a cell.
func (d *Distance) inBounds(i, j int) bool {
	return i >= 0 && i < d.n && j >= 0 && j < d.n
}

// At returns the distance between i and j, or NoEdge when they are unconnected.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates).
//
// Complexity: O(1).
func (d *Distance) At(i, j int) (int64, error) {
	if !d.inBounds(i, j) {
		return 0, distanceErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Set writes v into both (i,j) and (j,i), keeping the matrix symmetric.
// v may be NoEdge to disconnect the pair.
//
// Errors:
//   - ErrOutOfRange, ErrSelfEdge (i == j), ErrNegativeDistance (v < 0 and v != NoEdge).
//
// Complexity: O(1).
func (d *Distance) Set(i, j int, v int64) error {
	if !d.inBounds(i, j) {
		return distanceErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if i == j {
		return distanceErrorf(ctxSet, i, j, ErrSelfEdge)
	}
	if v < 0 && v != NoEdge {
		return distanceErrorf(ctxSet, i, j, ErrNegativeDistance)
	}
	d.data[i*d.n+j] = v
	d.data[j*d.n+i] = v

	return nil
}

// Has reports whether i and j are directly connected.
// Out-of-range indices and the diagonal report false.
func (d *Distance) Has(i, j int) bool {
	if !d.inBounds(i, j) || i == j {
		return false
	}

	return d.data[i*d.n+j] != NoEdge
}

// Row returns the raw row i without bounds checks or copying.
// It is meant for hot loops that already validated i; callers must not
// mutate the result.
func (d *Distance) Row(i int) []int64 {
	return d.data[i*d.n : (i+1)*d.n]
}

// Name returns the name of location i.
func (d *Distance) Name(i int) (string, error) {
	if i < 0 || i >= d.n {
		return "", distanceErrorf(ctxName, i, i, ErrOutOfRange)
	}

	return d.names[i], nil
}

// Index returns the index of the named location.
func (d *Distance) Index(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return 0, fmt.Errorf("Distance.%s(%q): %w", ctxIndex, name, ErrUnknownLocation)
	}

	return i, nil
}

// Names returns location names ordered by index.
func (d *Distance) Names() []string {
	return append([]string(nil), d.names...)
}

// Locations returns every location ordered by index.
func (d *Distance) Locations() []Location {
	out := make([]Location, d.n)
	for i, name := range d.names {
		out[i] = Location{Name: name, Index: i}
	}

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(n²).
func (d *Distance) Clone() *Distance {
	cp := newDistance(d.names)
	copy(cp.data, d.data)

	return cp
}

// String renders the matrix row by row with "-" for NoEdge.
func (d *Distance) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteString("[")
		for j := 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v := d.data[i*d.n+j]
			if v == NoEdge {
				sb.WriteString("-")
				continue
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
