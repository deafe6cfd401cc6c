// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with call-site
// context via %w) and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrEmpty is returned when a distance matrix would have no locations.
	ErrEmpty = errors.New("matrix: no locations")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyName indicates a triplet with an empty location name.
	ErrEmptyName = errors.New("matrix: empty location name")

	// ErrNegativeDistance indicates a distance below zero.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrSelfEdge indicates a triplet connecting a location to itself.
	// The diagonal of a distance matrix is never written.
	ErrSelfEdge = errors.New("matrix: self edge")

	// ErrUnknownLocation indicates a lookup by a name that was never added.
	ErrUnknownLocation = errors.New("matrix: unknown location")

	// ErrGraphNil indicates that a nil *core.Graph was passed into FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")
)
