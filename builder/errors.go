// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownTopology indicates a name not accepted by ByName.
	ErrUnknownTopology = errors.New("builder: unknown topology")
)
