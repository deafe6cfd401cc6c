// SPDX-License-Identifier: MIT

// topologies.go: the fixed-shape constructors plus RandomSparse.
//
// Determinism:
//   - Locations are added in index order 0..n-1 via cfg.idFn
//     (Wheel's hub is the fixed CenterVertexID, Grid uses "r,c").
//   - Edges are emitted in a documented order; one weight draw per edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hamroute/core"
)

// Method tags and minima.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4 // outer cycle needs at least 3
	MinCompleteNodes = 1
	MinGridDim       = 1

	MinProbability = 0.0
	MaxProbability = 1.0

	// CenterVertexID names the hub of Star and Wheel.
	CenterVertexID = "Center"

	gridIDFmt = "%d,%d"
)

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// link draws one weight and adds u-v.
func link(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// Path builds P_n: 0-1, 1-2, ..., (n-2)-(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the path edges plus (n-1)-0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub CenterVertexID with n-1 leaves 0..n-2. Requires n ≥ 2.
// For n ≥ 4 it has no Hamiltonian path.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		ids, err := addVertices(g, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range ids {
			if err = link(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds C_{n-1} on 0..n-2 plus a hub CenterVertexID joined to every
// rim location. Requires n ≥ 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := link(g, cfg, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n, emitting pairs (i,j), i<j, in lexicographic order.
// Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid with fixed IDs "r,c" in
// row-major order; each cell links Right then Bottom.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each pair (i,j), i<j, independently with
// probability p. Trials run in (i asc, j asc) order; a weight is drawn only
// for included pairs. Requires n ≥ 1, p in [0,1], and an RNG when 0<p<1.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == MaxProbability
				if !include && p > MinProbability {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err = link(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
