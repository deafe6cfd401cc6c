// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hamroute/core"
)

// Constructor adds a topology to g using the resolved configuration.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies
// cons in order. Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Topology names accepted by ByName.
const (
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyWheel    = "wheel"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
	TopologyRandom   = "random"
)

// Params sizes a named topology.
type Params struct {
	N    int     // locations; rows for "grid"
	Cols int     // "grid" only
	P    float64 // "random" only
}

// ByName resolves a topology name to a Constructor sized by prm.
func ByName(name string, prm Params) (Constructor, error) {
	switch name {
	case TopologyPath:
		return Path(prm.N), nil
	case TopologyCycle:
		return Cycle(prm.N), nil
	case TopologyStar:
		return Star(prm.N), nil
	case TopologyWheel:
		return Wheel(prm.N), nil
	case TopologyComplete:
		return Complete(prm.N), nil
	case TopologyGrid:
		return Grid(prm.N, prm.Cols), nil
	case TopologyRandom:
		return RandomSparse(prm.N, prm.P), nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownTopology)
	}
}

// Topologies lists the names ByName accepts, sorted.
func Topologies() []string {
	out := []string{
		TopologyPath, TopologyCycle, TopologyStar, TopologyWheel,
		TopologyComplete, TopologyGrid, TopologyRandom,
	}
	sort.Strings(out)

	return out
}
