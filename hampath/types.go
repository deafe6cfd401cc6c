package hampath

import (
	"math"

	"github.com/katalvlaran/hamroute/matrix"
)

// MaxLocations is the hard upper bound on n. The memo arena holds 2ⁿ·n int64
// cells (≈168 MiB at n=20), so larger inputs are rejected up front.
const MaxLocations = 20

// MaxDistance is the largest accepted single distance. With at most
// MaxLocations-1 hops a path total stays far from the int64 sentinels.
const MaxDistance = math.MaxInt64 / (MaxLocations * 2)

// Direction selects whether the solver looks for the shortest or the longest path.
type Direction uint8

const (
	// Minimize searches for the shortest Hamiltonian path.
	Minimize Direction = iota
	// Maximize searches for the longest Hamiltonian path.
	Maximize
)

// String returns "minimize", "maximize" or "unknown".
func (dir Direction) String() string {
	switch dir {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// valid reports whether dir is one of the declared directions.
func (dir Direction) valid() bool {
	return dir == Minimize || dir == Maximize
}

// noCompletion returns the direction's "no completion" sentinel: the worst
// possible value, so it can never be mistaken for a real total.
// +∞ surrogate for Minimize, −∞ surrogate for Maximize.
func (dir Direction) noCompletion() int64 {
	if dir == Maximize {
		return math.MinInt64
	}

	return math.MaxInt64
}

// better reports whether a is strictly preferable to b under dir.
// Neither argument may be the sentinel; callers filter it out first.
func (dir Direction) better(a, b int64) bool {
	if dir == Maximize {
		return a > b
	}

	return a < b
}

// Path is one Hamiltonian path found by the solver.
type Path struct {
	// Start is the index of the first location.
	Start int

	// Order lists every location index exactly once, in visit order.
	// Order[0] == Start and len(Order) == n.
	Order []int

	// Cost is the sum of the n-1 traversed distances.
	Cost int64
}

// Names maps Order to location names using d's index.
// d must be the matrix the path was solved on.
func (p Path) Names(d *matrix.Distance) []string {
	names := d.Names()
	out := make([]string, len(p.Order))
	for i, idx := range p.Order {
		out[i] = names[idx]
	}

	return out
}

// Result holds the global optimum in both directions.
type Result struct {
	// Shortest is the minimum-cost Hamiltonian path over all starts.
	Shortest Path

	// Longest is the maximum-cost Hamiltonian path over all starts.
	Longest Path
}
