// Package hampath_test provides helpers shared across *_test.go files:
// matrix construction from compact literals and a brute-force oracle.
package hampath_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hamroute/matrix"
	"github.com/stretchr/testify/require"
)

// names returns L0..L{n-1}.
func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("L%d", i)
	}

	return out
}

// buildPairs builds an n-location matrix where pair k (in i<j row order)
// gets weights[k] if present[k] is true. Every location is registered first
// so isolated ones keep their index.
func buildPairs(n int, weights []int64, present []bool) (*matrix.Distance, error) {
	b := matrix.NewBuilder()
	ns := names(n)
	for _, name := range ns {
		if err := b.AddLocation(name); err != nil {
			return nil, err
		}
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if present == nil || present[k] {
				if err := b.Add(ns[i], ns[j], weights[k]); err != nil {
					return nil, err
				}
			}
			k++
		}
	}

	return b.Build()
}

// uniform returns a complete graph on n locations with every edge = w.
func uniform(t testing.TB, n int, w int64) *matrix.Distance {
	t.Helper()
	ws := make([]int64, n*(n-1)/2)
	for i := range ws {
		ws[i] = w
	}
	d, err := buildPairs(n, ws, nil)
	require.NoError(t, err)

	return d
}

// ripple returns a complete graph with deterministic, mostly distinct weights.
func ripple(t testing.TB, n int) *matrix.Distance {
	t.Helper()
	ws := make([]int64, n*(n-1)/2)
	for k := range ws {
		ws[k] = int64((k*37)%53 + 1)
	}
	d, err := buildPairs(n, ws, nil)
	require.NoError(t, err)

	return d
}

// triplets builds a matrix from (from, to, distance) literals.
func triplets(t testing.TB, ts ...matrix.Triplet) *matrix.Distance {
	t.Helper()
	d, err := matrix.FromTriplets(ts)
	require.NoError(t, err)

	return d
}

// bruteForce enumerates every permutation and returns the min and max path
// totals. ok is false when no permutation is a valid path.
// Complexity: O(n·n!), test sizes only.
func bruteForce(d *matrix.Distance) (minCost, maxCost int64, ok bool) {
	n := d.N()
	used := make([]bool, n)
	var walk func(cur, depth int, acc int64)
	walk = func(cur, depth int, acc int64) {
		if depth == n {
			if !ok || acc < minCost {
				minCost = acc
			}
			if !ok || acc > maxCost {
				maxCost = acc
			}
			ok = true
			return
		}
		for next := 0; next < n; next++ {
			if used[next] || !d.Has(cur, next) {
				continue
			}
			w, _ := d.At(cur, next)
			used[next] = true
			walk(next, depth+1, acc+w)
			used[next] = false
		}
	}
	for start := 0; start < n; start++ {
		used[start] = true
		walk(start, 1, 0)
		used[start] = false
	}

	return minCost, maxCost, ok
}

// pathCost re-sums a path on d and checks that it is Hamiltonian.
func pathCost(t testing.TB, d *matrix.Distance, order []int) int64 {
	t.Helper()
	require.Len(t, order, d.N())
	seen := make(map[int]bool, len(order))
	var total int64
	for i, v := range order {
		require.False(t, seen[v], "location %d visited twice", v)
		seen[v] = true
		if i == 0 {
			continue
		}
		require.True(t, d.Has(order[i-1], v), "no edge %d-%d", order[i-1], v)
		w, err := d.At(order[i-1], v)
		require.NoError(t, err)
		total += w
	}

	return total
}
