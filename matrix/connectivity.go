// SPDX-License-Identifier: MIT

package matrix

import "github.com/bits-and-blooms/bitset"

// Connected reports whether every location is reachable from location 0.
//
// A Hamiltonian path is itself a spanning walk, so a disconnected matrix can
// never have one. The solver uses this O(n²) check to skip the exponential
// search on hopeless inputs. A single location is connected.
func (d *Distance) Connected() bool {
	return d.Reachable(0).Count() == uint(d.n)
}

// Reachable returns the set of locations reachable from start (start included).
// An out-of-range start yields an empty set.
func (d *Distance) Reachable(start int) *bitset.BitSet {
	seen := bitset.New(uint(d.n))
	if start < 0 || start >= d.n {
		return seen
	}
	seen.Set(uint(start))
	queue := make([]int, 0, d.n)
	queue = append(queue, start)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		row := d.Row(u)
		for v, w := range row {
			if v == u || w == NoEdge || seen.Test(uint(v)) {
				continue
			}
			seen.Set(uint(v))
			queue = append(queue, v)
		}
	}

	return seen
}
