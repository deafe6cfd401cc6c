package hampath

import "github.com/katalvlaran/hamroute/matrix"

// engine evaluates the Held–Karp recurrence for one direction.
//
// State (mask, cur): mask is the set of visited locations including cur, and
// cur is the last location visited. The value of a state is the best total
// distance still to travel to visit every remaining location; it depends only
// on (mask, cur), never on where the path started.
//
// An engine is not safe for concurrent use.
type engine struct {
	dist *matrix.Distance
	n    int
	full uint32 // mask with all n bits set
	dir  Direction
	none int64 // dir.noCompletion(), cached
	memo *memo

	states int // memo cells written by this engine
}

// newEngine binds a direction to a distance matrix and a memo table.
// m may be nil, in which case a fresh table is allocated.
func newEngine(d *matrix.Distance, dir Direction, m *memo) *engine {
	n := d.N()
	if m == nil {
		m = newMemo(n)
	}

	return &engine{
		dist: d,
		n:    n,
		full: uint32(1)<<uint(n) - 1,
		dir:  dir,
		none: dir.noCompletion(),
		memo: m,
	}
}

// solve returns the best completion cost from (mask, cur), or e.none when no
// completion exists.
//
// Recurrence:
//   - mask == full → 0 (a path does not return to its start).
//   - otherwise best over unvisited i with an edge cur–i of
//     dist(cur,i) + solve(mask|1<<i, i), skipping children that have no
//     completion. If no child qualifies, the state itself has no completion.
//
// The diagonal is never read: cur is always in mask.
//
// Complexity: O(2ⁿ·n²) over all states, recursion depth ≤ n.
func (e *engine) solve(mask uint32, cur int) int64 {
	if mask == e.full {
		return 0
	}
	if v := e.memo.get(mask, cur); v != unknown {
		return v
	}

	var (
		best = e.none
		row  = e.dist.Row(cur)
		bit  uint32
		rest int64
		cand int64
	)
	for i := 0; i < e.n; i++ {
		bit = uint32(1) << uint(i)
		if mask&bit != 0 || row[i] == matrix.NoEdge {
			continue // visited, or no edge cur–i
		}
		rest = e.solve(mask|bit, i)
		if rest == e.none {
			continue // child cannot finish; never let the sentinel propagate as a number
		}
		cand = row[i] + rest
		if best == e.none || e.dir.better(cand, best) {
			best = cand
		}
	}

	e.memo.put(mask, cur, best)
	e.states++

	return best
}

// route rebuilds the visit order of the best path from start.
// It must run after solve(1<<start, start) returned a real cost and before
// the memo is reset. At every step it takes the lowest-index successor whose
// edge plus cached completion equals the cached best, so ties resolve
// deterministically.
//
// Complexity: O(n²).
func (e *engine) route(start int) []int {
	var (
		order = make([]int, 1, e.n)
		mask  = uint32(1) << uint(start)
		cur   = start
	)
	order[0] = start

	for mask != e.full {
		target := e.memo.get(mask, cur)
		row := e.dist.Row(cur)
		next := -1
		for i := 0; i < e.n; i++ {
			bit := uint32(1) << uint(i)
			if mask&bit != 0 || row[i] == matrix.NoEdge {
				continue
			}
			var rest int64
			if mask|bit != e.full {
				rest = e.memo.get(mask|bit, i)
				if rest == unknown || rest == e.none {
					continue
				}
			}
			if row[i]+rest == target {
				next = i
				break
			}
		}
		if next < 0 {
			// Unreachable when solve succeeded for this start on this memo.
			return nil
		}
		order = append(order, next)
		mask |= uint32(1) << uint(next)
		cur = next
	}

	return order
}

// run solves one root and, on success, reconstructs its route.
// ok is false when the root has no completion.
func (e *engine) run(start int) (p Path, ok bool) {
	cost := e.solve(uint32(1)<<uint(start), start)
	if cost == e.none {
		return Path{}, false
	}
	order := e.route(start)
	if order == nil {
		return Path{}, false
	}

	return Path{Start: start, Order: order, Cost: cost}, true
}
