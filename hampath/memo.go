package hampath

// unknown marks a memo cell that has not been computed yet. Real costs are
// non-negative and the no-completion sentinels are math.MinInt64 and
// math.MaxInt64, so -1 collides with neither.
const unknown int64 = -1

// memo is the arena-backed (mask, current) → best completion table.
//
// cells is a flat 2ⁿ·n slice indexed mask*n + current. A table belongs to a
// single direction run; reset wipes it back to unknown.
type memo struct {
	n     int
	cells []int64
}

// newMemo allocates a table for n locations with every cell unknown.
// Complexity: O(2ⁿ·n) time and space.
func newMemo(n int) *memo {
	m := &memo{n: n, cells: make([]int64, (1<<uint(n))*n)}
	m.reset()

	return m
}

// reset marks every cell unknown.
func (m *memo) reset() {
	for i := range m.cells {
		m.cells[i] = unknown
	}
}

// get returns the cached value for (mask, cur), or unknown.
func (m *memo) get(mask uint32, cur int) int64 {
	return m.cells[int(mask)*m.n+cur]
}

// put stores v for (mask, cur).
func (m *memo) put(mask uint32, cur int, v int64) {
	m.cells[int(mask)*m.n+cur] = v
}
