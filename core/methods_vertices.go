// File: methods_vertices.go
// Role: Location lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in first-seen order, never sorted.
//
// Concurrency:
//   - All methods take g.mu (read lock for queries, write lock for mutations).
package core

// AddVertex registers a location if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, append to the first-seen order when new.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked appends id to the first-seen order when it is unknown.
// Caller must hold g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]string)
}

// HasVertex reports whether the location exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns location IDs in first-seen order.
// The returned slice is a copy; callers may mutate it.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns the number of locations.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// VertexIndex returns the first-seen position of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) VertexIndex(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return idx, nil
}
