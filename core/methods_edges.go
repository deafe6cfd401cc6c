// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/Neighbors/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbors() returns IDs in first-seen location order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under g.mu write lock, queries under the read lock.
package core

import "strconv"

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects from and to with an undirected edge of the given weight.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Register unknown endpoints in first-seen order (from before to).
//  3. If the pair is already linked: strict graphs fail with ErrDuplicateEdge,
//     otherwise the stored weight is overwritten and the existing ID returned.
//  4. Otherwise allocate an ID, store the edge and mirror the adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if eid, ok := g.adjacency[from][to]; ok {
		if g.strict {
			return "", ErrDuplicateEdge
		}
		g.edges[eid].Weight = weight

		return eid, nil
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from and to are directly connected (either orientation).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the distance between two directly connected locations.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is unknown.
//   - ErrEdgeNotFound if they are not connected.
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	row, ok := g.adjacency[from]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok = g.vertices[to]; !ok {
		return 0, ErrVertexNotFound
	}
	eid, ok := row[to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return g.edges[eid].Weight, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of distinct location pairs that are connected.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// Neighbors returns the locations directly connected to id, in first-seen order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(V).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(row))
	for _, v := range g.order {
		if _, linked := row[v]; linked {
			out = append(out, v)
		}
	}

	return out, nil
}

// nextEdgeID returns "e<n>" for the next counter value.
// Caller must hold g.mu for writing.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
