// Package core provides the thread-safe route network consumed by the
// Hamiltonian path solver.
//
// A Graph G = (V,E) holds named locations and undirected, non-negative
// edges between them:
//
//   - Locations are registered on first sight (AddVertex or either endpoint of
//     AddEdge) and keep that first-seen position for their lifetime. The
//     matrix package turns that position into the location index.
//   - Edges are undirected: AddEdge("A","B",w) and AddEdge("B","A",w) name the
//     same pair. A repeated pair overwrites the weight unless the graph was
//     built WithStrictEdges, in which case it fails with ErrDuplicateEdge.
//   - Self-loops and negative weights are rejected; a route never revisits a
//     location and distances are never negative.
//   - Edge IDs are generated as "e1", "e2", … in insertion order.
//   - A single sync.RWMutex guards the graph; every method is safe for
//     concurrent use.
//
// Core Methods:
//
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	VertexIndex(id string) (int, error)                 // O(1)
//	Vertices() []string                                 // O(V), first-seen order
//	AddEdge(from, to string, weight int64) (string, error) // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//	Weight(from, to string) (int64, error)              // O(1)
//	Neighbors(id string) ([]string, error)              // O(V)
//	Edges() []Edge                                      // O(E), insertion order
package core
