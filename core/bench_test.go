package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hamroute/core"
)

// BenchmarkAddEdge measures inserting fresh location pairs.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), int64(i))
	}
}

// BenchmarkAddEdge_Overwrite cycles over 100 pairs so most calls hit the
// last-write-wins branch.
func BenchmarkAddEdge_Overwrite(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i%100), int64(i))
	}
}

// BenchmarkNeighbors reads the neighbors of a star center with 1000 leaves.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Center", fmt.Sprintf("Node%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("Center")
	}
}
