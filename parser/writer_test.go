package parser_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/hamroute/builder"
	"github.com/katalvlaran/hamroute/core"
	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	line, err := parser.FormatLine(matrix.Triplet{From: "London", To: "Dublin", Distance: 464})
	require.NoError(t, err)
	assert.Equal(t, "London to Dublin = 464", line)

	_, err = parser.FormatLine(matrix.Triplet{From: "New York", To: "Boston", Distance: 1})
	require.ErrorIs(t, err, parser.ErrUnwritableName)
	_, err = parser.FormatLine(matrix.Triplet{From: "", To: "Boston", Distance: 1})
	require.ErrorIs(t, err, parser.ErrUnwritableName)
	_, err = parser.FormatLine(matrix.Triplet{From: "A", To: "B", Distance: -3})
	require.ErrorIs(t, err, parser.ErrBadDistance)
}

func TestWrite_RoundTrip(t *testing.T) {
	want, err := parser.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, parser.Write(&buf, want))
	got, err := parser.Parse(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSymbNumb("City"),
			builder.WithSeed(3),
			builder.WithWeightFn(builder.UniformWeightFn(10, 99)),
		},
		builder.Complete(4))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, parser.WriteGraph(&buf, g))
	assert.Equal(t, 6, strings.Count(buf.String(), "\n"))

	back, err := parser.ParseGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	if diff := cmp.Diff(g.Edges(), back.Edges()); diff != "" {
		t.Fatalf("graph mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteGraph_IsolatedLocation(t *testing.T) {
	// RandomSparse with p=0 has locations but no edges at all.
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()},
		builder.RandomSparse(3, 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = parser.WriteGraph(&buf, g)
	require.ErrorIs(t, err, parser.ErrIsolatedLocation)
	assert.Contains(t, err.Error(), "A, B, C")
	assert.Empty(t, buf.String(), "nothing written on refusal")

	// One isolated location among connected ones is refused too.
	g = core.NewGraph()
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("C"))
	err = parser.WriteGraph(&buf, g)
	require.ErrorIs(t, err, parser.ErrIsolatedLocation)
	assert.Contains(t, err.Error(), "C")
}

func TestWriteGraph_DisconnectedRoundTrip(t *testing.T) {
	// Two components but no isolated location: the line format keeps every
	// location, so the read-back network is the same problem.
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, parser.WriteGraph(&buf, g))
	back, err := parser.ParseGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
}
