package hampath_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/hamroute/builder"
	"github.com/katalvlaran/hamroute/hampath"
	"github.com/katalvlaran/hamroute/matrix"
	"github.com/stretchr/testify/require"
)

func fromBuilder(t testing.TB, bopts []builder.BuilderOption, ctor builder.Constructor) *matrix.Distance {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, ctor)
	require.NoError(t, err)
	d, err := matrix.FromGraph(g)
	require.NoError(t, err)

	return d
}

func TestSolve_Topologies(t *testing.T) {
	tests := []struct {
		name    string
		ctor    builder.Constructor
		want    int64 // both directions, unit weights
		noPath  bool
		wantMin []int
	}{
		{name: "path", ctor: builder.Path(5), want: 4, wantMin: []int{0, 1, 2, 3, 4}},
		{name: "cycle", ctor: builder.Cycle(6), want: 5, wantMin: []int{0, 1, 2, 3, 4, 5}},
		{name: "star of 3", ctor: builder.Star(3), want: 2},
		{name: "star of 5", ctor: builder.Star(5), noPath: true},
		{name: "wheel", ctor: builder.Wheel(7), want: 6},
		{name: "grid 3x3", ctor: builder.Grid(3, 3), want: 8},
		{name: "complete", ctor: builder.Complete(6), want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fromBuilder(t, nil, tt.ctor)
			res, err := hampath.Solve(context.Background(), d, hampath.WithConnectivityCheck(false))
			if tt.noPath {
				require.ErrorIs(t, err, hampath.ErrNoHamiltonianPath)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Shortest.Cost)
			require.Equal(t, tt.want, res.Longest.Cost)
			if tt.wantMin != nil {
				require.Equal(t, tt.wantMin, res.Shortest.Order)
			}
		})
	}
}

func TestSolve_RandomNetworksMatchBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			d := fromBuilder(t,
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithWeightFn(builder.UniformWeightFn(0, 40)),
				},
				builder.RandomSparse(7, 0.55))

			wantMin, wantMax, ok := bruteForce(d)
			res, err := hampath.Solve(context.Background(), d, hampath.WithParallel(3))
			if !ok {
				require.ErrorIs(t, err, hampath.ErrNoHamiltonianPath)
				return
			}
			require.NoError(t, err)
			require.Equal(t, wantMin, res.Shortest.Cost)
			require.Equal(t, wantMax, res.Longest.Cost)
			require.Equal(t, res.Shortest.Cost, pathCost(t, d, res.Shortest.Order))
			require.Equal(t, res.Longest.Cost, pathCost(t, d, res.Longest.Order))
		})
	}
}
