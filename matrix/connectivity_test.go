// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hamroute/matrix"
	"github.com/stretchr/testify/require"
)

func TestDistance_Connected(t *testing.T) {
	cases := []struct {
		name string
		in   []matrix.Triplet
		want bool
	}{
		{"chain", []matrix.Triplet{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}}, true},
		{"two islands", []matrix.Triplet{{"A", "B", 1}, {"C", "D", 1}}, false},
		{"star", []matrix.Triplet{{"H", "A", 1}, {"H", "B", 1}, {"H", "C", 1}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.FromTriplets(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Connected())
		})
	}
}

func TestDistance_Reachable(t *testing.T) {
	d, err := matrix.FromTriplets([]matrix.Triplet{{"A", "B", 1}, {"C", "D", 1}})
	require.NoError(t, err)

	set := d.Reachable(2)
	require.EqualValues(t, 2, set.Count())
	require.True(t, set.Test(2))
	require.True(t, set.Test(3))
	require.False(t, set.Test(0))

	require.Zero(t, d.Reachable(-1).Count())
	require.Zero(t, d.Reachable(4).Count())
}
