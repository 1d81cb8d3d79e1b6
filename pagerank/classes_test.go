// SPDX-License-Identifier: MIT

package pagerank

import (
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/stretchr/testify/require"
)

func TestClosedClasses(t *testing.T) {
	// 0 ⇄ 1 is closed, 2 leaks into both sides, 3 only returns to itself.
	s, err := matrix.NewFromRows([][]float64{
		{0, 1, 0.5, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0.5, 1},
	})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {3}}, closedClasses(s, matrix.DefaultEpsilon))

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}, {2}}, closedClasses(id, matrix.DefaultEpsilon))

	// A 3-cycle is one class.
	c, err := matrix.NewFromRows([][]float64{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}}, closedClasses(c, matrix.DefaultEpsilon))
}
