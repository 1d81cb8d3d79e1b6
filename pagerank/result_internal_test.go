// SPDX-License-Identifier: MIT

package pagerank

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(rs []Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestOrderResultsTiesByDistance(t *testing.T) {
	// Both scores sit 1e-17 either side of 2.5e-12, a half-quantum boundary.
	rs := []Result{
		{ID: "b", Score: 2.5e-12 + 1e-17},
		{ID: "c", Score: 0.75},
		{ID: "a", Score: 2.5e-12 - 1e-17},
	}
	orderResults(rs)
	require.Equal(t, []string{"c", "a", "b"}, ids(rs))
	require.Equal(t, []int{1, 2, 3}, []int{rs[0].Rank, rs[1].Rank, rs[2].Rank})
}

func TestOrderResultsDistinctScores(t *testing.T) {
	rs := []Result{
		{ID: "a", Score: 0.2},
		{ID: "b", Score: 0.2 + 3*tieQuantum},
		{ID: "c", Score: 0.6 - 3*tieQuantum},
	}
	orderResults(rs)
	require.Equal(t, []string{"c", "b", "a"}, ids(rs))
}

func TestOrderResultsIgnoresInputOrder(t *testing.T) {
	mk := func(order ...string) []Result {
		scores := map[string]float64{"a": 0.25, "b": 0.25 + 4e-13, "c": 0.25 + 8e-13, "d": 0.25 + 1.2e-12}
		rs := make([]Result, len(order))
		for i, id := range order {
			rs[i] = Result{ID: id, Score: scores[id]}
		}
		orderResults(rs)
		return rs
	}
	want := ids(mk("a", "b", "c", "d"))
	require.Equal(t, want, ids(mk("d", "c", "b", "a")))
	require.Equal(t, want, ids(mk("c", "a", "d", "b")))
}
