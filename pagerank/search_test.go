package pagerank_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []pagerank.Result {
	return []pagerank.Result{
		{ID: "1", Title: "Go Concurrency Patterns", Rank: 1},
		{ID: "2", Title: "Rust ownership", Rank: 2},
		{ID: "3", Title: "Patterns of Enterprise Go", Rank: 3},
		{ID: "4", Title: "", Rank: 4},
	}
}

func TestSearch(t *testing.T) {
	rs := sampleResults()

	cases := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{"   ", []string{"1", "2", "3", "4"}},
		{"rust", []string{"2"}},
		{"CONCURRENCY pat", []string{"1"}},
		{"go patterns", []string{"1", "3"}}, // tokens in any order
		{"python", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.term, func(t *testing.T) {
			got := pagerank.Search(rs, tc.term)
			assert.Equal(t, tc.want, ids(got))
		})
	}

	got := pagerank.Search(rs, "enterprise")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Rank, "original rank kept")
}

func TestLimit(t *testing.T) {
	rs := sampleResults()
	assert.Len(t, pagerank.Limit(rs, 2), 2)
	assert.Len(t, pagerank.Limit(rs, 0), 4)
	assert.Len(t, pagerank.Limit(rs, 10), 4)
}

func TestRankMatching(t *testing.T) {
	g, err := core.Load(
		[]core.Node{
			{ID: "go1", Title: "Go blog"},
			{ID: "go2", Title: "Go tour"},
			{ID: "go3", Title: "Effective Go"},
			{ID: "py", Title: "Python docs"},
		},
		[]core.EdgeSpec{
			core.Link("go1", "go2"),
			core.Link("go3", "go2"),
			core.Link("go2", "py"),
			core.Link("py", "go1"),
		},
	)
	require.NoError(t, err)
	e, err := pagerank.New()
	require.NoError(t, err)

	rs, err := e.RankMatching(context.Background(), g, "go")
	require.NoError(t, err)
	require.Len(t, rs, 3)
	assert.Equal(t, "go2", rs[0].ID)
	assert.InDelta(t, 1.0, scoreSum(rs), tol)

	rs, err = e.RankMatching(context.Background(), g, "haskell")
	require.NoError(t, err)
	assert.Empty(t, rs)

	_, err = e.RankMatching(context.Background(), nil, "go")
	require.ErrorIs(t, err, core.ErrGraphNil)
}
