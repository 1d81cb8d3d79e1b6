package pagerank_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/stretchr/testify/require"
)

func TestRankAllKeepsInputOrder(t *testing.T) {
	graphs := []*core.Graph{
		symbolGraph(t, builder.Star(4)),
		symbolGraph(t, builder.Cycle(3)),
		symbolGraph(t, builder.Isolated(1)),
		symbolGraph(t, builder.StarBack(5)),
	}
	e, err := pagerank.New(pagerank.WithParallelism(2))
	require.NoError(t, err)

	all, err := e.RankAll(context.Background(), graphs)
	require.NoError(t, err)
	require.Len(t, all, len(graphs))
	for i, g := range graphs {
		want, err := e.Rank(context.Background(), g)
		require.NoError(t, err)
		require.Equal(t, want, all[i])
	}

	empty, err := e.RankAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestRankAllFirstFailure(t *testing.T) {
	graphs := []*core.Graph{
		symbolGraph(t, builder.Cycle(3)),
		core.NewGraph(), // never frozen
		symbolGraph(t, builder.Cycle(4)),
	}
	e, err := pagerank.New()
	require.NoError(t, err)

	_, err = e.RankAll(context.Background(), graphs)
	require.ErrorIs(t, err, core.ErrNotFrozen)
	require.Contains(t, err.Error(), "graph 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.RankAll(ctx, graphs[:1])
	require.ErrorIs(t, err, context.Canceled)
}
