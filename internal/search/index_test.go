package search

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Load([]core.Node{
		{ID: "a", Title: "Generics in Go: a tour"},
		{ID: "b", Title: "Go concurrency patterns"},
		{ID: "c", Title: "Rust generics"},
		{ID: "d", Title: ""},
	}, nil)
	require.NoError(t, err)
	return g
}

func TestMatch(t *testing.T) {
	ctx := context.Background()
	idx, err := Build(ctx, testGraph(t))
	require.NoError(t, err)
	defer idx.Close()
	assert.Equal(t, 4, idx.Size())

	set, err := idx.MatchSet(ctx, "go generics")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true}, set)

	set, err = idx.MatchSet(ctx, "GENERICS")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true, "c": true}, set)

	set, err = idx.MatchSet(ctx, "python")
	require.NoError(t, err)
	assert.Empty(t, set)

	hits, err := idx.Match(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, testGraph(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestEmptyGraph(t *testing.T) {
	g, err := core.Load(nil, nil)
	require.NoError(t, err)
	idx, err := Build(context.Background(), g)
	require.NoError(t, err)
	defer idx.Close()

	hits, err := idx.Match(context.Background(), "go")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
