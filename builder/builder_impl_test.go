package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/stretchr/testify/require"
)

func edgeKeys(g *core.Graph) []string {
	edges := g.Edges()
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.From+">"+e.To)
	}

	return out
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3))
	require.NoError(t, err)
	require.True(t, g.Frozen())
	require.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	require.Equal(t, []string{"A>B", "B>C", "C>A"}, edgeKeys(g))

	n, err := g.Node("B")
	require.NoError(t, err)
	require.Equal(t, "Page B", n.Title)
	require.Equal(t, "https://lvrank.invalid/B", n.Locator)
}

func TestStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Star(4))
	require.NoError(t, err)
	require.Equal(t, []string{"A>D", "B>D", "C>D"}, edgeKeys(g))
	require.Equal(t, 1, g.Stats().Dangling)

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.StarBack(3))
	require.NoError(t, err)
	require.Equal(t, []string{"A>C", "B>C", "C>A", "C>B"}, edgeKeys(g))
	require.Zero(t, g.Stats().Dangling)
}

func TestPathCompleteIsolated(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []string{"0>1", "1>2"}, edgeKeys(g))

	g, err = builder.BuildGraph(nil, nil, builder.Complete(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount())

	g, err = builder.BuildGraph(nil, nil, builder.Isolated(1))
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, g.NodeIDs())
	require.Zero(t, g.EdgeCount())
}

func TestDisjointCycles(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.DisjointCycles(2, 2))
	require.NoError(t, err)
	require.Equal(t, []string{"A>B", "B>A", "C>D", "D>C"}, edgeKeys(g))
}

// TestComposition runs two constructors over shared node IDs.
func TestComposition(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Path(2))
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	w, err := g.Weight("0", "1")
	require.NoError(t, err)
	require.Equal(t, 2.0, w, "shared link accumulates")
}

func TestRandomSparseDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(99), builder.WithPaddedIDs("n", 2)}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(99), builder.WithPaddedIDs("n", 2)}, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
	require.Equal(t, 20, a.NodeCount())

	full, err := builder.BuildGraph([]core.GraphOption{core.WithoutLoops()}, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	require.Equal(t, 12, full.EdgeCount())
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		c    builder.Constructor
		want error
	}{
		{"cycle", builder.Cycle(1), builder.ErrTooFewVertices},
		{"star", builder.Star(1), builder.ErrTooFewVertices},
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"isolated", builder.Isolated(0), builder.ErrTooFewVertices},
		{"disjoint k", builder.DisjointCycles(0, 2), builder.ErrTooFewVertices},
		{"disjoint m", builder.DisjointCycles(2, 1), builder.ErrTooFewVertices},
		{"sparse p", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"sparse rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.c)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.BuildGraph([]core.GraphOption{core.WithoutLoops()}, nil, builder.Cycle(2), builder.Path(2), builder.Complete(2))
	require.NoError(t, err)
}
