package stochastic_test

import (
	"testing"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/stochastic"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func requireColumnsSumToOne(t *testing.T, m *matrix.Dense) {
	t.Helper()
	sums, err := matrix.ColSums(m)
	require.NoError(t, err)
	for j, s := range sums {
		require.InDeltaf(t, 1.0, s, tol, "column %d", j)
	}
}

func TestBuildCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(3))
	require.NoError(t, err)

	tr, err := stochastic.Build(g)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Size())
	require.Equal(t, []string{"A", "B", "C"}, tr.IDs())
	require.Empty(t, tr.Dangling())
	require.Equal(t, matrix.KindStochastic, tr.Matrix().Kind())

	// A→B puts 1 at (B, A).
	want, err := matrix.NewFromRows([][]float64{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(want, tr.Matrix(), tol))
}

func TestBuildDanglingIsUniform(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Star(4))
	require.NoError(t, err)

	tr, err := stochastic.Build(g)
	require.NoError(t, err)
	require.Equal(t, []string{"D"}, tr.Dangling())
	requireColumnsSumToOne(t, tr.Matrix())

	d, ok := tr.Index("D")
	require.True(t, ok)
	col, err := tr.Matrix().Column(d)
	require.NoError(t, err)
	for _, v := range col {
		require.InDelta(t, 0.25, v, tol)
	}
}

func TestBuildWeightedShares(t *testing.T) {
	g, err := core.Load(
		[]core.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]core.EdgeSpec{
			core.WeightedLink("a", "b", 3),
			core.Link("a", "c"),
			core.Link("b", "a"),
			core.Link("b", "a"), // parallel link doubles the share
			core.Link("b", "c"),
			core.Link("c", "c"),
		},
	)
	require.NoError(t, err)

	tr, err := stochastic.Build(g)
	require.NoError(t, err)
	requireColumnsSumToOne(t, tr.Matrix())

	at := func(to, from string) float64 {
		i, _ := tr.Index(to)
		j, _ := tr.Index(from)
		v, err := tr.Matrix().At(i, j)
		require.NoError(t, err)
		return v
	}
	require.InDelta(t, 0.75, at("b", "a"), tol)
	require.InDelta(t, 0.25, at("c", "a"), tol)
	require.InDelta(t, 2.0/3.0, at("a", "b"), tol)
	require.InDelta(t, 1.0/3.0, at("c", "b"), tol)
	require.InDelta(t, 1.0, at("c", "c"), tol)
}

func TestBuildRandomColumnsSumToOne(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeights(0.5, 3)},
		builder.RandomSparse(25, 0.15))
	require.NoError(t, err)

	tr, err := stochastic.Build(g)
	require.NoError(t, err)
	requireColumnsSumToOne(t, tr.Matrix())
}

func TestBuildSingleNode(t *testing.T) {
	g, err := core.Load([]core.Node{{ID: "only"}}, nil)
	require.NoError(t, err)

	tr, err := stochastic.Build(g)
	require.NoError(t, err)
	v, err := tr.Matrix().At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, []string{"only"}, tr.Dangling())
}

func TestBuildErrors(t *testing.T) {
	_, err := stochastic.Build(nil)
	require.ErrorIs(t, err, stochastic.ErrGraphNil)

	_, err = stochastic.Build(core.NewGraph())
	require.ErrorIs(t, err, stochastic.ErrEmptyGraph)

	g, err := core.Load(
		[]core.Node{{ID: "a"}, {ID: "b"}},
		[]core.EdgeSpec{core.WeightedLink("a", "b", 0)},
	)
	require.NoError(t, err)
	_, err = stochastic.Build(g)
	require.ErrorIs(t, err, stochastic.ErrNonStochastic)
	require.ErrorIs(t, err, matrix.ErrNonStochastic)
	require.Equal(t, 1, g.EdgeCount(), "graph untouched")
}

func TestTransitionLookups(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(2))
	require.NoError(t, err)
	tr, err := stochastic.Build(g)
	require.NoError(t, err)

	id, ok := tr.ID(1)
	require.True(t, ok)
	require.Equal(t, "B", id)
	_, ok = tr.ID(2)
	require.False(t, ok)
	_, ok = tr.Index("Z")
	require.False(t, ok)

	ids := tr.IDs()
	ids[0] = "mutated"
	require.Equal(t, []string{"A", "B"}, tr.IDs())
}
