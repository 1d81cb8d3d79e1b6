// Package core_test exercises node/edge lifecycle and queries.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/core"
	"github.com/stretchr/testify/require"
)

// newABC returns a mutable graph with nodes a, b, c.
func newABC(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, id := range []string{"c", "a", "b"} { // insertion order is irrelevant
		require.NoError(t, g.AddNode(core.Node{ID: id, Title: "Title " + id, Locator: "https://example.org/" + id}))
	}

	return g
}

func TestAddNode(t *testing.T) {
	g := newABC(t)

	require.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddNode(core.Node{ID: "a"}), core.ErrDuplicateNode)

	require.True(t, g.HasNode("a"))
	require.False(t, g.HasNode(""))
	require.False(t, g.HasNode("zz"))
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, []string{"a", "b", "c"}, g.NodeIDs())

	n, err := g.Node("b")
	require.NoError(t, err)
	require.Equal(t, "Title b", n.Title)
	require.Equal(t, "https://example.org/b", n.Locator)

	_, err = g.Node("zz")
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	nodes := g.Nodes()
	require.Len(t, nodes, 3)
	require.Equal(t, "a", nodes[0].ID)
	require.Equal(t, "c", nodes[2].ID)
}

func TestAddEdgeAccumulates(t *testing.T) {
	g := newABC(t)

	require.NoError(t, g.AddLink("a", "b"))
	require.NoError(t, g.AddLink("a", "b"))
	require.NoError(t, g.AddEdge("a", "c", 0.5))
	require.NoError(t, g.AddLink("a", "a"))

	require.Equal(t, 3, g.EdgeCount())
	w, err := g.Weight("a", "b")
	require.NoError(t, err)
	require.Equal(t, 2.0, w)

	out, err := g.OutEdges("a")
	require.NoError(t, err)
	require.Equal(t, []core.Edge{
		{From: "a", To: "a", Weight: 1},
		{From: "a", To: "b", Weight: 2},
		{From: "a", To: "c", Weight: 0.5},
	}, out)

	total, err := g.OutWeight("a")
	require.NoError(t, err)
	require.Equal(t, 3.5, total)

	dangling, err := g.OutEdges("c")
	require.NoError(t, err)
	require.Empty(t, dangling)

	_, err = g.OutEdges("zz")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAddEdgeErrors(t *testing.T) {
	g := newABC(t, core.WithoutLoops())

	require.ErrorIs(t, g.AddEdge("a", "b", math.NaN()), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge("a", "b", math.Inf(1)), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge("a", "b", -1), core.ErrBadWeight)
	require.ErrorIs(t, g.AddLink("a", "a"), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddLink("a", "zz"), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddLink("zz", "a"), core.ErrNodeNotFound)
	require.False(t, g.Looped())
	require.Zero(t, g.EdgeCount())
}

func TestEdgesSorted(t *testing.T) {
	g := newABC(t)
	require.NoError(t, g.AddLink("c", "a"))
	require.NoError(t, g.AddLink("a", "c"))
	require.NoError(t, g.AddLink("a", "b"))
	require.NoError(t, g.AddLink("b", "a"))

	edges := g.Edges()
	got := make([]string, 0, len(edges))
	for _, e := range edges {
		got = append(got, e.From+e.To)
	}
	require.Equal(t, []string{"ab", "ac", "ba", "ca"}, got)
}

func TestFreeze(t *testing.T) {
	g := newABC(t)
	require.NoError(t, g.AddLink("a", "b"))
	require.False(t, g.Frozen())
	require.ErrorIs(t, core.RequireFrozen(g), core.ErrNotFrozen)

	g.Freeze()
	g.Freeze() // idempotent
	require.True(t, g.Frozen())
	require.NoError(t, core.RequireFrozen(g))
	require.ErrorIs(t, core.RequireFrozen(nil), core.ErrGraphNil)

	require.ErrorIs(t, g.AddNode(core.Node{ID: "d"}), core.ErrFrozen)
	require.ErrorIs(t, g.AddLink("b", "a"), core.ErrFrozen)
	require.Equal(t, 1, g.EdgeCount())
}

func TestStats(t *testing.T) {
	g := newABC(t)
	require.NoError(t, g.AddLink("a", "b"))
	require.NoError(t, g.AddLink("b", "b"))

	s := g.Stats()
	require.Equal(t, core.Stats{Nodes: 3, Edges: 2, Dangling: 1, Loops: 1}, s)
}
