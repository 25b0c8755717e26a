package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphtide/graphtide/builder"
	"github.com/graphtide/graphtide/core"
)

// edgePairs flattens a graph's edges into (U, V) tuples in insertion order.
func edgePairs(g *core.Graph) [][2]core.Node {
	edges := g.Edges()
	out := make([][2]core.Node, 0, len(edges))
	for _, e := range edges {
		out = append(out, [2]core.Node{e.U(), e.V()})
	}
	return out
}

func TestBuildGraph_Compose(t *testing.T) {
	// constructors overlay onto the shared 0..n-1 identity space
	g, err := builder.BuildGraph(builder.Cycle(4), builder.Nodes(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(builder.Nodes(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_PropagatesError(t *testing.T) {
	_, err := builder.BuildGraph(builder.SpindlyTree(0))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestNodes(t *testing.T) {
	g, err := builder.BuildGraph(builder.Nodes(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 2}, g.Nodes())
	assert.Equal(t, 0, g.EdgeCount())

	g, err = builder.BuildGraph(builder.Nodes(0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())

	_, err = builder.BuildGraph(builder.Nodes(-1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestSpindlyTree(t *testing.T) {
	g, err := builder.BuildGraph(builder.SpindlyTree(4))
	require.NoError(t, err)
	assert.Equal(t, [][2]core.Node{{0, 1}, {1, 2}, {2, 3}}, edgePairs(g))

	g, err = builder.BuildGraph(builder.SpindlyTree(1))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBAryTree(t *testing.T) {
	g, err := builder.BuildGraph(builder.BAryTree(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 7, g.Len())
	assert.Equal(t, [][2]core.Node{
		{0, 1}, {0, 2},
		{1, 3}, {1, 4},
		{2, 5}, {2, 6},
	}, edgePairs(g))

	g, err = builder.BuildGraph(builder.BAryTree(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.EdgeCount())

	g, err = builder.BuildGraph(builder.BAryTree(2, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	_, err = builder.BuildGraph(builder.BAryTree(0, 2))
	assert.ErrorIs(t, err, builder.ErrBadBranching)
	_, err = builder.BuildGraph(builder.BAryTree(2, -1))
	assert.ErrorIs(t, err, builder.ErrBadBranching)
}

func TestNearlySpindlyBAryTree(t *testing.T) {
	g, err := builder.BuildGraph(builder.NearlySpindlyBAryTree(2, 8))
	require.NoError(t, err)
	assert.Equal(t, [][2]core.Node{
		{0, 1}, {0, 2},
		{1, 3}, {1, 4},
		{3, 5}, {3, 6},
		{5, 7},
	}, edgePairs(g))

	// n not filling the last fan-out still yields a tree
	g, err = builder.BuildGraph(builder.NearlySpindlyBAryTree(3, 6))
	require.NoError(t, err)
	assert.Equal(t, [][2]core.Node{
		{0, 1}, {0, 2}, {0, 3},
		{1, 4}, {1, 5},
	}, edgePairs(g))
	assert.Equal(t, g.Len()-1, g.EdgeCount())

	_, err = builder.BuildGraph(builder.NearlySpindlyBAryTree(0, 5))
	assert.ErrorIs(t, err, builder.ErrBadBranching)
	_, err = builder.BuildGraph(builder.NearlySpindlyBAryTree(2, 0))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, [][2]core.Node{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}, edgePairs(g))

	_, err = builder.BuildGraph(builder.Complete(0))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, [][2]core.Node{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, edgePairs(g))

	// the closing edge is last, so node 0's natural neighbors are 1 then n-1
	edges, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, 1, edges[0].Other(0))
	assert.Equal(t, 3, edges[1].Other(0))

	_, err = builder.BuildGraph(builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestLookAhead(t *testing.T) {
	g, err := builder.BuildGraph(builder.LookAhead(5, 2))
	require.NoError(t, err)
	assert.Equal(t, [][2]core.Node{
		{0, 1}, {0, 2},
		{1, 2}, {1, 3},
		{2, 3}, {2, 4},
		{3, 4},
	}, edgePairs(g))

	// k >= n-1 degenerates to the complete graph
	g, err = builder.BuildGraph(builder.LookAhead(4, 10))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	_, err = builder.BuildGraph(builder.LookAhead(0, 2))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.BuildGraph(builder.LookAhead(5, 0))
	assert.ErrorIs(t, err, builder.ErrBadLookAhead)
}

func TestConcatIntGraphs(t *testing.T) {
	a, err := builder.BuildGraph(builder.SpindlyTree(3))
	require.NoError(t, err)
	require.NoError(t, a.SetWeight(1, 2, 4.5))
	b, err := builder.BuildGraph(builder.Cycle(3))
	require.NoError(t, err)

	g, err := builder.ConcatIntGraphs(a, b)
	require.NoError(t, err)
	assert.Equal(t, []core.Node{0, 1, 2, 3, 4, 5}, g.Nodes())
	assert.Equal(t, [][2]core.Node{
		{0, 1}, {1, 2},
		{3, 4}, {4, 5}, {5, 3},
	}, edgePairs(g))

	// weights carry over with the offset applied
	edges, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, 4.5, edges[0].Weight())
}

func TestConcatIntGraphs_Empty(t *testing.T) {
	g, err := builder.ConcatIntGraphs()
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestConcatIntGraphs_RejectsNonInt(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a"))

	_, err := builder.ConcatIntGraphs(g)
	assert.ErrorIs(t, err, builder.ErrIntNodesOnly)
}
