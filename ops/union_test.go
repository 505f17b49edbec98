package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davleko/graphops/core"
	"github.com/davleko/graphops/ops"
	"github.com/davleko/graphops/simple"
)

// buildPath creates a graph with n nodes chained by n-1 edges.
func buildPath(n int) (*core.Graph, []*core.Node) {
	g := core.NewGraph()
	nodes := make([]*core.Node, n)
	for i := range nodes {
		nodes[i] = g.NewNode()
	}
	for i := 0; i+1 < n; i++ {
		g.NewEdge(nodes[i], nodes[i+1])
	}

	return g, nodes
}

func TestUnion_NilGraph(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, ops.Union(nil, g, nil), ops.ErrNilGraph)
	assert.ErrorIs(t, ops.Union(g, nil, nil), ops.ErrNilGraph)
}

func TestUnion_Disjoint(t *testing.T) {
	g1, _ := buildPath(3)
	g2, _ := buildPath(4)

	comps := len(simple.ConnectedComponents(g1)) + len(simple.ConnectedComponents(g2))

	m := make(ops.NodeMap)
	require.NoError(t, ops.Union(g1, g2, m))

	assert.Equal(t, 3+4, g1.NodeCount())
	assert.Equal(t, 2+3, g1.EdgeCount())
	assert.Len(t, simple.ConnectedComponents(g1), comps)
	assert.Equal(t, 4, g2.NodeCount(), "second input untouched")

	// Every node of g2 must have a correspondent in g1.
	for _, v2 := range g2.Nodes() {
		require.NotNil(t, m[v2])
		assert.Same(t, g1, m[v2].Graph())
	}
}

func TestUnion_NilMapMeansDisjoint(t *testing.T) {
	g1, _ := buildPath(2)
	g2, _ := buildPath(2)
	require.NoError(t, ops.Union(g1, g2, nil))
	assert.Equal(t, 4, g1.NodeCount())
	assert.Equal(t, 2, g1.EdgeCount())
}

func TestUnion_Identification(t *testing.T) {
	g1, n1 := buildPath(3)
	g2, n2 := buildPath(3)

	// Identify the first two nodes of g2 with the first two of g1.
	m := ops.NodeMap{n2[0]: n1[0], n2[1]: n1[1]}
	require.NoError(t, ops.Union(g1, g2, m))

	assert.Equal(t, 3+3-2, g1.NodeCount())
	assert.Equal(t, 2+2, g1.EdgeCount(), "identified edges become parallels, not dropped")
	assert.Same(t, n1[0], m[n2[0]], "pre-set entries are not overwritten")
	require.NotNil(t, m[n2[2]], "unset entry filled in")
}

func TestUnion_ParallelFreeUndirected(t *testing.T) {
	g1, n1 := buildPath(2) // edge a→b
	g2 := core.NewGraph()
	c := g2.NewNode()
	d := g2.NewNode()
	g2.NewEdge(d, c) // reverse orientation of the identified pair

	m := ops.NodeMap{c: n1[0], d: n1[1]}
	require.NoError(t, ops.Union(g1, g2, m, ops.WithParallelFree()))

	// a→b and the replayed b→a are undirected parallels: one survives.
	assert.Equal(t, 2, g1.NodeCount())
	assert.Equal(t, 1, g1.EdgeCount())
	assert.True(t, simple.IsParallelFreeUndirected(g1))
}

func TestUnion_ParallelFreeDirected(t *testing.T) {
	g1, n1 := buildPath(2)
	g2 := core.NewGraph()
	c := g2.NewNode()
	d := g2.NewNode()
	g2.NewEdge(d, c)

	m := ops.NodeMap{c: n1[0], d: n1[1]}
	require.NoError(t, ops.Union(g1, g2, m, ops.WithParallelFree(), ops.WithDirected()))

	// Directionally the two edges differ, so both survive.
	assert.Equal(t, 2, g1.EdgeCount())
	assert.True(t, simple.IsParallelFree(g1))
	assert.False(t, simple.IsParallelFreeUndirected(g1))
}

func TestUnion_PreservesLoopsAndParallels(t *testing.T) {
	g1 := core.NewGraph()
	g2 := core.NewGraph()
	a := g2.NewNode()
	g2.NewEdge(a, a)
	g2.NewEdge(a, a)

	require.NoError(t, ops.Union(g1, g2, nil))
	assert.Equal(t, 1, g1.NodeCount())
	assert.Equal(t, 2, g1.EdgeCount())
}

func TestUnion_CrossGraphIdentification(t *testing.T) {
	g1, _ := buildPath(2)
	g2, n2 := buildPath(2)
	g3, n3 := buildPath(1)

	m := ops.NodeMap{n2[0]: n3[0]} // correspondent lives in g3, not g1
	err := ops.Union(g1, g2, m)
	assert.ErrorIs(t, err, ops.ErrCrossGraph)
	assert.Equal(t, 2, g1.NodeCount(), "validation failure mutates nothing")
	_ = g3
}

func TestUnion_SelfUnionDoubles(t *testing.T) {
	g, _ := buildPath(3)
	require.NoError(t, ops.Union(g, g, make(ops.NodeMap)))
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
}
