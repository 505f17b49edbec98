package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davleko/graphops/core"
	"github.com/davleko/graphops/ops"
	"github.com/davleko/graphops/simple"
)

// twoIsolated returns a graph with two isolated nodes.
func twoIsolated() (*core.Graph, *core.Node, *core.Node) {
	g := core.NewGraph()

	return g, g.NewNode(), g.NewNode()
}

func TestJoin_Validation(t *testing.T) {
	g1, _, _ := twoIsolated()
	g2, n2a, _ := twoIsolated()

	_, err := ops.Join(nil, g2, nil)
	assert.ErrorIs(t, err, ops.ErrNilGraph)
	_, err = ops.Join(g1, nil, nil)
	assert.ErrorIs(t, err, ops.ErrNilGraph)
	_, err = ops.Join(g1, g1, nil)
	assert.ErrorIs(t, err, ops.ErrSharedDestination)

	// Identification target must live in g1, key in g2.
	g3, x, _ := twoIsolated()
	_, err = ops.Join(g1, g2, ops.NodeMap{n2a: x})
	assert.ErrorIs(t, err, ops.ErrCrossGraph)
	_, err = ops.Join(g1, g2, ops.NodeMap{x: nil})
	assert.ErrorIs(t, err, ops.ErrCrossGraph)
	assert.Equal(t, 2, g1.NodeCount(), "validation failure mutates nothing")
	_ = g3
}

func TestJoin_EdgelessNoIdentification(t *testing.T) {
	g1, a, b := twoIsolated()
	g2, c, d := twoIsolated()

	m, err := ops.Join(g1, g2, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, g1.NodeCount())
	assert.Equal(t, 4, g1.EdgeCount())

	// Exact cross edges: a–c', a–d', b–c', b–d'.
	want := map[[2]int]int{
		{a.Index(), m[c].Index()}: 1,
		{a.Index(), m[d].Index()}: 1,
		{b.Index(), m[c].Index()}: 1,
		{b.Index(), m[d].Index()}: 1,
	}
	assert.Equal(t, want, undirectedPairs(g1))
}

func TestJoin_EdgelessWithIdentification(t *testing.T) {
	g1, a, b := twoIsolated()
	g2, c, d := twoIsolated()

	m, err := ops.Join(g1, g2, ops.NodeMap{c: a})
	require.NoError(t, err)

	assert.Equal(t, 3, g1.NodeCount())
	assert.Equal(t, 3, g1.EdgeCount())
	assert.Same(t, a, m[c], "correspondence redirected onto the identified node")
	require.NotNil(t, m[d])

	// Exact multiset: b–a (cross via identified c), a–d', b–d'.
	want := map[[2]int]int{
		{a.Index(), b.Index()}:    1,
		{a.Index(), m[d].Index()}: 1,
		{b.Index(), m[d].Index()}: 1,
	}
	assert.Equal(t, want, undirectedPairs(g1))
}

func TestJoin_WithEdgesNoIdentification(t *testing.T) {
	g1, a, b := twoIsolated()
	g1.NewEdge(a, b)
	g2, c, d := twoIsolated()
	g2.NewEdge(c, d)

	_, err := ops.Join(g1, g2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g1.NodeCount())
	assert.Equal(t, 6, g1.EdgeCount())
	assert.True(t, simple.IsParallelFreeUndirected(g1))
}

func TestJoin_WithEdgesAndIdentification(t *testing.T) {
	g1, a, b := twoIsolated()
	g1.NewEdge(a, b)
	g2, c, d := twoIsolated()
	g2.NewEdge(c, d)

	m, err := ops.Join(g1, g2, ops.NodeMap{c: a})
	require.NoError(t, err)
	assert.Equal(t, 3, g1.NodeCount())
	assert.Equal(t, 3, g1.EdgeCount())

	// Triangle on {a, b, d'}.
	want := map[[2]int]int{
		{a.Index(), b.Index()}:    1,
		{a.Index(), m[d].Index()}: 1,
		{b.Index(), m[d].Index()}: 1,
	}
	assert.Equal(t, want, undirectedPairs(g1))
}

func TestJoin_CrossTermCoversEveryPair(t *testing.T) {
	g1, _ := buildPath(3)
	g2, _ := buildPath(2)
	before := g1.Nodes()

	m, err := ops.Join(g1, g2, nil)
	require.NoError(t, err)

	for _, n1 := range before {
		for _, n2 := range g2.Nodes() {
			corr := m[n2]
			if g1.FindEdge(n1, corr) == nil && g1.FindEdge(corr, n1) == nil {
				t.Fatalf("missing cross edge between %d and %d", n1.Index(), corr.Index())
			}
		}
	}
}

func TestJoin_GlobalParallelFreeAlsoCollapsesPreexisting(t *testing.T) {
	// Documented side effect: parallels that existed inside g1 before the
	// call are collapsed by the closing pass as well.
	g1, a, b := twoIsolated()
	g1.NewEdge(a, b)
	g1.NewEdge(a, b)
	g2 := core.NewGraph()
	g2.NewNode()

	_, err := ops.Join(g1, g2, nil)
	require.NoError(t, err)
	assert.True(t, simple.IsParallelFreeUndirected(g1))
	assert.Equal(t, 3, g1.NodeCount())
	assert.Equal(t, 1+2, g1.EdgeCount())
}
