package simple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davleko/graphops/core"
	"github.com/davleko/graphops/simple"
)

func TestParallel_DirectedVsUndirected(t *testing.T) {
	g := core.NewGraph()
	a := g.NewNode()
	b := g.NewNode()
	g.NewEdge(a, b)
	g.NewEdge(b, a) // reverse: parallel only in the undirected sense

	assert.Equal(t, 0, simple.NumParallelEdges(g))
	assert.True(t, simple.IsParallelFree(g))
	assert.Equal(t, 1, simple.NumParallelEdgesUndirected(g))
	assert.False(t, simple.IsParallelFreeUndirected(g))
}

func TestMakeParallelFree_KeepsEarliestEdge(t *testing.T) {
	g := core.NewGraph()
	a := g.NewNode()
	b := g.NewNode()
	first := g.NewEdge(a, b)
	g.NewEdge(a, b)
	g.NewEdge(a, b)
	reverse := g.NewEdge(b, a)

	removed := simple.MakeParallelFree(g)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Same(t, g, first.Graph(), "earliest duplicate must survive")
	assert.Same(t, g, reverse.Graph(), "reverse edge is not a directed parallel")
	assert.True(t, simple.IsParallelFree(g))
}

func TestMakeParallelFreeUndirected_CollapsesReversePairs(t *testing.T) {
	g := core.NewGraph()
	a := g.NewNode()
	b := g.NewNode()
	first := g.NewEdge(a, b)
	g.NewEdge(b, a)
	g.NewEdge(a, b)

	removed := simple.MakeParallelFreeUndirected(g)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Same(t, g, first.Graph())
	assert.True(t, simple.IsParallelFreeUndirected(g))
}

func TestParallel_SelfLoops(t *testing.T) {
	g := core.NewGraph()
	a := g.NewNode()
	b := g.NewNode()
	g.NewEdge(a, a)
	g.NewEdge(a, a) // parallel self-loop
	g.NewEdge(b, b) // loop at another node: its own class

	assert.Equal(t, 1, simple.NumParallelEdges(g))
	assert.Equal(t, 1, simple.NumParallelEdgesUndirected(g))

	removed := simple.MakeParallelFreeUndirected(g)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestParallel_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	assert.True(t, simple.IsParallelFree(g))
	assert.Equal(t, 0, simple.MakeParallelFreeUndirected(g))
}
