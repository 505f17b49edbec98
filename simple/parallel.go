package simple

import "github.com/davleko/graphops/core"

// endpointPair is a hash key for one parallel class of edges.
type endpointPair struct {
	a, b *core.Node
}

// directedKey classifies e by its ordered (source, target) pair.
func directedKey(e *core.Edge) endpointPair {
	return endpointPair{a: e.Source(), b: e.Target()}
}

// undirectedKey classifies e by its unordered endpoint pair, normalized by
// the container's total order so u→v and v→u collide.
func undirectedKey(e *core.Edge) endpointPair {
	u, v := e.Source(), e.Target()
	if u.Index() > v.Index() {
		u, v = v, u
	}

	return endpointPair{a: u, b: v}
}

// countParallel walks edges in creation order and counts every edge whose
// class was already seen. With remove set, those edges are deleted, so the
// earliest edge of each class survives.
func countParallel(g *core.Graph, key func(*core.Edge) endpointPair, remove bool) int {
	seen := make(map[endpointPair]struct{}, g.EdgeCount())
	dups := 0
	for _, e := range g.Edges() { // snapshot: deletion below is safe
		k := key(e)
		if _, ok := seen[k]; ok {
			dups++
			if remove {
				g.DeleteEdge(e)
			}
			continue
		}
		seen[k] = struct{}{}
	}

	return dups
}

// NumParallelEdges returns the number of edges that duplicate an earlier edge
// with the same ordered (source, target) pair.
func NumParallelEdges(g *core.Graph) int {
	return countParallel(g, directedKey, false)
}

// IsParallelFree reports whether g contains no directed parallel edges.
func IsParallelFree(g *core.Graph) bool {
	return NumParallelEdges(g) == 0
}

// MakeParallelFree deletes all directed parallel edges, keeping the earliest
// edge of each (source, target) class, and returns the number deleted.
func MakeParallelFree(g *core.Graph) int {
	return countParallel(g, directedKey, true)
}

// NumParallelEdgesUndirected returns the number of edges that duplicate an
// earlier edge with the same unordered endpoint pair.
func NumParallelEdgesUndirected(g *core.Graph) int {
	return countParallel(g, undirectedKey, false)
}

// IsParallelFreeUndirected reports whether g contains no undirected parallel
// edges.
func IsParallelFreeUndirected(g *core.Graph) bool {
	return NumParallelEdgesUndirected(g) == 0
}

// MakeParallelFreeUndirected deletes all undirected parallel edges, keeping
// the earliest edge of each unordered endpoint pair, and returns the number
// deleted.
func MakeParallelFreeUndirected(g *core.Graph) int {
	return countParallel(g, undirectedKey, true)
}
