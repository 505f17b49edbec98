// Package core: Graph mutators and accessors.
//
// All mutators keep the creation-order invariants described in doc.go:
// nodes/edges slices stay sorted by creation, indices are never reused, and
// deletion detaches handles (Graph() becomes nil) so stale snapshot entries
// are recognizable and re-deletion is a no-op.
package core

// NewNode creates a node, appends it to the creation order, and returns it.
// Complexity: O(1) amortized.
func (g *Graph) NewNode() *Node {
	n := &Node{graph: g, index: g.nextNode}
	g.nextNode++
	g.nodes = append(g.nodes, n)

	return n
}

// NewEdge creates a directed edge src→tgt and returns it.
// Both endpoints must be live nodes of g; violations panic (see doc.go).
// A self-loop attaches two adjacency entries to the node, one per role.
// Complexity: O(1) amortized.
func (g *Graph) NewEdge(src, tgt *Node) *Edge {
	g.mustOwn(src)
	g.mustOwn(tgt)

	e := &Edge{graph: g, index: g.nextEdge, source: src, target: tgt}
	g.nextEdge++
	g.edges = append(g.edges, e)

	src.adj = append(src.adj, AdjEntry{edge: e, source: true})
	tgt.adj = append(tgt.adj, AdjEntry{edge: e, source: false})

	return e
}

// DeleteEdge removes e from the graph and detaches it.
// Deleting an already-deleted edge is a no-op; deleting an edge of another
// graph panics.
// Complexity: O(deg(src) + deg(tgt) + E).
func (g *Graph) DeleteEdge(e *Edge) {
	if e == nil || e.graph == nil {
		return // already gone
	}
	if e.graph != g {
		panic("core: DeleteEdge: edge belongs to a different graph")
	}

	e.source.dropEntries(e)
	if e.target != e.source {
		e.target.dropEntries(e)
	}
	g.edges = removeEdge(g.edges, e)
	e.graph = nil
}

// DeleteNode removes n together with all incident edges and detaches it.
// Deleting an already-deleted node is a no-op; deleting a node of another
// graph panics.
// Complexity: O(deg(n)) edge deletions plus O(V) order upkeep.
func (g *Graph) DeleteNode(n *Node) {
	if n == nil || n.graph == nil {
		return // already gone
	}
	if n.graph != g {
		panic("core: DeleteNode: node belongs to a different graph")
	}

	// Snapshot first: dropping edges mutates n.adj underneath us.
	for _, a := range n.Adj() {
		g.DeleteEdge(a.Edge())
	}
	g.nodes = removeNode(g.nodes, n)
	n.graph = nil
	n.adj = nil
}

// Nodes returns a snapshot of all nodes in creation order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a snapshot of all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of live nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of live edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// FindEdge returns the first edge (in creation order) with exactly the given
// source and target, or nil if none exists. The query is directed: a tgt→src
// edge does not match.
// Complexity: O(min(deg(src), E)).
func (g *Graph) FindEdge(src, tgt *Node) *Edge {
	if src == nil || src.graph != g || tgt == nil || tgt.graph != g {
		return nil
	}
	var found *Edge
	for _, a := range src.adj {
		if a.source && a.edge.target == tgt {
			if found == nil || a.edge.index < found.index {
				found = a.edge
			}
		}
	}

	return found
}

// Clear removes all nodes and edges, detaching every handle, and resets the
// index counters. Configuration-free by design: a cleared graph is
// indistinguishable from a fresh one.
// Complexity: O(V + E).
func (g *Graph) Clear() {
	for _, e := range g.edges {
		e.graph = nil
	}
	for _, n := range g.nodes {
		n.graph = nil
		n.adj = nil
	}
	g.nodes = nil
	g.edges = nil
	g.nextNode = 0
	g.nextEdge = 0
}

// mustOwn panics unless n is a live node of g.
func (g *Graph) mustOwn(n *Node) {
	if n == nil {
		panic("core: nil node handle")
	}
	if n.graph != g {
		panic("core: node belongs to a different graph or was deleted")
	}
}

// dropEntries removes every adjacency entry of e at n (two for a self-loop).
func (n *Node) dropEntries(e *Edge) {
	kept := n.adj[:0]
	for _, a := range n.adj {
		if a.edge != e {
			kept = append(kept, a)
		}
	}
	n.adj = kept
}

// removeNode deletes n from s preserving order.
func removeNode(s []*Node, n *Node) []*Node {
	for i, v := range s {
		if v == n {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// removeEdge deletes e from s preserving order.
func removeEdge(s []*Edge, e *Edge) []*Edge {
	for i, v := range s {
		if v == e {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
