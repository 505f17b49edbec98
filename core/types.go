// Package core: container types.
//
// This file declares Graph, Node, Edge, and AdjEntry together with their
// read-only accessors. Mutating methods live in graph.go, bulk insertion in
// insert.go.
package core

// Node is an anonymous vertex of a Graph.
//
// A Node is identified by its pointer; Index() additionally provides a stable
// total order that reflects creation order. A Node whose Graph() is nil has
// been deleted (or its graph was cleared) and must not be passed to mutators.
type Node struct {
	graph *Graph
	index int
	adj   []AdjEntry
}

// Index returns the creation index of n. Indices increase monotonically per
// graph and are never reused, so they define the container's total order.
func (n *Node) Index() int { return n.index }

// Graph returns the graph n belongs to, or nil if n has been deleted.
func (n *Node) Graph() *Graph { return n.graph }

// Adj returns a snapshot of the adjacency entries incident to n, in the order
// the incident edges were attached. The caller may freely delete edges while
// ranging over the result. A self-loop contributes two entries (source role
// and target role).
// Complexity: O(deg(n)).
func (n *Node) Adj() []AdjEntry {
	out := make([]AdjEntry, len(n.adj))
	copy(out, n.adj)

	return out
}

// Degree returns the number of adjacency entries at n.
// A self-loop counts twice, matching Adj().
func (n *Node) Degree() int { return len(n.adj) }

// Edge is a directed connection between two nodes of the same Graph.
//
// An Edge whose Graph() is nil has been deleted.
type Edge struct {
	graph  *Graph
	index  int
	source *Node
	target *Node
}

// Index returns the creation index of e (monotonic, never reused).
func (e *Edge) Index() int { return e.index }

// Graph returns the graph e belongs to, or nil if e has been deleted.
func (e *Edge) Graph() *Graph { return e.graph }

// Source returns the source endpoint of e.
func (e *Edge) Source() *Node { return e.source }

// Target returns the target endpoint of e.
func (e *Edge) Target() *Node { return e.target }

// Opposite returns the endpoint of e other than n, or n itself for a
// self-loop. It returns nil if n is not an endpoint of e.
func (e *Edge) Opposite(n *Node) *Node {
	switch n {
	case e.source:
		return e.target
	case e.target:
		return e.source
	default:
		return nil
	}
}

// IsSelfLoop reports whether both endpoints of e are the same node.
func (e *Edge) IsSelfLoop() bool { return e.source == e.target }

// AdjEntry records one incidence of an edge at one of its endpoints.
//
// For a node n with entry a, a.IsSource() reports whether n plays the source
// role of a.Edge(); a.TwinNode() is the endpoint reached by following the
// edge away from n. Filtering on IsSource() turns the incidence list into one
// enumeration per edge, which is how callers impose an undirected view.
type AdjEntry struct {
	edge   *Edge
	source bool
}

// Edge returns the incident edge.
func (a AdjEntry) Edge() *Edge { return a.edge }

// IsSource reports whether the owning node is the source endpoint of Edge().
func (a AdjEntry) IsSource() bool { return a.source }

// Node returns the endpoint this entry belongs to.
func (a AdjEntry) Node() *Node {
	if a.source {
		return a.edge.source
	}

	return a.edge.target
}

// TwinNode returns the endpoint of Edge() opposite to Node().
// For a self-loop this is Node() itself.
func (a AdjEntry) TwinNode() *Node {
	if a.source {
		return a.edge.target
	}

	return a.edge.source
}

// Graph is an in-memory directed multigraph.
//
// Nodes and edges are stored in creation order; nextNode/nextEdge generate
// the never-reused indices backing the total order. The zero value is not
// usable; construct with NewGraph.
type Graph struct {
	nodes    []*Node
	edges    []*Edge
	nextNode int
	nextEdge int
}

// NewGraph creates an empty directed multigraph.
// Complexity: O(1).
func NewGraph() *Graph { return &Graph{} }
