// SPDX-License-Identifier: MIT
package core

// Insert copies every node and edge of other into g and returns the node and
// edge correspondences from other to the fresh copies. other is left
// untouched. Inserting a graph into itself is well-defined (the snapshots are
// taken before any copy is made) and doubles it.
//
// Copies are created in other's creation order, so the relative total order
// of the copies mirrors the original.
//
// Complexity: O(V2 + E2).
func (g *Graph) Insert(other *Graph) (map[*Node]*Node, map[*Edge]*Edge) {
	if other == nil {
		panic("core: Insert: nil graph")
	}

	nodes := other.Nodes()
	edges := other.Edges()

	nodeMap := make(map[*Node]*Node, len(nodes))
	for _, n := range nodes {
		nodeMap[n] = g.NewNode()
	}

	edgeMap := make(map[*Edge]*Edge, len(edges))
	for _, e := range edges {
		edgeMap[e] = g.NewEdge(nodeMap[e.Source()], nodeMap[e.Target()])
	}

	return nodeMap, edgeMap
}
