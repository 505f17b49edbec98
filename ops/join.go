package ops

import (
	"fmt"

	"github.com/davleko/graphops/core"
	"github.com/davleko/graphops/simple"
)

// Join merges g2 into g1 in place and connects every node that existed in g1
// beforehand with every (non-identified) final correspondent of g2, then
// removes undirected parallel edges. mapping optionally identifies nodes of
// g2 with pre-existing nodes of g1, with the same semantics as Union; nil
// means no identification. The returned NodeMap gives the final correspondent
// in g1 for every node of g2.
//
// Note: the closing parallel-free pass is global — besides the duplicates
// the cross edges and identifications can introduce, it also collapses any
// parallel edges that already existed inside g1 or g2 before the call.
// Callers that need to keep pre-existing parallels must not use Join.
//
// Postcondition: |V| = |V1| + |V2| − (number of identified pairs).
//
// Complexity: O(V1·V2 + E1 + E2) plus the parallel-free pass.
func Join(g1, g2 *core.Graph, mapping NodeMap) (NodeMap, error) {
	// 1. Validate inputs.
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("ops: Join: %w", ErrNilGraph)
	}
	if g1 == g2 {
		return nil, fmt.Errorf("ops: Join: %w", ErrSharedDestination)
	}
	for n2, n1 := range mapping {
		if n2 == nil || n2.Graph() != g2 {
			return nil, fmt.Errorf("ops: Join: identification key: %w", ErrCrossGraph)
		}
		if n1 != nil && n1.Graph() != g1 {
			return nil, fmt.Errorf("ops: Join: identification for node %d: %w", n2.Index(), ErrCrossGraph)
		}
	}

	// 2. Remember the nodes that existed in g1 before the merge.
	before := g1.Nodes()

	// 3. Disjoint insert of g2, with fresh correspondents for every node.
	inserted, _ := g1.Insert(g2)
	nodeMap := NodeMap(inserted)

	// 4. Redirect identified nodes: replay their incident edges onto the
	//    identified g1 node, drop the now-redundant fresh copy, and point
	//    the correspondence at the identified node.
	for _, n2 := range g2.Nodes() {
		identified := mapping[n2]
		if identified == nil {
			continue
		}
		for _, adj := range n2.Adj() {
			g1.NewEdge(identified, nodeMap[adj.TwinNode()])
		}
		fresh := nodeMap[n2]
		nodeMap[n2] = identified
		g1.DeleteNode(fresh)
	}

	// 5. Cross term: every pre-existing g1 node meets every final
	//    correspondent, except a node meeting itself via identification.
	for _, n2 := range g2.Nodes() {
		corr := nodeMap[n2]
		for _, n1 := range before {
			if n1 != corr {
				g1.NewEdge(n1, corr)
			}
		}
	}

	// 6. Collapse undirected parallels (see the note above).
	simple.MakeParallelFreeUndirected(g1)

	return nodeMap, nil
}
