package ops

import (
	"fmt"

	"github.com/davleko/graphops/core"
)

// Intersection prunes g1 in place against g2 through nodeMap, which gives
// for each node of g1 its correspondent in g2 (nil/absent meaning unset).
//
// Nodes of g1 without a correspondent are deleted (together with their
// incident edges). Of the remaining edges, only those survive whose
// endpoints' correspondents are adjacent in g2 (in either direction).
//
// The map must be fully valid: nodeMap itself must be non-nil and every set
// entry must reference a live node of g2; violations surface as errors
// before anything is mutated. Re-running Intersection with the same map on
// its own output changes nothing.
//
// Complexity: O(V1·(deg_max)) plus deletion cost; memory O(deg_max).
func Intersection(g1, g2 *core.Graph, nodeMap NodeMap) error {
	// 1. Validate inputs.
	if g1 == nil || g2 == nil {
		return fmt.Errorf("ops: Intersection: %w", ErrNilGraph)
	}
	if nodeMap == nil {
		return fmt.Errorf("ops: Intersection: %w", ErrNilMapping)
	}
	nodes1 := g1.Nodes()
	for _, n1 := range nodes1 {
		if n2 := nodeMap[n1]; n2 != nil && n2.Graph() != g2 {
			return fmt.Errorf("ops: Intersection: correspondent of node %d: %w", n1.Index(), ErrCrossGraph)
		}
	}

	// 2. Delete every node without a correspondent (snapshot iteration).
	for _, n1 := range nodes1 {
		if nodeMap[n1] == nil {
			g1.DeleteNode(n1)
		}
	}

	// 3. Keep only edges whose endpoint correspondents are adjacent in g2.
	neighbors := make(map[*core.Node]struct{})
	for _, n1a := range g1.Nodes() { // fresh snapshot of the survivors
		n2a := nodeMap[n1a]

		// Neighbor set of the correspondent, either direction.
		for _, a2 := range n2a.Adj() {
			neighbors[a2.TwinNode()] = struct{}{}
		}

		// Incident edges of n1a, snapshotted before deleting. A self-loop
		// shows up twice; the second pass sees it already detached.
		for _, a1 := range n1a.Adj() {
			e1 := a1.Edge()
			if e1.Graph() == nil {
				continue
			}
			n1b := e1.Opposite(n1a)
			if _, ok := neighbors[nodeMap[n1b]]; !ok {
				g1.DeleteEdge(e1)
			}
		}
		clear(neighbors)
	}

	return nil
}
