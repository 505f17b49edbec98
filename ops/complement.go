package ops

import (
	"fmt"

	"github.com/davleko/graphops/core"
)

// Complement inverts edge presence in g, in place, between every eligible
// node pair.
//
// Without WithDirectional, each unordered pair is handled exactly once, at
// its lower-index endpoint, and edge direction is ignored: a pair connected
// by any edge (in either direction, or several in parallel) loses all of
// them and gains nothing; a disconnected pair gains one edge. With
// WithDirectional, ordered pairs flip independently, so a lone u→v edge
// becomes a lone v→u edge. New self-loops are created only with WithLoops;
// without it a loopless node stays loopless, but an existing loop is still
// deleted when its node is scanned and is not recreated, so self-loops never
// survive a pass.
//
// Edges created by this pass are tracked in a membership set and are never
// deleted when their other endpoint is processed later in the same pass.
// Postcondition: on a simple graph, running Complement twice with the same
// options restores the original adjacency (edge identities and creation
// order differ).
//
// Complexity: O(V² + E), memory O(V + E) for the neighbor and created sets.
func Complement(g *core.Graph, opts ...ComplementOption) error {
	// 1. Validate input.
	if g == nil {
		return fmt.Errorf("ops: Complement: %w", ErrNilGraph)
	}

	// 2. Apply options.
	var cfg complementConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Edges created during this pass; consulted before deleting so a fresh
	// edge is not flipped back when its far endpoint comes up.
	created := make(map[*core.Edge]struct{})
	neighbors := make(map[*core.Node]struct{})

	nodes := g.Nodes()
	for _, n1 := range nodes {
		// 3. Delete in-scope incident edges, recording prior neighbors.
		//    n1.Adj() is a snapshot; a self-loop appears twice in it, so the
		//    second entry finds the edge already detached and is skipped.
		for _, adj := range n1.Adj() {
			n2 := adj.TwinNode()
			if cfg.directional && !adj.IsSource() {
				continue
			}
			if !cfg.directional && n1.Index() > n2.Index() {
				continue
			}
			if _, fresh := created[adj.Edge()]; fresh {
				continue
			}
			if adj.Edge().Graph() == nil {
				continue // stale snapshot entry
			}
			neighbors[n2] = struct{}{}
			g.DeleteEdge(adj.Edge())
		}

		// 4. Connect n1 to every in-scope node it was not connected to.
		for _, n2 := range nodes {
			if !cfg.directional && n1.Index() > n2.Index() {
				continue
			}
			if !cfg.allowLoops && n1 == n2 {
				continue
			}
			if _, was := neighbors[n2]; was {
				continue
			}
			created[g.NewEdge(n1, n2)] = struct{}{}
		}

		// 5. Reset the per-node record.
		clear(neighbors)
	}

	return nil
}
