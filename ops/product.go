package ops

import (
	"fmt"

	"github.com/davleko/graphops/core"
)

// Product is the generic product kernel shared by all product variants.
//
// It clears dst, creates one destination node for every pair of V1×V2, and
// then invokes rule once per pair. Both the node-creation loop and the rule
// loop run (v1 outer, v2 inner) in the containers' creation order; this
// ordering is observable through adjacency iteration in dst and is part of
// the contract.
//
// dst must be distinct from both inputs (it is cleared first); g1 == g2 is
// allowed and yields the product of a graph with itself.
//
// Postcondition: dst has exactly |V1|·|V2| nodes; the returned ProductMap is
// total over V1×V2. The edge count depends entirely on rule.
//
// Complexity: O(V1·V2) plus the cost of the rule invocations.
func Product(g1, g2, dst *core.Graph, rule EdgeRule) (ProductMap, error) {
	// 1. Validate inputs.
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("ops: Product: %w", ErrNilGraph)
	}
	if dst == nil {
		return nil, fmt.Errorf("ops: Product: %w", ErrNilDest)
	}
	if dst == g1 || dst == g2 {
		return nil, fmt.Errorf("ops: Product: %w", ErrSharedDestination)
	}
	if rule == nil {
		return nil, fmt.Errorf("ops: Product: %w", ErrNilRule)
	}

	// 2. Start from a clean destination.
	dst.Clear()

	nodes1 := g1.Nodes()
	nodes2 := g2.Nodes()

	// 3. Allocate the node grid, v1 outer, v2 inner.
	m := make(ProductMap, len(nodes1))
	for _, v1 := range nodes1 {
		row := make(map[*core.Node]*core.Node, len(nodes2))
		for _, v2 := range nodes2 {
			row[v2] = dst.NewNode()
		}
		m[v1] = row
	}

	// 4. Contribute edges, same pair order as node creation.
	for _, v1 := range nodes1 {
		for _, v2 := range nodes2 {
			rule(v1, v2, m)
		}
	}

	return m, nil
}
