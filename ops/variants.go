// Package ops: the seven product variants, each an EdgeRule specialization of
// the Product kernel. Everywhere below, "source-role neighbor" means an
// adjacency entry whose IsSource() is true — the trick that enumerates each
// edge exactly once when the graph is read as undirected.
package ops

import (
	"fmt"

	"github.com/davleko/graphops/core"
)

// CartesianProduct computes the Cartesian product of g1 and g2 into dst:
// (v1,w1)~(v1,w2) for every edge (w1,w2) of g2, and (v1,w1)~(v2,w1) for
// every edge (v1,v2) of g1. Parallel edges of the inputs are kept and
// multiply into the product.
//
// Edge count: |E1|·|V2| + |E2|·|V1|.
func CartesianProduct(g1, g2, dst *core.Graph) (ProductMap, error) {
	return Product(g1, g2, dst, func(v1, v2 *core.Node, m ProductMap) {
		src := m[v1][v2]

		// G2-edges between copies of G1.
		for _, adj2 := range v2.Adj() {
			if adj2.IsSource() {
				dst.NewEdge(src, m[v1][adj2.TwinNode()])
			}
		}

		// G1-edges between copies of G2.
		for _, adj1 := range v1.Adj() {
			if adj1.IsSource() {
				dst.NewEdge(src, m[adj1.TwinNode()][v2])
			}
		}
	})
}

// TensorProduct computes the tensor (categorical) product of g1 and g2 into
// dst: (v1,w1)~(v2,w2) whenever (v1,v2) ∈ E1 and (w1,w2) ∈ E2.
//
// Edge count: 2·|E1|·|E2|.
func TensorProduct(g1, g2, dst *core.Graph) (ProductMap, error) {
	return Product(g1, g2, dst, func(v1, v2 *core.Node, m ProductMap) {
		// Edges between adjacent node pairs.
		for _, adj1 := range v1.Adj() {
			for _, adj2 := range v2.Adj() {
				if adj2.IsSource() {
					dst.NewEdge(m[v1][v2], m[adj1.TwinNode()][adj2.TwinNode()])
				}
			}
		}
	})
}

// LexicographicalProduct computes the lexicographical product of g1 and g2
// into dst: (v1,w1)~(v2,w2) whenever (v1,v2) ∈ E1, plus (v1,w1)~(v1,w2)
// whenever (w1,w2) ∈ E2. Not commutative.
//
// Edge count: |E1|·|V2|² + |E2|·|V1|.
func LexicographicalProduct(g1, g2, dst *core.Graph) (ProductMap, error) {
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("ops: LexicographicalProduct: %w", ErrNilGraph)
	}
	nodes2 := g2.Nodes()

	return Product(g1, g2, dst, func(v1, v2 *core.Node, m ProductMap) {
		src := m[v1][v2]

		// G1-edges between copies of G2, linking all pairs of G2-nodes.
		for _, w2 := range nodes2 {
			for _, adj1 := range v1.Adj() {
				if adj1.IsSource() {
					dst.NewEdge(src, m[adj1.TwinNode()][w2])
				}
			}
		}

		// G2-edges between copies of G1.
		for _, adj2 := range v2.Adj() {
			if adj2.IsSource() {
				dst.NewEdge(src, m[v1][adj2.TwinNode()])
			}
		}
	})
}

// StrongProduct computes the strong product of g1 and g2 into dst: the union
// of the Cartesian product's two edge families and the tensor product's one.
//
// Edge count: |E1|·|V2| + |E2|·|V1| + 2·|E1|·|E2|.
func StrongProduct(g1, g2, dst *core.Graph) (ProductMap, error) {
	return Product(g1, g2, dst, func(v1, v2 *core.Node, m ProductMap) {
		src := m[v1][v2]

		// G2-edges between copies of G1.
		for _, adj2 := range v2.Adj() {
			if adj2.IsSource() {
				dst.NewEdge(src, m[v1][adj2.TwinNode()])
			}
		}

		// G1-edges between copies of G2.
		for _, adj1 := range v1.Adj() {
			if adj1.IsSource() {
				dst.NewEdge(src, m[adj1.TwinNode()][v2])
			}
		}

		// Edges between adjacent node pairs.
		for _, adj1 := range v1.Adj() {
			for _, adj2 := range v2.Adj() {
				if adj2.IsSource() {
					dst.NewEdge(src, m[adj1.TwinNode()][adj2.TwinNode()])
				}
			}
		}
	})
}

// CoNormalProduct computes the co-normal product of g1 and g2 into dst:
// (v1,w1)~(v2,w2) whenever (v1,v2) ∈ E1 or (w1,w2) ∈ E2.
//
// Edge count: |E1|·|V2|² + |E2|·|V1|².
func CoNormalProduct(g1, g2, dst *core.Graph) (ProductMap, error) {
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("ops: CoNormalProduct: %w", ErrNilGraph)
	}
	nodes1 := g1.Nodes()
	nodes2 := g2.Nodes()

	return Product(g1, g2, dst, func(v1, v2 *core.Node, m ProductMap) {
		src := m[v1][v2]

		// G1-edges between copies of G2, linking all pairs of G2-nodes.
		for _, w2 := range nodes2 {
			for _, adj1 := range v1.Adj() {
				if adj1.IsSource() {
					dst.NewEdge(src, m[adj1.TwinNode()][w2])
				}
			}
		}

		// G2-edges between copies of G1, linking all pairs of G1-nodes.
		for _, w1 := range nodes1 {
			for _, adj2 := range v2.Adj() {
				if adj2.IsSource() {
					dst.NewEdge(src, m[w1][adj2.TwinNode()])
				}
			}
		}
	})
}

// ModularProduct computes the modular product of g1 and g2 into dst:
// (v1,w1)~(v2,w2) whenever v1,v2 and w1,w2 are both adjacent or both
// non-adjacent. Both inputs must be simple graphs; on multigraphs the result
// is undefined (a documented caller responsibility, not a detected error).
//
// The non-adjacent family pairs v1 only with G2-nodes strictly after v2 in
// the container's total order so that each such edge is inserted once. This
// tie-break is kept exactly as inherited; it interacts with the kernel's
// iteration order and has not been shown safe to replace with a symmetric
// half-open range.
//
// Edge count (simple inputs):
// 2·(|E1|·|E2| + (C(|V1|,2)−|E1|)·(C(|V2|,2)−|E2|)).
func ModularProduct(g1, g2, dst *core.Graph) (ProductMap, error) {
	if g1 == nil || g2 == nil {
		return nil, fmt.Errorf("ops: ModularProduct: %w", ErrNilGraph)
	}
	nodes1 := g1.Nodes()
	nodes2 := g2.Nodes()

	return Product(g1, g2, dst, func(v1, v2 *core.Node, m ProductMap) {
		src := m[v1][v2]
		adjacentToV1 := make(map[*core.Node]bool, v1.Degree())
		adjacentToV2 := make(map[*core.Node]bool, v2.Degree())

		// Edges between adjacent node pairs; remember v1-adjacencies.
		for _, adj1 := range v1.Adj() {
			adjacentToV1[adj1.TwinNode()] = true
			for _, adj2 := range v2.Adj() {
				if adj2.IsSource() {
					dst.NewEdge(src, m[adj1.TwinNode()][adj2.TwinNode()])
				}
			}
		}

		// Remember v2-adjacencies (separate loop: the one above may not run).
		for _, adj2 := range v2.Adj() {
			adjacentToV2[adj2.TwinNode()] = true
		}

		// Edges between non-adjacent node pairs.
		for _, w1 := range nodes1 {
			if w1 == v1 || adjacentToV1[w1] {
				continue
			}
			// Only nodes after v2, so edges are not inserted twice.
			for _, w2 := range nodes2 {
				if w2.Index() > v2.Index() && !adjacentToV2[w2] {
					dst.NewEdge(src, m[w1][w2])
				}
			}
		}
	})
}

// RootedProduct computes the rooted product of g1 and g2 into dst, rooted at
// root ∈ V2: every copy of g2 keeps its edges, and the copies of g1's edges
// run between the root positions only.
//
// Edge count: |E2|·|V1| + |E1|.
func RootedProduct(g1, g2, dst *core.Graph, root *core.Node) (ProductMap, error) {
	if g2 != nil && (root == nil || root.Graph() != g2) {
		return nil, fmt.Errorf("ops: RootedProduct: %w", ErrForeignRoot)
	}

	return Product(g1, g2, dst, func(v1, v2 *core.Node, m ProductMap) {
		src := m[v1][v2]

		// G2-edges between copies of G1.
		for _, adj2 := range v2.Adj() {
			if adj2.IsSource() {
				dst.NewEdge(src, m[v1][adj2.TwinNode()])
			}
		}

		// G1-edges, only for the copy of G1 that represents the root.
		if v2 == root {
			for _, adj1 := range v1.Adj() {
				if adj1.IsSource() {
					dst.NewEdge(src, m[adj1.TwinNode()][v2])
				}
			}
		}
	})
}
