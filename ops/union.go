package ops

import (
	"fmt"

	"github.com/davleko/graphops/core"
	"github.com/davleko/graphops/simple"
)

// Union merges g2 into g1 in place.
//
// Every node of g2 without a correspondent in map2to1 gets a fresh node in
// g1 and its entry is filled in; nodes with a caller-supplied correspondent
// ("identification") are not duplicated. Every edge of g2 is replayed between
// the correspondents of its endpoints, preserving direction, self-loops, and
// parallels. With WithParallelFree, parallel edges are then removed from g1 —
// in the undirected sense unless WithDirected is also set.
//
// A nil map2to1 yields the plain disjoint union. Passing the same graph for
// g1 and g2 is well-defined and doubles it.
//
// Postconditions: every node of g2 has a non-nil entry in map2to1; without
// identification the result has |V1|+|V2| nodes and |E1|+|E2| edges.
// Only unset entries of map2to1 are written.
//
// Complexity: O(V2 + E2), plus O(E) for the parallel-free pass.
func Union(g1, g2 *core.Graph, map2to1 NodeMap, opts ...UnionOption) error {
	// 1. Validate inputs.
	if g1 == nil || g2 == nil {
		return fmt.Errorf("ops: Union: %w", ErrNilGraph)
	}

	// 2. Apply options.
	var cfg unionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if map2to1 == nil {
		map2to1 = make(NodeMap, g2.NodeCount())
	}

	// 3. Identifications must reference live nodes of g1 before anything is
	//    mutated: after this loop the operation cannot fail.
	nodes2 := g2.Nodes()
	for _, v2 := range nodes2 {
		if t := map2to1[v2]; t != nil && t.Graph() != g1 {
			return fmt.Errorf("ops: Union: identification for node %d: %w", v2.Index(), ErrCrossGraph)
		}
	}

	// 4. Create fresh correspondents for every unidentified node of g2.
	for _, v2 := range nodes2 {
		if map2to1[v2] == nil {
			map2to1[v2] = g1.NewNode()
		}
	}

	// 5. Replay every edge of g2 between the correspondents.
	for _, e2 := range g2.Edges() {
		g1.NewEdge(map2to1[e2.Source()], map2to1[e2.Target()])
	}

	// 6. Optional parallel-free pass over the merged result.
	if cfg.parallelFree {
		if cfg.directed {
			simple.MakeParallelFree(g1)
		} else {
			simple.MakeParallelFreeUndirected(g1)
		}
	}

	return nil
}
