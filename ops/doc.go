// Package ops implements an algebra of binary and unary operations on
// directed multigraphs: disjoint and merging union, seven node-pair product
// constructions (Cartesian, tensor, lexicographical, strong, co-normal,
// modular, rooted), complement, intersection, and join.
//
// What:
//
//   - Union(g1, g2, map2to1, ...) merges g2 into g1, optionally identifying
//     caller-supplied nodes and optionally removing parallel edges.
//   - Product(g1, g2, dst, rule) is the generic product kernel: it clears dst,
//     allocates the |V1|×|V2| node grid, and invokes rule for every node pair.
//     CartesianProduct, TensorProduct, LexicographicalProduct, StrongProduct,
//     CoNormalProduct, ModularProduct, and RootedProduct are edge-rule
//     specializations of the kernel.
//   - Complement(g, ...) flips edge presence between every eligible node pair
//     in place, with direction and self-loop policies.
//   - Intersection(g1, g2, nodeMap) prunes g1 down to the nodes and edges that
//     have valid correspondents in g2.
//   - Join(g1, g2, mapping) merges g2 into g1 and additionally connects every
//     pre-existing g1 node with every (non-identified) g2 correspondent, then
//     removes undirected parallel edges.
//
// Correspondence maps:
//
//   - NodeMap records, per node of one graph, its counterpart in another;
//     an absent key or nil value means "unset" (no correspondent yet).
//   - ProductMap is the two-level pair→node map populated by the kernel;
//     after a product returns, every (v1, v2) pair resolves to exactly one
//     product node. The map is the single source of truth for "which new node
//     represents this pair" — edge rules must resolve pairs through it.
//
// Determinism:
//
//   - Product node creation and edge-rule invocation both run (v1 outer,
//     v2 inner) in the containers' creation order, so adjacency iteration
//     order in the destination is reproducible run over run.
//
// Mutation model:
//
//   - Union, Complement, Intersection, and Join mutate their first argument in
//     place; products clear and rebuild dst. All operations are synchronous
//     and single-threaded; none retains a reference to its arguments after
//     returning. After a validation error partway through nothing has been
//     mutated, but callers that ignore a returned error and keep using a
//     half-built destination are on their own (no rollback semantics).
//
// Errors:
//
//	ErrNilGraph          - an input graph is nil.
//	ErrNilDest           - the product destination is nil.
//	ErrSharedDestination - a destination aliases an input graph.
//	ErrNilRule           - Product was given a nil edge rule.
//	ErrNilMapping        - Intersection requires a non-nil correspondence map.
//	ErrCrossGraph        - a correspondent belongs to the wrong graph.
//	ErrForeignRoot       - the rooted product root is not a node of G2.
package ops
