// Package simple provides simple-graph predicates over core.Graph:
// parallel-edge detection and removal (directed and undirected flavors) and
// connected-component enumeration.
//
// What:
//
//   - NumParallelEdges / IsParallelFree / MakeParallelFree treat edges as
//     ordered (source, target) pairs: u→v and v→u are not parallel.
//   - The *Undirected variants treat edges as unordered pairs: u→v and v→u
//     are parallel; self-loops are parallel only to other self-loops at the
//     same node.
//   - Make* keep the earliest edge (creation order) of each parallel class,
//     delete the rest, and report how many were deleted.
//   - ConnectedComponents enumerates weakly connected components, ignoring
//     edge direction.
//
// Why:
//
//   - Union and join (package ops) optionally deliver parallel-free results;
//     property tests count components of disjoint unions.
//
// Complexity:
//
//   - Parallel-edge routines: O(E) expected (one hash bucket per pair), plus
//     deletion cost for Make*.
//   - ConnectedComponents: O(V + E), memory O(V).
package simple
