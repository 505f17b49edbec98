// Package core provides the directed multigraph container that the rest of
// graphops operates on: anonymous nodes and edges with stable creation-order
// identity, role-aware incidence lists, and snapshot iteration.
//
// What:
//
//   - Graph holds nodes and edges in creation order; both carry a monotonically
//     increasing Index that is never reused and serves as a total order.
//   - Every Edge is directed (ordered Source→Target pair). Undirected semantics
//     are a view imposed by callers, typically by only following adjacency
//     entries where IsSource() is true so each edge is enumerated once.
//   - Self-loops and parallel edges are always permitted; removing parallels is
//     the job of package simple.
//   - Nodes(), Edges() and Node.Adj() return snapshots, so callers may delete
//     nodes or edges while walking the returned slice.
//   - DeleteNode and DeleteEdge are idempotent: deleting something already
//     removed is a no-op. This makes delete-while-iterating loops safe even
//     when a snapshot lists an edge twice (a self-loop appears under both of
//     its adjacency roles).
//
// Why:
//
//   - Graph-to-graph transformations (package ops) need to allocate grids of
//     anonymous nodes, replay edges through correspondence maps, and delete
//     structure mid-scan. A handle-based container with creation-order
//     iteration makes all of that deterministic and reproducible.
//
// Complexity:
//
//   - NewNode / NewEdge: O(1) amortized.
//   - DeleteEdge: O(deg(source) + deg(target) + E) due to ordered-slice upkeep.
//   - DeleteNode: O(deg(v)) edge deletions plus O(V) slice upkeep.
//   - Nodes / Edges / Adj: O(n) snapshot copy.
//
// Contract:
//
//   - Handles passed to a Graph method must belong to that graph and, for
//     constructors, must still be live. Violations are programmer errors and
//     panic with a descriptive message; they are never reported as errors.
//     Package ops validates caller input up front, so its exported API
//     surfaces sentinel errors instead.
//
// Not safe for concurrent use: a Graph and everything reachable from it must
// be confined to one goroutine at a time.
package core
