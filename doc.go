// Package graphops is an in-memory toolkit for composing graphs out of
// other graphs: unions, products, complements, intersections and joins
// over a lean multigraph container.
//
// 🚀 What is graphops?
//
//	A small, focused library that brings together:
//		• Core container: anonymous nodes & edges, stable creation-order
//		  indices, role-aware adjacency, snapshot iteration
//		• Binary operations: disjoint & glued union, join, intersection
//		• Graph products: Cartesian, tensor, lexicographical, strong,
//		  co-normal, modular and rooted, all over one shared kernel
//		• Unary operations: undirected & directional complement
//		• Simplicity helpers: parallel-edge detection & removal,
//		  connected components
//
// ✨ Why choose graphops?
//
//   - Deterministic – every operation produces the same node and edge
//     order on the same inputs, so results are reproducible and testable
//   - Explicit correspondences – operations hand back maps from input
//     nodes to result nodes instead of guessing by position
//   - Multigraph-honest – self-loops and parallel edges are first-class;
//     only the operations that promise simplicity remove them
//   - Pure Go – no cgo, tiny dependency surface
//
// Everything is organized under three subpackages:
//
//	core/   — the Graph, Node, Edge and AdjEntry container types
//	ops/    — union, join, intersection, complement and the products
//	simple/ — parallel-edge predicates and connected components
//
// Quick ASCII example:
//
//	    A───B  ×  0─1   =   A₀──B₀
//	                        │    │
//	                        A₁──B₁
//
//	the Cartesian product of two single edges is the 4-cycle.
//
// Start with core.NewGraph, build the inputs, then reach for ops.
//
//	go get github.com/davleko/graphops
package graphops
