// SPDX-License-Identifier: MIT
//
// Package ops: correspondence types, sentinel errors, and functional options.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed; callers branch with
//     errors.Is. Implementations attach operation context via %w wrapping.
//   - Operations never panic on caller input; every precondition of the
//     contract is validated up front and surfaces as a sentinel error that
//     the caller must treat as fatal for the destination involved.
package ops

import (
	"errors"

	"github.com/davleko/graphops/core"
)

// NodeMap is a one-level node correspondence: for a node of one graph, the
// counterpart node in another graph. An absent key or a nil value both mean
// "unset". Union fills unset entries in place; Intersection reads the map as
// g1→g2; Union and Join read identifications as g2→g1.
type NodeMap map[*core.Node]*core.Node

// ProductMap is the two-level correspondence populated by the product kernel:
// node of G1 → (node of G2 → node of the product). After the kernel ran it is
// total over V1×V2 with no pair left unset.
type ProductMap map[*core.Node]map[*core.Node]*core.Node

// Node resolves the product node representing the pair (v1, v2), or nil if
// the pair is not covered by the map.
func (m ProductMap) Node(v1, v2 *core.Node) *core.Node {
	return m[v1][v2]
}

// EdgeRule contributes the edges of one product variant for a single node
// pair (v1, v2). Given the fully populated correspondence map, it creates
// zero or more destination edges incident to m.Node(v1, v2). It must not
// mutate G1 or G2 and must resolve every pair through m.
type EdgeRule func(v1, v2 *core.Node, m ProductMap)

// Sentinel errors for graph operations.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("ops: graph is nil")

	// ErrNilDest indicates a nil product destination graph.
	ErrNilDest = errors.New("ops: destination graph is nil")

	// ErrSharedDestination indicates that a destination graph aliases one of
	// the input graphs (products clear the destination first; join consumes
	// g2 while mutating g1).
	ErrSharedDestination = errors.New("ops: destination aliases an input graph")

	// ErrNilRule indicates that Product was handed a nil EdgeRule.
	ErrNilRule = errors.New("ops: edge rule is nil")

	// ErrNilMapping indicates that Intersection was handed a nil NodeMap;
	// the contract requires a fully valid correspondence.
	ErrNilMapping = errors.New("ops: correspondence map is nil")

	// ErrCrossGraph indicates a correspondence entry whose node belongs to
	// the wrong graph (or was deleted).
	ErrCrossGraph = errors.New("ops: correspondent belongs to a different graph")

	// ErrForeignRoot indicates that the rooted product root is nil or not a
	// live node of G2.
	ErrForeignRoot = errors.New("ops: root is not a node of the second graph")
)

// UnionOption configures Union.
type UnionOption func(*unionConfig)

type unionConfig struct {
	parallelFree bool // remove parallel edges from the result
	directed     bool // direction distinguishes parallels during removal
}

// WithParallelFree makes Union remove parallel edges from the result,
// in the undirected sense unless WithDirected is also given.
func WithParallelFree() UnionOption {
	return func(c *unionConfig) { c.parallelFree = true }
}

// WithDirected makes the parallel-free pass treat edge direction as
// significant: u→v and v→u are then not parallels. It only has an effect
// together with WithParallelFree.
func WithDirected() UnionOption {
	return func(c *unionConfig) { c.directed = true }
}

// ComplementOption configures Complement.
type ComplementOption func(*complementConfig)

type complementConfig struct {
	directional bool // ordered pairs: u→v and v→u flip independently
	allowLoops  bool // self-loops participate in the flip
}

// WithDirectional makes Complement treat edge presence per ordered pair:
// every node is processed against every other node in both directions.
// Without it, each unordered pair is handled once, at its lower-index
// endpoint, ignoring edge direction.
func WithDirectional() ComplementOption {
	return func(c *complementConfig) { c.directional = true }
}

// WithLoops includes self-loops in the complement: a node without a loop
// gains one, a node with loops loses them. Without it, no loop is ever
// created; existing loops are still deleted by the scan and not recreated.
func WithLoops() ComplementOption {
	return func(c *complementConfig) { c.allowLoops = true }
}
