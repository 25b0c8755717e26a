// Package core defines the Graph and Edge types used by every traversal
// package in this module.
//
// A Graph is an undirected, weighted adjacency-list structure over
// arbitrary node identities. Any non-nil comparable Go value may serve as
// a node: ints, strings, or a mix of both within one graph. Self-loops and
// parallel edges are permitted; every edge carries a non-negative float64
// weight (1 when unspecified).
//
// Adjacency lists preserve edge insertion order. This "natural order" is
// the baseline neighbor ordering for all traversals; callers wanting a
// sorted expansion order apply an order.Policy on top, never the Graph.
//
// Graphs provide no internal locking. Every traversal call works on its
// own per-call state, so distinct Graph values may be used from multiple
// goroutines freely; mutating a single Graph concurrently with a traversal
// over it must be serialized by the caller.
//
// Errors:
//
//	ErrBadNode     - node identity is nil or not a comparable value.
//	ErrUnknownNode - operation referenced a node not present in the graph.
//	ErrUnknownEdge - SetWeight referenced an endpoint pair with no edge.
//	ErrBadWeight   - edge weight is negative or NaN.
package core
