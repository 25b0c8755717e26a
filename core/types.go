// This file declares Node, Edge, Graph, EdgeOption, sentinel errors,
// and the NewGraph constructor.

package core

import (
	"errors"
	"math"
	"reflect"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNode indicates a nil or non-comparable node identity.
	ErrBadNode = errors.New("core: node identity must be a non-nil comparable value")

	// ErrUnknownNode indicates an operation referenced a non-existent node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrUnknownEdge indicates SetWeight referenced a non-existent edge.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")
)

// DefaultWeight is assigned to edges added without WithWeight.
const DefaultWeight = 1.0

// Node identifies a vertex in a Graph. Any non-nil comparable Go value is
// a valid identity; equality follows Go's == semantics.
type Node = any

// Edge is an undirected connection between two nodes.
//
// Endpoints are fixed at creation; the weight may be reassigned later via
// Graph.SetWeight. The same *Edge is shared by both endpoints' adjacency
// lists, so a weight update is observed from either side.
type Edge struct {
	u, v   Node
	weight float64
}

// U returns the first endpoint (the "from" argument of AddEdge).
func (e *Edge) U() Node { return e.u }

// V returns the second endpoint.
func (e *Edge) V() Node { return e.v }

// Weight returns the current edge weight.
func (e *Edge) Weight() float64 { return e.weight }

// Other returns the endpoint opposite to n. For a self-loop both
// endpoints coincide, so Other returns n itself.
func (e *Edge) Other(n Node) Node {
	if e.u == n {
		return e.v
	}

	return e.u
}

// EdgeOption configures a single edge at AddEdge time.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight instead of DefaultWeight.
// Negative or NaN values are rejected by AddEdge with ErrBadWeight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.weight = w }
}

// Graph is an undirected weighted multigraph over arbitrary node
// identities, stored as insertion-ordered adjacency lists.
type Graph struct {
	nodes map[Node]struct{} // membership
	order []Node            // node insertion order
	adj   map[Node][]*Edge  // incident edges, insertion order
	edges []*Edge           // edge insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[Node]struct{}),
		adj:   make(map[Node][]*Edge),
	}
}

// usableNode reports whether n can serve as a node identity (map key).
func usableNode(n Node) bool {
	if n == nil {
		return false
	}

	return reflect.TypeOf(n).Comparable()
}

// validWeight reports whether w is a legal edge weight.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w)
}
