// Graph method implementations: node and edge management plus read-only
// queries. All mutators validate first and leave the graph untouched on
// error.

package core

import "fmt"

// AddNode inserts one or more nodes into the Graph.
// Existing nodes are skipped (idempotent). Returns ErrBadNode for a nil or
// non-comparable identity; nodes preceding the offender stay inserted.
// Complexity: O(len(ns)) amortized.
func (g *Graph) AddNode(ns ...Node) error {
	for _, n := range ns {
		if !usableNode(n) {
			return fmt.Errorf("%w: %v", ErrBadNode, n)
		}
		if _, exists := g.nodes[n]; exists {
			continue
		}
		g.nodes[n] = struct{}{}
		g.order = append(g.order, n)
	}

	return nil
}

// AddEdge creates an undirected edge between u and v and returns it.
// Both endpoints must already be present (ErrUnknownNode otherwise); the
// weight defaults to DefaultWeight and may be overridden with WithWeight.
// Self-loops and parallel edges are always permitted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Node, opts ...EdgeOption) (*Edge, error) {
	if !g.Contains(u) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, u)
	}
	if !g.Contains(v) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, v)
	}

	e := &Edge{u: u, v: v, weight: DefaultWeight}
	for _, opt := range opts {
		opt(e)
	}
	if !validWeight(e.weight) {
		return nil, fmt.Errorf("%w: %v", ErrBadWeight, e.weight)
	}

	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], e)
	if u != v {
		// a self-loop appears once in its endpoint's adjacency
		g.adj[v] = append(g.adj[v], e)
	}

	return e, nil
}

// SetWeight reassigns the weight of the edge(s) between u and v.
// Every parallel u–v edge is updated. Returns ErrUnknownEdge when no such
// edge exists and ErrBadWeight for a negative or NaN weight; the graph is
// left unmodified on error.
// Complexity: O(deg(u)).
func (g *Graph) SetWeight(u, v Node, w float64) error {
	if !validWeight(w) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	if !g.Contains(u) || !g.Contains(v) {
		return fmt.Errorf("%w: %v-%v", ErrUnknownEdge, u, v)
	}

	found := false
	for _, e := range g.adj[u] {
		if e.Other(u) == v {
			e.weight = w
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %v-%v", ErrUnknownEdge, u, v)
	}

	return nil
}

// Contains reports whether n is a node of the graph.
// Complexity: O(1).
func (g *Graph) Contains(n Node) bool {
	if !usableNode(n) {
		return false
	}
	_, ok := g.nodes[n]

	return ok
}

// Len returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges (parallel edges counted each).
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the edges incident to n in insertion (natural) order.
// A self-loop appears once. The returned slice is a copy; the *Edge values
// are shared, so weight updates remain visible through it.
// Complexity: O(deg(n)).
func (g *Graph) Neighbors(n Node) ([]*Edge, error) {
	if !g.Contains(n) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, n)
	}
	out := make([]*Edge, len(g.adj[n]))
	copy(out, g.adj[n])

	return out, nil
}
