// Policy variants, the Seeder state machine for component roots, and the
// neighbor-edge ordering helper.

package order

import (
	"errors"
	"fmt"
	"sort"

	"github.com/graphtide/graphtide/core"
)

// Sentinel errors for ordering resolution.
var (
	// ErrNotOrderable indicates Asc/Desc was requested over node
	// identities that are not mutually orderable.
	ErrNotOrderable = errors.New("order: node identities are not mutually orderable")

	// ErrInvalidStart indicates the explicit start node is absent from the
	// unvisited set at first use.
	ErrInvalidStart = errors.New("order: explicit start node is not an unvisited node")
)

// policyKind enumerates the closed set of Policy variants.
type policyKind uint8

const (
	kindNatural policyKind = iota
	kindAsc
	kindDesc
	kindStart
)

// Policy is a tagged ordering request. Construct values only via
// Natural, Asc, Desc, or Start; the zero value equals Natural().
type Policy struct {
	kind  policyKind
	start core.Node
}

// Natural keeps candidates in the graph's insertion order.
func Natural() Policy { return Policy{kind: kindNatural} }

// Asc orders candidates ascending by natural node ordering.
func Asc() Policy { return Policy{kind: kindAsc} }

// Desc orders candidates descending by natural node ordering.
func Desc() Policy { return Policy{kind: kindDesc} }

// Start seeds the first component at n; later components fall back to
// ascending order over the remaining unvisited nodes.
func Start(n core.Node) Policy { return Policy{kind: kindStart, start: n} }

// Ordered reports whether the policy requires node identities to be
// mutually orderable up front (Asc and Desc do; Start only on fallback).
func (p Policy) Ordered() bool { return p.kind == kindAsc || p.kind == kindDesc }

// String names the variant, for error context.
func (p Policy) String() string {
	switch p.kind {
	case kindAsc:
		return "ascending"
	case kindDesc:
		return "descending"
	case kindStart:
		return fmt.Sprintf("start(%v)", p.start)
	default:
		return "natural"
	}
}

// Seeder resolves successive component roots for one traversal run.
// It is the only cross-component ordering state: an explicit start is
// consumed exactly once, after which seeding degrades to ascending.
type Seeder struct {
	policy Policy
	used   bool // explicit start already consumed
}

// NewSeeder returns a Seeder for one traversal run.
func NewSeeder(p Policy) *Seeder { return &Seeder{policy: p} }

// Next picks the root of the next component from the unvisited set, given
// in insertion order. It must not be called with an empty set.
func (s *Seeder) Next(unvisited []core.Node) (core.Node, error) {
	switch s.policy.kind {
	case kindNatural:
		return unvisited[0], nil
	case kindAsc:
		return pickExtreme(unvisited, -1)
	case kindDesc:
		return pickExtreme(unvisited, 1)
	case kindStart:
		if s.used {
			return pickExtreme(unvisited, -1)
		}
		s.used = true
		for _, n := range unvisited {
			if n == s.policy.start {
				return n, nil
			}
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidStart, s.policy.start)
	default:
		return unvisited[0], nil
	}
}

// pickExtreme returns the minimum (sign < 0) or maximum (sign > 0) of ns.
func pickExtreme(ns []core.Node, sign int) (core.Node, error) {
	best := ns[0]
	for _, n := range ns[1:] {
		c, err := Compare(n, best)
		if err != nil {
			return nil, err
		}
		if (sign < 0 && c < 0) || (sign > 0 && c > 0) {
			best = n
		}
	}

	return best, nil
}

// SortEdges reorders an adjacency slice in place by the endpoint opposite
// to at: ascending for Asc, descending for Desc, untouched otherwise.
// The sort is stable so parallel edges keep their natural relative order.
func SortEdges(edges []*core.Edge, at core.Node, p Policy) error {
	if !p.Ordered() {
		return nil
	}
	var sortErr error
	sort.SliceStable(edges, func(i, j int) bool {
		c, err := Compare(edges[i].Other(at), edges[j].Other(at))
		if err != nil && sortErr == nil {
			sortErr = err
		}
		if p.kind == kindDesc {
			return c > 0
		}

		return c < 0
	})

	return sortErr
}
