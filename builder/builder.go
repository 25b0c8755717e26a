// Topology constructors and the BuildGraph orchestrator.

package builder

import (
	"errors"
	"fmt"

	"github.com/graphtide/graphtide/core"
)

// Sentinel errors for topology construction.
var (
	// ErrTooFewNodes indicates a node count below the shape's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes for this topology")

	// ErrBadBranching indicates a non-positive branching factor or depth.
	ErrBadBranching = errors.New("builder: branching factor and depth must be positive")

	// ErrBadLookAhead indicates a non-positive look-ahead span.
	ErrBadLookAhead = errors.New("builder: look-ahead span must be positive")

	// ErrIntNodesOnly indicates ConcatIntGraphs received a graph whose
	// nodes are not all ints.
	ErrIntNodesOnly = errors.New("builder: concatenation requires int node identities")

	// ErrConstructFailed indicates BuildGraph was given a nil constructor.
	ErrConstructFailed = errors.New("builder: graph construction failed")
)

// Constructor applies one deterministic topology to a graph. Constructors
// validate parameters eagerly and must keep node/edge emission order
// stable for equal inputs.
type Constructor func(g *core.Graph) error

// BuildGraph creates a fresh graph and applies the constructors in order.
// The first error aborts and is returned wrapped; no cleanup is attempted.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: nil constructor at index %d", ErrConstructFailed, i)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("builder: BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addRange inserts nodes 0..n-1 in ascending order.
func addRange(g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(i); err != nil {
			return err
		}
	}

	return nil
}

// Nodes emits n isolated nodes 0..n-1 (n ≥ 0).
func Nodes(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 0 {
			return fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
		}

		return addRange(g, n)
	}
}

// SpindlyTree emits the path 0—1—…—(n-1), edges in ascending order (n ≥ 1).
func SpindlyTree(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if _, err := g.AddEdge(i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// BAryTree emits the complete b-ary tree of the given depth: node i's
// children are b*i+1 … b*i+b, level by level. depth 0 is a single root.
// Edges are emitted parent-ascending, child-ascending.
func BAryTree(b, depth int) Constructor {
	return func(g *core.Graph) error {
		if b < 1 || depth < 0 {
			return fmt.Errorf("%w: b=%d depth=%d", ErrBadBranching, b, depth)
		}
		// total nodes: 1 + b + b² + … + b^depth
		total := 1
		width := 1
		for level := 0; level < depth; level++ {
			width *= b
			total += width
		}
		if err := addRange(g, total); err != nil {
			return err
		}
		for i := 0; ; i++ {
			first := b*i + 1
			if first >= total {
				break
			}
			for c := first; c < first+b && c < total; c++ {
				if _, err := g.AddEdge(i, c); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// NearlySpindlyBAryTree emits an n-node tree whose spine descends through
// each node's first child: the spine node receives up to b children, the
// first of which becomes the next spine node.
//
// For b=2, n=8 the edges are 0-1, 0-2, 1-3, 1-4, 3-5, 3-6, 5-7.
func NearlySpindlyBAryTree(b, n int) Constructor {
	return func(g *core.Graph) error {
		if b < 1 {
			return fmt.Errorf("%w: b=%d", ErrBadBranching, b)
		}
		if n < 1 {
			return fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		spine, next := 0, 1
		for next < n {
			descend := next // first child continues the spine
			for c := 0; c < b && next < n; c++ {
				if _, err := g.AddEdge(spine, next); err != nil {
					return err
				}
				next++
			}
			spine = descend
		}

		return nil
	}
}

// Complete emits the complete graph K_n, edges (i, j) for i < j in
// lexicographic order (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cycle emits the n-cycle 0—1—…—(n-1)—0 (n ≥ 3). The closing edge
// (n-1, 0) is emitted last, so node 0's natural neighbors are [1, n-1].
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 3 {
			return fmt.Errorf("%w: n=%d (cycle needs 3)", ErrTooFewNodes, n)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if _, err := g.AddEdge(i, i+1); err != nil {
				return err
			}
		}
		if _, err := g.AddEdge(n-1, 0); err != nil {
			return err
		}

		return nil
	}
}

// LookAhead emits n nodes where each node i is joined to the next k
// nodes i+1 … i+k (clipped at n-1), edges i-ascending then span-ascending
// (n ≥ 1, k ≥ 1).
func LookAhead(n, k int) Constructor {
	return func(g *core.Graph) error {
		if n < 1 {
			return fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
		}
		if k < 1 {
			return fmt.Errorf("%w: k=%d", ErrBadLookAhead, k)
		}
		if err := addRange(g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 1; j <= k && i+j < n; j++ {
				if _, err := g.AddEdge(i, i+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// ConcatIntGraphs builds the disjoint union of integer-keyed graphs,
// offsetting each graph's node identities by the total size of the graphs
// before it. Node and edge insertion order, and edge weights, carry over
// per input graph. Fails with ErrIntNodesOnly for any non-int node.
func ConcatIntGraphs(gs ...*core.Graph) (*core.Graph, error) {
	out := core.NewGraph()
	offset := 0
	for _, g := range gs {
		for _, n := range g.Nodes() {
			id, ok := n.(int)
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrIntNodesOnly, n)
			}
			if err := out.AddNode(offset + id); err != nil {
				return nil, err
			}
		}
		for _, e := range g.Edges() {
			u, ok := e.U().(int)
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrIntNodesOnly, e.U())
			}
			v, ok := e.V().(int)
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrIntNodesOnly, e.V())
			}
			if _, err := out.AddEdge(offset+u, offset+v, core.WithWeight(e.Weight())); err != nil {
				return nil, err
			}
		}
		offset += g.Len()
	}

	return out, nil
}
