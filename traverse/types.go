// Package traverse type declarations: traversal kinds, Dijkstra
// strategies, functional options, the Result snapshot, and sentinel
// errors.

package traverse

import (
	"errors"
	"fmt"

	"github.com/graphtide/graphtide/core"
	"github.com/graphtide/graphtide/order"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrUnsupportedKind is returned for a traversal kind outside BFS/DFS.
	ErrUnsupportedKind = errors.New("traverse: unsupported traversal kind")

	// ErrUnknownStrategy is returned for an unrecognized Dijkstra strategy.
	ErrUnknownStrategy = errors.New("traverse: unknown dijkstra strategy")

	// ErrUnreached is returned by Result.PathTo for a node the traversal
	// never produced (possible only on partial or foreign Results).
	ErrUnreached = errors.New("traverse: node not present in result")
)

// Kind selects the pending-set discipline of the unweighted engine:
// FIFO for BFS, LIFO for DFS. Everything else - marking, parents, levels,
// cycle observations - is shared.
type Kind uint8

const (
	BFS Kind = iota
	DFS
)

// String names the kind, for error context.
func (k Kind) String() string {
	switch k {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Strategy selects the Dijkstra minimum-extraction mechanism. Both
// strategies implement the same relaxation and tie-break semantics and
// yield identical Results.
type Strategy uint8

const (
	// ArrayScan selects the minimum tentative distance by a full scan of
	// the discovered set each iteration. Simpler; the reference strategy.
	ArrayScan Strategy = iota

	// LazyHeap keeps (distance, discovery sequence) entries in a binary
	// heap and discards stale entries at pop time instead of decreasing
	// keys in place.
	LazyHeap
)

// String names the strategy, for error context.
func (s Strategy) String() string {
	switch s {
	case ArrayScan:
		return "ArrayScan"
	case LazyHeap:
		return "LazyHeap"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Parent is an explicit optional parent link. Component roots carry the
// zero Parent (Valid == false); every other visited node records the node
// that discovered it.
type Parent struct {
	Node  core.Node
	Valid bool
}

// ParentOf is shorthand for a valid parent link, mostly for tests and
// expected-value tables.
func ParentOf(n core.Node) Parent { return Parent{Node: n, Valid: true} }

// Result is the immutable snapshot produced by one traversal call.
//
//   - Parents: node → optional parent; roots map to the zero Parent.
//   - Dist: node → hop count (Walk) or cumulative weighted distance
//     (Dijkstra).
//   - Order: every node exactly once, in visitation (Walk) or settlement
//     (Dijkstra) order.
//   - Components: Order partitioned by connected component, in seed order.
//   - ContainsCycle: true iff some edge connects two already-discovered
//     nodes and is not the tree edge that discovered the later one; this
//     counts self-loops and parallel edges.
type Result struct {
	Parents       map[core.Node]Parent
	Dist          map[core.Node]float64
	Order         []core.Node
	Components    [][]core.Node
	ContainsCycle bool
}

// newResult allocates a Result with capacity hints for n nodes.
func newResult(n int) *Result {
	return &Result{
		Parents: make(map[core.Node]Parent, n),
		Dist:    make(map[core.Node]float64, n),
		Order:   make([]core.Node, 0, n),
	}
}

// PathTo reconstructs the tree path from dest's component root to dest by
// following parent links. Returns ErrUnreached if dest is absent.
func (r *Result) PathTo(dest core.Node) ([]core.Node, error) {
	if _, ok := r.Parents[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	// walk up, then reverse
	var path []core.Node
	for cur := dest; ; {
		path = append(path, cur)
		p := r.Parents[cur]
		if !p.Valid {
			break
		}
		cur = p.Node
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds the ordering policies for one traversal call.
type Options struct {
	// Seed resolves the root of each connected component among the
	// currently unvisited nodes.
	Seed order.Policy

	// Neighbor orders each node's adjacency list at expansion time.
	Neighbor order.Policy
}

// DefaultOptions returns the standard policies: ascending seeds, natural
// (insertion-order) neighbor expansion.
func DefaultOptions() Options {
	return Options{
		Seed:     order.Asc(),
		Neighbor: order.Natural(),
	}
}

// WithSeedPolicy sets the component-root selection policy.
func WithSeedPolicy(p order.Policy) Option {
	return func(o *Options) { o.Seed = p }
}

// WithNeighborPolicy sets the neighbor expansion policy.
func WithNeighborPolicy(p order.Policy) Option {
	return func(o *Options) { o.Neighbor = p }
}
