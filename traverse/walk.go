// Unweighted traversal engine: BFS and DFS share one state machine and
// differ only in the pending-set discipline (FIFO vs LIFO).

package traverse

import (
	"fmt"

	"github.com/graphtide/graphtide/core"
	"github.com/graphtide/graphtide/order"
)

// walker encapsulates mutable state for one Walk call.
type walker struct {
	graph    *core.Graph
	kind     Kind
	opts     Options
	visited  map[core.Node]bool
	treeEdge map[core.Node]*core.Edge // edge that discovered the node
	res      *Result
}

// Walk runs a full-graph BFS or DFS over g, restarting from a fresh seed
// for every connected component until all nodes are visited.
//
// Returns ErrNilGraph or ErrUnsupportedKind for invalid input,
// order.ErrNotOrderable when a sorted policy is requested over mutually
// incomparable node identities (surfaced before any traversal state is
// built), and order.ErrInvalidStart for a bad explicit start.
// An empty graph yields an empty Result with ContainsCycle == false.
func Walk(g *core.Graph, kind Kind, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if kind != BFS && kind != DFS {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	if err := precheckOrderable(nodes, o); err != nil {
		return nil, err
	}

	w := &walker{
		graph:    g,
		kind:     kind,
		opts:     o,
		visited:  make(map[core.Node]bool, len(nodes)),
		treeEdge: make(map[core.Node]*core.Edge, len(nodes)),
		res:      newResult(len(nodes)),
	}
	err := seedLoop(nodes, o.Seed,
		func(n core.Node) bool { return w.visited[n] },
		w.component,
	)
	if err != nil {
		return nil, err
	}

	return w.res, nil
}

// component explores one connected component rooted at root.
//
// The root is recorded in the order immediately on selection. Each popped
// node expands its neighbors in policy order: an unvisited neighbor is
// discovered (parent set, level = parent level + 1, appended to the
// order, pushed pending); any edge leading back to an already-visited
// node other than the current node's own discovery edge is a non-tree
// edge and flags the cycle bit. Self-loops and parallel edges therefore
// count as cycles.
func (w *walker) component(root core.Node) error {
	w.visited[root] = true
	w.res.Parents[root] = Parent{}
	w.res.Dist[root] = 0
	comp := []core.Node{root}
	pending := []core.Node{root}

	for len(pending) > 0 {
		var u core.Node
		if w.kind == BFS {
			u, pending = pending[0], pending[1:]
		} else {
			u, pending = pending[len(pending)-1], pending[:len(pending)-1]
		}

		edges, err := w.graph.Neighbors(u)
		if err != nil {
			return fmt.Errorf("traverse: Neighbors(%v): %w", u, err)
		}
		if err = order.SortEdges(edges, u, w.opts.Neighbor); err != nil {
			return err
		}

		for _, e := range edges {
			v := e.Other(u)
			if !w.visited[v] {
				w.visited[v] = true
				w.res.Parents[v] = Parent{Node: u, Valid: true}
				w.res.Dist[v] = w.res.Dist[u] + 1
				w.treeEdge[v] = e
				comp = append(comp, v)
				pending = append(pending, v)
				continue
			}
			if e != w.treeEdge[u] {
				w.res.ContainsCycle = true
			}
		}
	}

	w.res.Order = append(w.res.Order, comp...)
	w.res.Components = append(w.res.Components, comp)

	return nil
}
