// Weighted shortest-path engine. Two independently implemented selection
// strategies (array scan vs lazy-deletion heap) share one relaxation and
// tie-break contract and must produce identical Results for any input.

package traverse

import (
	"container/heap"
	"fmt"

	"github.com/graphtide/graphtide/core"
	"github.com/graphtide/graphtide/order"
)

// Dijkstra runs a full-graph weighted shortest-path traversal over g,
// one connected component per seed, using the selection strategy.
//
// Settlement order is deterministic: among discovered unsettled nodes the
// minimum tentative distance wins, with equal distances broken by
// discovery order (earliest discovered first). Relaxation uses strict
// less-than, so an equal-cost alternative never replaces a recorded
// parent - first found at minimum cost wins.
//
// Returns ErrNilGraph or ErrUnknownStrategy for invalid input, and
// order.ErrNotOrderable / order.ErrInvalidStart under the same conditions
// as Walk. Edge weights are guaranteed non-negative by core.Graph.
func Dijkstra(g *core.Graph, strategy Strategy, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if strategy != ArrayScan && strategy != LazyHeap {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	if err := precheckOrderable(nodes, o); err != nil {
		return nil, err
	}

	d := &dijkstraWalker{
		graph:    g,
		opts:     o,
		settled:  make(map[core.Node]bool, len(nodes)),
		seq:      make(map[core.Node]int, len(nodes)),
		treeEdge: make(map[core.Node]*core.Edge, len(nodes)),
		res:      newResult(len(nodes)),
	}
	explore := d.componentArrayScan
	if strategy == LazyHeap {
		explore = d.componentLazyHeap
	}
	err := seedLoop(nodes, o.Seed,
		func(n core.Node) bool { return d.settled[n] },
		explore,
	)
	if err != nil {
		return nil, err
	}

	return d.res, nil
}

// dijkstraWalker holds mutable state for one Dijkstra call. res.Dist
// doubles as the live tentative-distance map; presence of a key marks a
// node discovered, and settled values are never revised afterwards.
type dijkstraWalker struct {
	graph    *core.Graph
	opts     Options
	settled  map[core.Node]bool
	seq      map[core.Node]int // discovery sequence, assigned once
	nextSeq  int
	treeEdge map[core.Node]*core.Edge
	res      *Result
}

// discoverRoot seeds a new component: dist 0, no parent, next sequence.
func (d *dijkstraWalker) discoverRoot(root core.Node) {
	d.res.Dist[root] = 0
	d.res.Parents[root] = Parent{}
	d.seq[root] = d.nextSeq
	d.nextSeq++
}

// componentArrayScan settles one component by scanning the discovered
// list each iteration. Scanning in discovery order with a strict
// less-than comparison yields the earliest-discovered node among the
// minimum-distance candidates, which is exactly the tie-break contract.
func (d *dijkstraWalker) componentArrayScan(root core.Node) error {
	d.discoverRoot(root)
	discovered := []core.Node{root}
	var comp []core.Node

	for {
		var u core.Node
		found := false
		for _, n := range discovered {
			if d.settled[n] {
				continue
			}
			if !found || d.res.Dist[n] < d.res.Dist[u] {
				u, found = n, true
			}
		}
		if !found {
			break
		}

		d.settled[u] = true
		comp = append(comp, u)
		err := d.relax(u, func(v core.Node, fresh bool) {
			if fresh {
				discovered = append(discovered, v)
			}
		})
		if err != nil {
			return err
		}
	}

	d.res.Order = append(d.res.Order, comp...)
	d.res.Components = append(d.res.Components, comp)

	return nil
}

// componentLazyHeap settles one component via a binary heap keyed by
// (tentative distance, discovery sequence). Improvements push fresh
// entries instead of decreasing keys; an entry popped whose recorded
// distance no longer matches the live tentative distance is stale and is
// discarded unprocessed.
func (d *dijkstraWalker) componentLazyHeap(root core.Node) error {
	d.discoverRoot(root)
	pq := make(nodeHeap, 0, 8)
	heap.Init(&pq)
	heap.Push(&pq, &heapEntry{node: root, dist: 0, seq: d.seq[root]})
	var comp []core.Node

	for pq.Len() > 0 {
		ent := heap.Pop(&pq).(*heapEntry)
		u := ent.node
		if d.settled[u] || ent.dist != d.res.Dist[u] {
			continue // stale entry
		}

		d.settled[u] = true
		comp = append(comp, u)
		err := d.relax(u, func(v core.Node, _ bool) {
			heap.Push(&pq, &heapEntry{node: v, dist: d.res.Dist[v], seq: d.seq[v]})
		})
		if err != nil {
			return err
		}
	}

	d.res.Order = append(d.res.Order, comp...)
	d.res.Components = append(d.res.Components, comp)

	return nil
}

// relax processes every edge incident to the just-settled node u in
// neighbor-policy order. An unsettled neighbor is discovered or improved
// under strict less-than; onUpdate tells the strategy about the new
// tentative distance (fresh == true on first discovery). An edge to an
// already-settled node that is not u's own discovery edge is a non-tree
// edge and flags the cycle bit; self-loops and parallel edges land here.
func (d *dijkstraWalker) relax(u core.Node, onUpdate func(v core.Node, fresh bool)) error {
	edges, err := d.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("traverse: Neighbors(%v): %w", u, err)
	}
	if err = order.SortEdges(edges, u, d.opts.Neighbor); err != nil {
		return err
	}

	du := d.res.Dist[u]
	for _, e := range edges {
		v := e.Other(u)
		if d.settled[v] {
			if e != d.treeEdge[u] {
				d.res.ContainsCycle = true
			}
			continue
		}

		next := du + e.Weight()
		cur, seen := d.res.Dist[v]
		switch {
		case !seen:
			d.res.Dist[v] = next
			d.seq[v] = d.nextSeq
			d.nextSeq++
			d.res.Parents[v] = Parent{Node: u, Valid: true}
			d.treeEdge[v] = e
			onUpdate(v, true)
		case next < cur:
			d.res.Dist[v] = next
			d.res.Parents[v] = Parent{Node: u, Valid: true}
			d.treeEdge[v] = e
			onUpdate(v, false)
		}
	}

	return nil
}

// heapEntry is one (node, distance, discovery sequence) tuple in the lazy
// priority queue.
type heapEntry struct {
	node core.Node
	dist float64
	seq  int
}

// nodeHeap is a min-heap of *heapEntry ordered by distance, then by
// discovery sequence so equal-distance pops follow discovery order.
type nodeHeap []*heapEntry

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*heapEntry)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
