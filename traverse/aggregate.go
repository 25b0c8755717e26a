// Component aggregation shared by Walk and Dijkstra: repeated seed
// resolution over the unvisited set, one engine invocation per component.

package traverse

import (
	"github.com/graphtide/graphtide/core"
	"github.com/graphtide/graphtide/order"
)

// seedLoop drives component explorations until every node is visited.
// nodes is the full node set in insertion order; isVisited reflects the
// engine's live visited state; explore runs one full component from the
// chosen root and marks its nodes visited.
func seedLoop(
	nodes []core.Node,
	seed order.Policy,
	isVisited func(core.Node) bool,
	explore func(root core.Node) error,
) error {
	seeder := order.NewSeeder(seed)
	for {
		var unvisited []core.Node
		for _, n := range nodes {
			if !isVisited(n) {
				unvisited = append(unvisited, n)
			}
		}
		if len(unvisited) == 0 {
			return nil
		}
		root, err := seeder.Next(unvisited)
		if err != nil {
			return err
		}
		if err = explore(root); err != nil {
			return err
		}
	}
}

// precheckOrderable fails fast with order.ErrNotOrderable when a sorted
// policy is requested over a node set that is not mutually orderable, so
// no traversal state is built for a doomed call.
func precheckOrderable(nodes []core.Node, o Options) error {
	if !o.Seed.Ordered() && !o.Neighbor.Ordered() {
		return nil
	}

	return order.Comparable(nodes)
}
