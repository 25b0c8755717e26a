package traverse_test

import (
	"fmt"

	"github.com/graphtide/graphtide/builder"
	"github.com/graphtide/graphtide/core"
	"github.com/graphtide/graphtide/order"
	"github.com/graphtide/graphtide/traverse"
)

// ExampleWalk_levels demonstrates BFS layering on a complete binary tree:
// the root first, then its children, then the grandchildren.
func ExampleWalk_levels() {
	g, err := builder.BuildGraph(builder.BAryTree(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := traverse.Walk(g, traverse.BFS)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println(res.Dist[6])
	// Output:
	// [0 1 2 3 4 5 6]
	// 2
}

// ExampleWalk_components partitions a forest of two chains and an isolated
// node, seeding each component in ascending order.
func ExampleWalk_components() {
	a, _ := builder.BuildGraph(builder.SpindlyTree(3))
	b, _ := builder.BuildGraph(builder.SpindlyTree(2))
	c, _ := builder.BuildGraph(builder.Nodes(1))
	g, err := builder.ConcatIntGraphs(a, b, c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := traverse.Walk(g, traverse.DFS)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Components)
	fmt.Println(res.ContainsCycle)
	// Output:
	// [[0 1 2] [3 4] [5]]
	// false
}

// ExampleDijkstra_weights shows how edge weights reshape the settlement
// order of a binary tree without changing its parent forest.
func ExampleDijkstra_weights() {
	g, err := builder.BuildGraph(builder.BAryTree(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = g.SetWeight(0, 1, 2); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := traverse.Dijkstra(g, traverse.LazyHeap)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println(res.Dist[4])
	// Output:
	// [0 2 1 5 6 3 4]
	// 3
}

// ExampleDijkstra_pathTo reconstructs the cheapest route across a small
// weighted mesh, starting from an explicitly chosen node.
func ExampleDijkstra_pathTo() {
	g := core.NewGraph()
	if err := g.AddNode("hub", "east", "west", "far"); err != nil {
		fmt.Println("error:", err)
		return
	}
	g.AddEdge("hub", "east", core.WithWeight(4))
	g.AddEdge("hub", "west", core.WithWeight(1))
	g.AddEdge("west", "east", core.WithWeight(1))
	g.AddEdge("east", "far", core.WithWeight(2))

	res, err := traverse.Dijkstra(g, traverse.ArrayScan,
		traverse.WithSeedPolicy(order.Start("hub")),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := res.PathTo("far")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	fmt.Println(res.Dist["far"])
	// Output:
	// [hub west east far]
	// 4
}
