// Package traverse computes deterministic whole-graph traversals over a
// core.Graph: breadth-first and depth-first exploration (Walk) and
// weighted shortest-path relaxation (Dijkstra), both driven by the same
// component aggregator and the same order.Policy seed/neighbor contract.
//
// Every call returns a fresh Result holding five co-indexed views of the
// traversal: a parent-pointer forest, a distance/level map, the total
// visitation (or settlement) order, the by-component partition of that
// order, and a cycle flag. All nodes are visited exactly once; the
// aggregator restarts from a fresh seed for every connected component
// until none remain.
//
// Determinism contract:
//
//   - Seeds resolve through the order.Seeder rules (ascending by default;
//     an explicit start applies to the first component only).
//   - Neighbor expansion follows the neighbor policy at every step
//     (graph insertion order by default).
//   - Dijkstra breaks equal-distance ties by discovery order: among
//     candidates with the minimum tentative distance, the node that was
//     discovered earliest settles first. Relaxation uses strict less-than,
//     so an equal-cost alternative path never replaces a recorded parent.
//
// Dijkstra ships two independently implemented selection strategies,
// ArrayScan and LazyHeap. They share the relaxation and tie-break rules
// above and therefore produce identical Results for every input; the test
// suite asserts this equivalence across the fixture battery.
//
// Complexity:
//
//   - Walk:               O(V + E) plus O(E log E) when a sorted neighbor
//     policy is requested.
//   - Dijkstra/ArrayScan: O(V² + E).
//   - Dijkstra/LazyHeap:  O((V + E) log V) with lazy invalidation of
//     stale heap entries.
//
// All calls are synchronous and run to completion; no state is shared
// between calls, so concurrent traversals of distinct graphs are safe.
package traverse
