// Package builder constructs the canonical graph topologies used to
// exercise the traversal engines: spindly trees, b-ary trees, nearly
// spindly b-ary trees, complete graphs, cycles, look-ahead graphs, and
// concatenations of integer-keyed graphs.
//
// Every constructor emits nodes 0..n-1 and edges in a stable, documented
// order, so the graph's natural (insertion) adjacency order - and with it
// every traversal result - is reproducible. All edges carry the default
// weight 1; reshape weights afterwards with Graph.SetWeight.
//
// Constructors validate their parameters and return sentinel errors; they
// never panic. Compose several over one graph with BuildGraph - node
// insertion is idempotent, so overlapping constructors overlay edges onto
// the shared 0..n-1 identity space.
package builder
