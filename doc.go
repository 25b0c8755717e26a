// Package graphtide is a deterministic graph-traversal toolkit: build an
// undirected weighted graph in memory, then walk it with BFS, DFS, or
// Dijkstra and get the exact same answer on every run.
//
// 🚀 What is graphtide?
//
//	A small, focused library where every traversal is reproducible:
//		• Core primitives: insertion-ordered graphs over any comparable node identity
//		• Unweighted engines: BFS and DFS sharing one state machine
//		• Weighted engine: Dijkstra with two interchangeable strategies (array scan, lazy heap)
//		• One Result shape for all engines: parent forest, distances, visitation order,
//		  connected components, cycle flag
//		• Ordering policies: natural (insertion), ascending, descending, explicit start
//		• Topology builders: chains, b-ary trees, cycles, complete and look-ahead graphs
//
// ✨ Why choose graphtide?
//
//   - Determinism first – tie-breaks are part of the contract, not an accident
//   - Strategy-proof – both Dijkstra strategies produce byte-identical Results
//   - Sentinel errors – every failure mode is a named, wrappable error
//   - Pure Go – no cgo, the only external dependency is the test toolkit
//
// Everything is organized under four subpackages:
//
//	core/     — Graph, Edge, Node identities and mutation primitives
//	order/    — ordering policies, node comparison, the component Seeder
//	traverse/ — Walk (BFS/DFS), Dijkstra, ConnectedComponents, Result
//	builder/  — deterministic topology constructors for tests and demos
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle: BFS from 0 yields order [0 1 3 2] and flags the cycle.
//
// Dive into the per-package docs for the full determinism contract and
// the exact tie-break rules.
//
//	go get github.com/graphtide/graphtide
package graphtide
