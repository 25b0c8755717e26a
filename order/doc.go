// Package order resolves abstract ordering requests into concrete node
// sequences for the traversal engines.
//
// A Policy is a closed tagged value with four variants:
//
//	Natural()  - keep the graph's insertion order (the default for
//	             neighbor expansion).
//	Asc()      - order candidates ascending by natural node ordering.
//	Desc()     - order candidates descending.
//	Start(n)   - seed the first component at n, then fall back to
//	             ascending order for every later component.
//
// Two node identities are mutually orderable when both are numeric (any
// Go integer or float kind) or both are strings. Asc and Desc over any
// other combination fail with ErrNotOrderable; traversals surface this
// before touching any traversal state.
//
// A Seeder carries the one piece of cross-component state the engines
// need: whether an explicit start has already been consumed.
package order
