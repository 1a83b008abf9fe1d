// Package wayline computes single-source shortest paths over static,
// weighted, directed graphs held entirely in memory.
//
// The library is a small graph-algorithms core: callers register nodes and
// edges, designate a start and an end node, and ask for the lowest-cost
// path between them.
//
// Everything is organized under three subpackages:
//
//	core/     — the graph store: Node and Edge registries, adjacency and
//	            weight lookup, deterministic registration order
//	dijkstra/ — the shortest-path engine: cost ledger, predecessor map,
//	            frontier selection and path reconstruction
//	ident/    — identifier generation for nodes and edges (UUID-backed,
//	            plus a sequential provider for tests and demos)
//
// Quick ASCII example:
//
//	A ──5── B ──3── C
//
//	ShortestPath(A, C) = [A, B, C], total cost 8.
//
// Design rules the whole module follows:
//
//   - Edges are always directed; a bidirectional relationship is two edges.
//   - Edge weights are non-negative float64 values; weight 0 is valid.
//   - Nodes and edges are referenced by identifier everywhere — never by
//     pointer — so the graph store alone owns every object it registers.
//   - The graph is built once and treated as read-only for the duration of
//     a query; concurrent queries may share one graph but never share the
//     per-query state the engine allocates.
//
//	go get github.com/wayline/wayline
package wayline
