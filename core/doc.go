// Package core defines the central Graph, Node, and Edge types and provides
// thread-safe primitives for building and querying directed weighted graphs.
//
// Overview:
//
//   - A Graph is a pair of identifier-keyed registries — one for nodes, one
//     for edges — plus an adjacency index derived from the edge registry.
//   - Nodes carry nothing but their identifier. Edges are directed and carry
//     a non-negative float64 weight. Both are immutable once registered.
//   - Edges reference their endpoints by node ID, never by pointer, so every
//     registered object is owned exclusively by its Graph.
//
// Determinism:
//
//   - NodeIDs() returns node identifiers in registration order. Algorithms
//     that need a stable tie-break (frontier selection in dijkstra) iterate
//     that slice rather than a Go map.
//   - NeighborIDs(id) returns unique neighbor IDs in edge-registration order.
//   - WeightBetween(from, to) resolves parallel edges to the minimum weight.
//
// Registration policy:
//
//   - Identifier collisions fail with ErrDuplicateID; nothing is overwritten.
//   - An edge may only be registered after both of its endpoints
//     (ErrDanglingEndpoint otherwise), which keeps the registries
//     referentially intact at all times.
//   - Negative weights are rejected at registration (ErrNegativeWeight);
//     since edges are immutable, shortest-path queries never re-validate.
//   - Self-loops and parallel edges are permitted.
//
// Concurrency:
//
//   - All Graph methods are guarded by a single sync.RWMutex, so graphs may
//     be built from several goroutines. After construction the usual pattern
//     is read-only sharing: any number of concurrent queries may use one
//     Graph as long as nobody registers while they run.
//
// Errors (sentinel):
//
//   - ErrNilNode / ErrNilEdge    — nil pointer passed to registration.
//   - ErrEmptyID                 — node or edge identifier is "".
//   - ErrDuplicateID             — identifier already registered.
//   - ErrDanglingEndpoint        — edge endpoint not registered as a node.
//   - ErrNegativeWeight          — edge weight below zero.
//   - ErrNoSuchEdge              — weight lookup between non-adjacent nodes.
package core
