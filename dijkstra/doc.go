// Package dijkstra computes the lowest-cost path between two designated
// nodes of a core.Graph using Dijkstra's algorithm.
//
// Overview:
//
//   - ShortestPath runs a single-source relaxation loop from the start node
//     and reconstructs one shortest path to the end node from the recorded
//     predecessor chain.
//   - The engine finalizes one node per iteration: the frontier selector
//     picks the unprocessed node with the minimum tentative cost, every
//     outgoing neighbor is relaxed, and the node enters the processed set.
//   - Once the end node itself is finalized the loop exits early — with
//     non-negative weights no later relaxation can improve its cost.
//     WithFullSweep disables the early exit when an exhaustive sweep over
//     all reachable nodes is wanted.
//
// Determinism:
//
//   - Ties in frontier selection resolve to the earliest-registered node
//     (the graph store's registration order), so repeated queries over an
//     unmodified graph return byte-identical paths.
//   - Parallel edges resolve to the minimum weight (core.WeightBetween).
//
// Numeric semantics:
//
//   - Costs and weights are float64. The "not yet reached" sentinel is
//     Infinity (math.Inf(1)), which no sum of finite edge weights can
//     produce, and which saturates instead of overflowing.
//
// Errors (sentinel):
//
//   - ErrNilGraph          — nil *core.Graph.
//   - ErrUnknownStartOrEnd — start or end node absent from the graph.
//   - ErrNoPathFound       — the end node is unreachable from the start;
//     never a partial or malformed path.
//
// Concurrency:
//
//   - Each call allocates its own cost ledger, predecessor map, and
//     processed set; concurrent calls may safely share one read-only
//     Graph. Cancellation is honored via WithContext, checked once per
//     finalized node — the only safe suspension point in the loop.
//
// Complexity:
//
//   - Time O(V² + E): the frontier selector is a linear scan over the
//     registration-order node slice. The scan is what makes the documented
//     tie-break exact; at the graph sizes this core targets it also beats
//     a heap's constant factors.
//   - Space O(V) beyond the graph itself.
package dijkstra
