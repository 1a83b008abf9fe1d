// File: adjacency.go
// Role: Neighborhood APIs (NeighborIDs, WeightBetween).
// Determinism:
//   - NeighborIDs(id) returns unique end-point IDs in edge-registration order.
//   - WeightBetween(from, to) resolves parallel edges to the minimum weight.
package core

import "fmt"

// NeighborIDs returns the unique end-point identifiers of every edge whose
// start point is the given node, in edge-registration order.
//
// Behavior highlights:
//   - Unknown node or no outgoing edges → empty slice, never an error; the
//     distinction carries no meaning for traversal and callers that care
//     can ask HasNode first.
//   - Parallel edges contribute their shared end point once.
//   - A self-loop makes a node its own neighbor.
//
// Complexity: O(d) where d is the number of outgoing edges.
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.outgoing[id]
	if len(ids) == 0 {
		return nil
	}

	// Walk outgoing edges in registration order, deduplicating so
	// parallel edges contribute their end point once.
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, eid := range ids {
		to := g.edges[eid].To
		if _, dup := seen[to]; dup {
			continue
		}
		seen[to] = struct{}{}
		out = append(out, to)
	}

	return out
}

// WeightBetween returns the weight of an edge from `from` to `to`.
//
// Parallel-edge policy: when several edges connect the same ordered pair,
// the minimum weight wins — the one a shortest-path relaxation would pick.
//
// Returns ErrNoSuchEdge (wrapped with both identifiers) when no edge
// connects the pair in that direction.
//
// Complexity: O(p) where p is the number of parallel edges for the pair.
func (g *Graph) WeightBetween(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.adjacency[from][to]
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: %s→%s", ErrNoSuchEdge, from, to)
	}

	min := g.edges[ids[0]].Weight
	for _, eid := range ids[1:] {
		if w := g.edges[eid].Weight; w < min {
			min = w
		}
	}

	return min, nil
}
