// File: graph.go
// Role: Registration (AddNode/AddNodes, AddEdge/AddEdges) and registry
// accessors (HasNode, NodeIDs, Edges, counts).
// Determinism:
//   - NodeIDs() returns identifiers in registration order.
//   - Edges() order is unspecified; adjacency enumeration order is not.
package core

import "fmt"

// AddNode registers a node in the graph.
//
// Validation order:
//  1. n must be non-nil (ErrNilNode).
//  2. n.ID must be non-empty (ErrEmptyID).
//  3. n.ID must not collide with a registered node (ErrDuplicateID).
//
// On success the node's identifier is appended to the registration order
// used as the deterministic tie-break by frontier selection.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrEmptyID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: node %q", ErrDuplicateID, n.ID)
	}

	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)

	return nil
}

// AddNodes registers each node in turn, stopping at the first failure.
// Nodes registered before the failure remain registered.
func (g *Graph) AddNodes(ns ...*Node) error {
	for _, n := range ns {
		if err := g.AddNode(n); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge registers a directed edge in the graph.
//
// Validation order:
//  1. e must be non-nil (ErrNilEdge).
//  2. e.ID, e.From, e.To must be non-empty (ErrEmptyID).
//  3. e.Weight must be ≥ 0 (ErrNegativeWeight) — the Dijkstra precondition,
//     enforced here once so queries never re-scan the edge set.
//  4. e.ID must not collide with a registered edge (ErrDuplicateID).
//  5. Both endpoints must already be registered nodes (ErrDanglingEndpoint).
//
// Self-loops and parallel edges are permitted; parallel edges are resolved
// by WeightBetween under the minimum-weight policy.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.ID == "" || e.From == "" || e.To == "" {
		return ErrEmptyID
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.edges[e.ID]; exists {
		return fmt.Errorf("%w: edge %q", ErrDuplicateID, e.ID)
	}
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("%w: start node %q", ErrDanglingEndpoint, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("%w: end node %q", ErrDanglingEndpoint, e.To)
	}

	g.edges[e.ID] = e
	if g.adjacency[e.From] == nil {
		g.adjacency[e.From] = make(map[string][]string)
	}
	g.adjacency[e.From][e.To] = append(g.adjacency[e.From][e.To], e.ID)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.ID)

	return nil
}

// AddEdges registers each edge in turn, stopping at the first failure.
// Edges registered before the failure remain registered.
func (g *Graph) AddEdges(es ...*Edge) error {
	for _, e := range es {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}

	return nil
}

// HasNode reports whether a node with the given identifier is registered.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// NodeIDs returns all registered node identifiers in registration order.
// The returned slice is a copy and safe to retain.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns all registered edges. Order is unspecified; callers needing
// determinism should go through NeighborIDs/WeightBetween instead.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}

	return out
}

// NodeCount returns the number of registered nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of registered edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
