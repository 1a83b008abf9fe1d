// Package core: this file declares Node, Edge, Graph, the sentinel errors,
// and the NewGraph constructor. Behavior lives in graph.go and adjacency.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates a nil *Node was passed to registration.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNilEdge indicates a nil *Edge was passed to registration.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrEmptyID indicates a node or edge identifier is the empty string.
	ErrEmptyID = errors.New("core: identifier is empty")

	// ErrDuplicateID indicates the identifier is already registered.
	// Registration never overwrites; fix the identifier and retry.
	ErrDuplicateID = errors.New("core: identifier already registered")

	// ErrDanglingEndpoint indicates an edge references a node identifier
	// that has not been registered. Register both endpoints first.
	ErrDanglingEndpoint = errors.New("core: edge endpoint not registered")

	// ErrNegativeWeight indicates an edge weight below zero. Dijkstra
	// requires non-negative weights, enforced once at registration.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrNoSuchEdge indicates a weight lookup between two nodes with no
	// connecting edge in the queried direction.
	ErrNoSuchEdge = errors.New("core: no edge between nodes")
)

// Node represents a vertex in the graph.
//
// ID uniquely identifies the Node within its Graph; it is the only payload.
// Identity equality is by ID, never by pointer. Nodes are immutable once
// registered.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string
}

// NewNode returns a Node carrying the given identifier, typically obtained
// from an ident.Provider.
func NewNode(id string) *Node {
	return &Node{ID: id}
}

// Edge represents a directed, weighted connection between two nodes.
//
// Each Edge has its own unique ID (used only as a registry key), endpoint
// node identifiers From→To, and a non-negative Weight. Edges are immutable
// once registered. Bidirectional relationships require two edges.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From is the start node identifier.
	From string

	// To is the end node identifier.
	To string

	// Weight is the non-negative cost of traversing the edge.
	// Zero is a valid weight.
	Weight float64
}

// NewEdge returns an Edge with the given identifier, endpoints, and weight.
// Validation happens at registration, not here.
func NewEdge(id, from, to string, weight float64) *Edge {
	return &Edge{ID: id, From: from, To: to, Weight: weight}
}

// Graph is the in-memory graph store: a node registry, an edge registry,
// and an adjacency index over the edges.
//
// order preserves node registration order; it is the deterministic
// tie-break contract consumed by the dijkstra frontier selector.
// adjacency maps from-ID → to-ID → edge IDs (parallel edges, registration
// order) for O(1) pair lookup; outgoing maps from-ID → edge IDs in
// registration order for deterministic neighbor enumeration.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node
	edges map[string]*Edge

	order     []string
	adjacency map[string]map[string][]string
	outgoing  map[string][]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string][]string),
		outgoing:  make(map[string][]string),
	}
}
