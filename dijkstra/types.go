// Package dijkstra: this file declares the sentinel errors, the Infinity
// sentinel, and the functional options accepted by ShortestPath.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Infinity is the "not yet reached" sentinel cost. No sum of finite edge
// weights can produce it, so equality with Infinity always means
// unreachable, never "legitimately very expensive".
var Infinity = math.Inf(1)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownStartOrEnd indicates the start or end node identifier is
	// not registered in the graph.
	ErrUnknownStartOrEnd = errors.New("dijkstra: start or end node not in graph")

	// ErrNoPathFound indicates no chain of directed edges connects the
	// start node to the end node. Reported explicitly instead of returning
	// a partial path.
	ErrNoPathFound = errors.New("dijkstra: no path between start and end")
)

// Options configures a single ShortestPath run.
//
// Ctx       – cancellation signal, checked once per finalized node.
// FullSweep – finalize every reachable node instead of exiting early once
// the end node is finalized; the returned path and cost are identical.
type Options struct {
	Ctx       context.Context
	FullSweep bool
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithContext makes the relaxation loop honor ctx. Cancellation is observed
// at most one finalized node after it fires, and the ctx error is returned.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithFullSweep disables the early exit, so the loop keeps finalizing nodes
// until no reachable unprocessed node remains. Useful for exhaustive
// diagnostics; does not change the result.
func WithFullSweep() Option {
	return func(o *Options) {
		o.FullSweep = true
	}
}

// DefaultOptions returns the Options ShortestPath starts from:
// background context, early exit enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		FullSweep: false,
	}
}
