// Package dijkstra implements the shortest-path engine over core.Graph.
//
// The engine decomposes into the structures the algorithm is usually
// described with:
//
//   - cost ledger       (runner.costs)  — tentative distance per node ID,
//     reads of untouched nodes yield Infinity;
//   - predecessor map   (runner.prev)   — node ID → node that produced its
//     best known distance;
//   - processed set     (runner.done)   — nodes whose distance is final;
//   - frontier selector (runner.selectNext) — minimum-cost unprocessed node,
//     ties broken by registration order.
//
// All four are allocated fresh per call and discarded with it.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/wayline/wayline/core"
)

// ShortestPath computes one lowest-cost path from start to end in g.
//
// Returns the ordered node identifiers from start to end inclusive, the
// total path cost, and an error. Among equal-cost paths the result is the
// one whose predecessor chain was recorded first, which the deterministic
// frontier makes stable across runs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must be registered in g (ErrUnknownStartOrEnd).
//  3. end must be registered in g (ErrUnknownStartOrEnd).
//
// Non-negative weights are a graph-store invariant (core.AddEdge rejects
// negative weights), so the engine does not re-scan the edge set.
//
// Complexity: O(V² + E) time, O(V) additional space.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) ([]string, float64, error) {
	// 1) Build Options from defaults plus caller overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, 0, fmt.Errorf("%w: start %q", ErrUnknownStartOrEnd, start)
	}
	if !g.HasNode(end) {
		return nil, 0, fmt.Errorf("%w: end %q", ErrUnknownStartOrEnd, end)
	}

	// 3) Allocate per-query state. order is snapshotted once; it is the
	//    deterministic tie-break for every frontier decision in this run.
	order := g.NodeIDs()
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		order:   order,
		costs:   make(map[string]float64, len(order)),
		prev:    make(map[string]string, len(order)),
		done:    make(map[string]struct{}, len(order)),
	}

	// 4) Seed the ledger and run the relaxation loop.
	r.costs[start] = 0
	if err := r.process(); err != nil {
		return nil, 0, err
	}

	// 5) Walk the predecessor chain backwards into a start→end path.
	return r.reconstruct()
}

// runner holds the mutable state of a single ShortestPath execution.
type runner struct {
	g       *core.Graph
	options Options
	start   string
	end     string

	order []string            // node IDs, registration order (tie-break)
	costs map[string]float64  // cost ledger; absent key reads as Infinity
	prev  map[string]string   // predecessor map
	done  map[string]struct{} // processed set
}

// costOf returns the tentative distance of id, or Infinity if the node has
// never been touched by relaxation.
func (r *runner) costOf(id string) float64 {
	if c, ok := r.costs[id]; ok {
		return c
	}

	return Infinity
}

// selectNext is the frontier selector: among registered nodes not yet in
// the processed set it returns the one with minimum tentative cost.
//
// The scan follows registration order and improves only on strictly
// smaller costs, so equal-cost candidates resolve to the earliest
// registered. A node with infinite cost is never selected — once only
// unreached nodes remain the algorithm is finished.
func (r *runner) selectNext() (string, bool) {
	best := ""
	bestCost := Infinity
	for _, id := range r.order {
		if _, processed := r.done[id]; processed {
			continue
		}
		if c := r.costOf(id); c < bestCost {
			best, bestCost = id, c
		}
	}

	return best, best != ""
}

// process runs the relaxation loop: finalize the frontier minimum, relax
// its outgoing neighbors, repeat.
//
// Termination:
//   - selectNext finds no finite-cost unprocessed node (all reachable
//     nodes finalized), or
//   - the end node is finalized (unless FullSweep), or
//   - the context is cancelled; checked once per finalized node, the only
//     point where no relaxation is mid-flight.
func (r *runner) process() error {
	for {
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}

		u, ok := r.selectNext()
		if !ok {
			return nil
		}
		r.done[u] = struct{}{}

		// Once end is the frontier minimum its cost is final: every
		// remaining weight is non-negative, so no later relaxation can
		// improve it. Its outgoing edges need no relaxing either.
		if u == r.end && !r.options.FullSweep {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax attempts to improve the tentative cost of every outgoing neighbor
// of u. An improvement overwrites both the ledger entry and the neighbor's
// predecessor: the better distance supersedes the old path entirely.
//
// Assumes costs[u] is final before the call.
func (r *runner) relax(u string) error {
	base := r.costOf(u)
	for _, v := range r.g.NeighborIDs(u) {
		w, err := r.g.WeightBetween(u, v)
		if err != nil {
			// Unreachable while the graph is not mutated mid-query;
			// surface it rather than mask a torn read.
			return fmt.Errorf("dijkstra: weight lookup %s→%s: %w", u, v, err)
		}

		if candidate := base + w; candidate < r.costOf(v) {
			r.costs[v] = candidate
			r.prev[v] = u
		}
	}

	return nil
}

// reconstruct walks the predecessor map backwards from end until start,
// then reverses the collected identifiers.
//
// A broken chain or an infinite end cost means the end node was never
// reached: that is ErrNoPathFound, never a truncated path.
func (r *runner) reconstruct() ([]string, float64, error) {
	total := r.costOf(r.end)
	if math.IsInf(total, 1) {
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrNoPathFound, r.start, r.end)
	}

	path := []string{r.end}
	for cur := r.end; cur != r.start; {
		p, ok := r.prev[cur]
		if !ok {
			return nil, 0, fmt.Errorf("%w: predecessor chain broken at %q", ErrNoPathFound, cur)
		}
		path = append(path, p)
		cur = p
	}

	// Reverse in place: collected end→start, contract is start→end.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}
