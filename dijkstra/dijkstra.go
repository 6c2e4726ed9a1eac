package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/cartroute/distmat"
	"github.com/katalvlaran/cartroute/frontier"
)

// Seed computes shortest distances from the source slot to every slot of g.
//
// Steps:
//  1. dist[source] = 0, every other slot Infinity; all slots enter the frontier.
//  2. Repeatedly extract the minimum slot u and settle it.
//  3. For every unsettled v ≠ u: alt = dist[u] ⊕ cost(u,v) (saturating);
//     if alt < dist[v], set dist[v], prev[v] = u and decrease v's key.
//  4. Stop when the frontier is empty or its minimum exceeds MaxDistance.
//
// Panics with ErrEmptyGraph or ErrBadSource on invalid input.
//
// Complexity: O(M²) time, O(M) space.
func Seed(g Graph, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := g.Len()
	if m <= 0 {
		panic(ErrEmptyGraph)
	}
	if cfg.Source < 0 || cfg.Source >= m {
		panic(fmt.Errorf("dijkstra.Seed: source %d of %d slots: %w", cfg.Source, m, ErrBadSource))
	}

	r := &runner{
		g:   g,
		cfg: cfg,
		res: Result{
			Source: cfg.Source,
			Dist:   make([]distmat.Cost, m),
			Prev:   make([]distmat.Node, m),
			Order:  make([]int, 0, m),
			Nodes:  make([]distmat.Node, m),
		},
		pq: frontier.New(m),
	}
	r.init()
	r.process()

	return r.res
}

// runner holds the mutable state of one Seed execution.
type runner struct {
	g   Graph
	cfg Options
	res Result
	pq  *frontier.Frontier
}

// init fills every slot with Infinity / self-predecessor and loads the frontier.
func (r *runner) init() {
	var (
		s int
		n distmat.Node
	)
	for s = 0; s < len(r.res.Dist); s++ {
		n = r.g.Node(s)
		r.res.Nodes[s] = n
		r.res.Prev[s] = n
		r.res.Dist[s] = distmat.Infinity
	}
	r.res.Dist[r.cfg.Source] = 0
	for s = 0; s < len(r.res.Dist); s++ {
		r.pq.Insert(r.res.Nodes[s], r.res.Dist[s])
	}
}

// process settles slots in key order and relaxes the rest of the graph.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		n, d, _ := r.pq.ExtractMin()
		if d > r.cfg.MaxDistance {
			break
		}
		u := int(n.Slot)
		r.res.Order = append(r.res.Order, u)
		r.relax(u)
	}
}

// relax tries every unsettled slot through u.
func (r *runner) relax(u int) {
	var (
		v   int
		alt distmat.Cost
		ok  bool
	)
	for v = 0; v < len(r.res.Dist); v++ {
		if v == u || r.pq.Settled(r.res.Nodes[v]) {
			continue
		}
		alt, ok = Relax(r.res.Dist[u], r.g.Cost(u, v), r.res.Dist[v])
		if !ok {
			continue
		}
		r.res.Dist[v] = alt
		r.res.Prev[v] = r.res.Nodes[u]
		r.pq.DecreaseKey(r.res.Nodes[v], alt)
	}
}

// Relax returns du+w (saturating at Infinity) and whether it strictly
// improves on dv. A saturated candidate never improves anything.
// Complexity: O(1).
func Relax(du, w, dv distmat.Cost) (distmat.Cost, bool) {
	alt := distmat.SatAdd(du, w)

	return alt, alt < dv
}
