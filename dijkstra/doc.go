// Package dijkstra seeds cart tours with single-source shortest paths over a
// complete graph.
//
// Overview:
//
//   - Seed runs Dijkstra from one source slot of a working subset (a
//     distmat.View or any Graph) and returns per-slot distances, predecessors
//     and the order in which slots were settled.
//   - Every pair of locations is connected, so relaxation is a dense pass over
//     all unsettled slots; the cost is dominated by frontier operations.
//   - The settle order (source first, then ascending distance, ties by node
//     identity) is the initial visiting order handed to 2-opt.
//
// Dijkstra does not solve the visiting-order problem. It is used as a fast,
// deterministic seed for tsp.TwoOpt on a tiny fixed graph, not as an exact
// tour solver.
//
// Numeric semantics:
//
//   - Costs are unsigned; distmat.Infinity marks unreachable slots.
//   - Additions saturate (see Relax): a relaxation through a slot already at
//     Infinity can never wrap around to a small value, so nothing is ever
//     judged better than Infinity.
//
// Options:
//
//   - Source(slot):        starting slot (default 0).
//   - WithMaxDistance(c):  stop settling once the smallest frontier key exceeds c.
//
// Errors:
//
// Seed has no runtime failure modes. An out-of-range source or an empty graph
// is a caller bug and panics with a wrapped ErrBadSource / ErrEmptyGraph.
//
// Complexity:
//
//   - Time:  O(M²): M extract-min scans of O(M) plus M·(M−1) relaxations.
//   - Space: O(M) for dist, prev, order and the frontier.
//
// Thread safety: Seed allocates all state per call and reads the graph only.
package dijkstra
