// Package tsp improves and scores cart visiting orders.
//
// A tour is an open slice of distinct vertices 0..n-1 read cyclically: the
// last vertex connects back to the first. Vertices are whatever the Weigher
// indexes, either graph slots of a distmat.View, or matrix indices of a
// distmat.Matrix.
//
//   - TourCost: total cyclic cost including the wraparound edge.
//   - PathCost: open-path cost, for callers that treat return-to-base as free.
//   - TwoOpt  : 2-opt local search bounded by a pass budget, in place.
//
// Costs may break the triangle inequality (elevator, floor and atrium
// penalties), so 2-opt reaches a local optimum only. It never increases the
// tour cost.
package tsp
