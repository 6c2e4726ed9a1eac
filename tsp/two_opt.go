// Package tsp: 2-opt local search on an open cyclic tour.
//
// TwoOpt performs deterministic 2-opt over positions (i, i+1) and (j, j+1)
// with i+2 ≤ j, where position n wraps to 0:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d),  a=T[i], b=T[i+1], c=T[j], d=T[(j+1) mod n]
//
// A negative Δ reverses T[i+1..j] and the scan continues from the next j.
// Scanning order is fixed, so equal inputs give equal outputs.
//
// Contracts:
//   - tour is a permutation of 0..w.Len()-1 (not closed: no repeated start).
//   - maxIters is a hard cap on full passes; maxIters ≤ 0 performs none.
//
// Complexity:
//   - One pass: O(n²) candidate checks, each O(1); each accepted move O(n).
//   - Overall: O(maxIters·n²) worst case, O(n²) extra space for the weight cache.
package tsp

import "fmt"

// TwoOpt improves tour in place and reports what it did.
//
// The running cost is tracked in signed int so deltas against saturated
// (Infinity) edges compare correctly; Stats.Cost is clamped back to
// distmat.Cost on return and always equals TourCost(w, tour).
//
// Panics if tour is not a permutation of 0..w.Len()-1.
func TwoOpt(w Weigher, tour []int, maxIters int) Stats {
	if err := ValidatePermutation(tour, w.Len()); err != nil {
		panic(fmt.Errorf("tsp: two-opt: %w", err))
	}

	n := len(tour)
	// Prefetch weights into a dense buffer c[u*n+v] to keep the hot loop off
	// the interface.
	c := make([]int, n*n)
	{
		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				c[u*n+v] = int(w.Cost(u, v))
			}
		}
	}
	at := func(u, v int) int { return c[u*n+v] }

	running := cyclicSum(w, tour)
	st := Stats{Initial: saturate(running)}

	var (
		i, j       int
		a, b, x, d int
		delta      int
		improved   bool
	)
	for st.Passes < maxIters {
		st.Passes++
		improved = false
		for i = 0; i+2 < n; i++ {
			for j = i + 2; j < n; j++ {
				a, b = tour[i], tour[i+1]
				x, d = tour[j], tour[(j+1)%n]
				delta = at(a, x) + at(b, d) - at(a, b) - at(x, d)
				if delta < 0 {
					reverseSegment(tour, i+1, j)
					running += delta
					st.Swaps++
					improved = true
				}
			}
		}
		if !improved {
			st.Converged = true
			break
		}
	}
	st.Cost = saturate(running)

	return st
}
