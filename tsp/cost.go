// Package tsp: cost utilities shared by the improver and callers.
//
// Sums saturate at distmat.Infinity. Both helpers are pure: no allocation,
// no mutation of the tour.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/cartroute/distmat"
)

// TourCost returns Σ cost(tour[k], tour[(k+1) mod n]) for k in 0..n-1: the
// full cycle including the edge from the last vertex back to the first.
// A single-vertex tour costs 0.
//
// Panics on an empty tour or an out-of-range vertex.
// Complexity: O(n).
func TourCost(w Weigher, tour []int) distmat.Cost {
	n := len(tour)
	if n == 0 {
		panic(ErrEmptyTour)
	}

	return saturate(cyclicSum(w, tour))
}

// PathCost returns the open-path cost Σ cost(tour[k], tour[k+1]) for k in
// 0..n-2, without the wraparound edge.
//
// Panics on an empty tour or an out-of-range vertex.
// Complexity: O(n).
func PathCost(w Weigher, tour []int) distmat.Cost {
	n := len(tour)
	if n == 0 {
		panic(ErrEmptyTour)
	}
	var (
		sum int
		k   int
	)
	checkVertex(w, tour[0])
	for k = 0; k+1 < n; k++ {
		checkVertex(w, tour[k+1])
		sum += int(w.Cost(tour[k], tour[k+1]))
	}

	return saturate(sum)
}

// cyclicSum adds every cyclic edge in int arithmetic, range-checking each
// vertex. A one-vertex cycle has no edges; its diagonal is never read.
func cyclicSum(w Weigher, tour []int) int {
	var (
		n   = len(tour)
		sum int
		k   int
	)
	for k = 0; k < n; k++ {
		checkVertex(w, tour[k])
	}
	if n < 2 {
		return 0
	}
	for k = 0; k < n; k++ {
		sum += int(w.Cost(tour[k], tour[(k+1)%n]))
	}

	return sum
}

func checkVertex(w Weigher, v int) {
	if v < 0 || v >= w.Len() {
		panic(fmt.Errorf("tsp: vertex %d of %d: %w", v, w.Len(), ErrNotPermutation))
	}
}

func saturate(sum int) distmat.Cost {
	if sum >= int(distmat.Infinity) {
		return distmat.Infinity
	}

	return distmat.Cost(sum)
}
