package tsp

import (
	"errors"

	"github.com/katalvlaran/cartroute/distmat"
)

// Sentinel errors. Tour helpers return them; the engine entry points
// (TourCost, PathCost, TwoOpt) panic with them wrapped, since a malformed tour
// there is a caller bug.
var (
	// ErrEmptyTour is returned for a tour with no vertices.
	ErrEmptyTour = errors.New("tsp: empty tour")

	// ErrNotPermutation is returned when a tour is not a permutation of
	// 0..n-1 (wrong length, out-of-range or repeated vertex).
	ErrNotPermutation = errors.New("tsp: tour is not a permutation of the vertex set")

	// ErrStartNotInTour is returned when a rotation start is absent.
	ErrStartNotInTour = errors.New("tsp: start vertex not in tour")
)

// Weigher supplies symmetric vertex-pair costs for vertices 0..Len()-1.
// *distmat.Matrix (vertices = matrix indices) and *distmat.View
// (vertices = graph slots) both implement it.
type Weigher interface {
	Len() int
	Cost(u, v int) distmat.Cost
}

// Stats describes one TwoOpt run.
type Stats struct {
	// Initial is the cyclic cost of the tour before improvement.
	Initial distmat.Cost

	// Cost is the cyclic cost after improvement (always ≤ Initial).
	Cost distmat.Cost

	// Passes is the number of full scans performed (≤ maxIters).
	Passes int

	// Swaps is the number of improving segment reversals applied.
	Swaps int

	// Converged is true when the last pass found no improving swap.
	Converged bool
}
