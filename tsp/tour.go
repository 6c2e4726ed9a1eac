// Package tsp: tour utilities.
//
// These helpers operate purely on tour structure (vertex sequences) and never
// read costs. They return sentinel errors from types.go on bad input.
package tsp

import (
	"fmt"
	"strings"
)

// Identity returns the tour 0, 1, …, n-1.
// Complexity: O(n).
func Identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// ValidatePermutation checks that tour is a permutation of {0..n-1}.
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(tour []int, n int) error {
	if len(tour) == 0 {
		return ErrEmptyTour
	}
	if len(tour) != n {
		return fmt.Errorf("length %d, want %d: %w", len(tour), n, ErrNotPermutation)
	}
	seen := make([]bool, n)
	for _, v := range tour {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("vertex %d: %w", v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a copy of the cyclic tour shifted so that start is
// first. The cyclic order (and therefore TourCost) is unchanged.
// Complexity: O(n).
func RotateToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrEmptyTour
	}
	pivot := IndexOf(tour, start)
	if pivot < 0 {
		return nil, fmt.Errorf("start %d: %w", start, ErrStartNotInTour)
	}
	n := len(tour)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// IndexOf returns the position of v in tour, or -1.
func IndexOf(tour []int, v int) int {
	for i, x := range tour {
		if x == v {
			return i
		}
	}

	return -1
}

// EqualModuloRotation reports whether a and b describe the same cycle in the
// same direction.
// Complexity: O(n).
func EqualModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	p := IndexOf(b, a[0])
	if p < 0 {
		return false
	}
	n := len(a)
	for i := 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// reverseSegment reverses tour[i..j] in place (i ≤ j).
// This is the 2-opt edge swap: edges (i-1,i) and (j,j+1) become
// (i-1,j) and (i,j+1).
// Complexity: O(j-i).
func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}

// DebugString renders a cyclic tour as "[0 3 1 2 ↺]".
func DebugString(tour []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	if len(tour) > 0 {
		sb.WriteString(" ↺")
	}
	sb.WriteByte(']')

	return sb.String()
}
