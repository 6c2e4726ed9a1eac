package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartroute/distmat"
	"github.com/katalvlaran/cartroute/tsp"
)

func TestTourCost_IncludesWraparound(t *testing.T) {
	w := table{
		{0, 5, 9},
		{5, 0, 2},
		{9, 2, 0},
	}
	assert.Equal(t, distmat.Cost(5+2+9), tsp.TourCost(w, []int{0, 1, 2}))
	assert.Equal(t, distmat.Cost(5+2), tsp.PathCost(w, []int{0, 1, 2}))
	// Rotation and reversal describe the same cycle.
	assert.Equal(t, tsp.TourCost(w, []int{0, 1, 2}), tsp.TourCost(w, []int{1, 2, 0}))
	assert.Equal(t, tsp.TourCost(w, []int{0, 1, 2}), tsp.TourCost(w, []int{2, 1, 0}))
}

func TestTourCost_SingleVertexIgnoresDiagonal(t *testing.T) {
	m, err := distmat.FromTables([][]uint8{{0, 3}, {3, 0}}, nil, []uint8{7, 9})
	require.NoError(t, err)

	v := m.View(1)
	assert.Equal(t, distmat.Cost(0), tsp.TourCost(v, []int{0}))
	assert.Equal(t, distmat.Cost(0), tsp.PathCost(v, []int{0}))
	assert.Equal(t, distmat.Cost(6), tsp.TourCost(m, []int{0, 1}))
}

func TestTourCost_Saturates(t *testing.T) {
	inf := distmat.Infinity
	w := table{
		{0, inf, 1},
		{inf, 0, inf},
		{1, inf, 0},
	}
	assert.Equal(t, distmat.Infinity, tsp.TourCost(w, []int{0, 1, 2}))
	assert.Equal(t, distmat.Infinity, tsp.PathCost(w, []int{0, 1, 2}))
}

func TestTourCost_Panics(t *testing.T) {
	w := table{{0, 1}, {1, 0}}
	assert.Panics(t, func() { tsp.TourCost(w, nil) })
	assert.Panics(t, func() { tsp.TourCost(w, []int{0, 2}) })
	assert.Panics(t, func() { tsp.PathCost(w, []int{}) })
	assert.Panics(t, func() { tsp.PathCost(w, []int{-1}) })
}
