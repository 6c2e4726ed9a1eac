// Package dijkstra_test validates the seeding pass: distances, predecessors,
// settle order, saturation and precondition panics.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/cartroute/dijkstra"
	"github.com/katalvlaran/cartroute/distmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle builds the 3-node complete graph cost(0,1)=5, cost(0,2)=9, cost(1,2)=2.
func triangle(t *testing.T) *distmat.Matrix {
	t.Helper()
	m, err := distmat.FromTables([][]uint8{
		{0, 5, 9},
		{5, 0, 2},
		{9, 2, 0},
	}, nil, []uint8{0, 0, 0})
	require.NoError(t, err)

	return m
}

// table is a Graph over explicit 16-bit costs, used to drive values toward
// Infinity that an 8-bit matrix cell cannot hold.
type table [][]distmat.Cost

func (g table) Len() int { return len(g) }
func (g table) Node(s int) distmat.Node {
	return distmat.Node{Index: uint8(s), Slot: uint8(s)}
}
func (g table) Cost(a, b int) distmat.Cost { return g[a][b] }

// ------------------------------------------------------------------------
// 1. Basic functionality
// ------------------------------------------------------------------------

func TestSeed_Triangle(t *testing.T) {
	res := dijkstra.Seed(triangle(t).View(0, 1, 2))

	assert.Equal(t, []distmat.Cost{0, 5, 7}, res.Dist)
	assert.Equal(t, uint8(1), res.Prev[2].Slot)
	assert.Equal(t, uint8(0), res.Prev[1].Slot)
	assert.Equal(t, uint8(0), res.Prev[0].Slot, "source is its own predecessor")
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestSeed_SourceOption(t *testing.T) {
	res := dijkstra.Seed(triangle(t).View(0, 1, 2), dijkstra.Source(2))

	assert.Equal(t, []distmat.Cost{7, 2, 0}, res.Dist)
	assert.Equal(t, []int{2, 1, 0}, res.Order)
	assert.Equal(t, 2, res.Source)
}

func TestSeed_ViewSlotsDifferFromIndices(t *testing.T) {
	// Slot 0 is matrix index 2, slot 1 is index 0, slot 2 is index 1.
	res := dijkstra.Seed(triangle(t).View(2, 0, 1))

	assert.Equal(t, []distmat.Cost{0, 7, 2}, res.Dist)
	assert.Equal(t, distmat.Node{Index: 1, Slot: 2}, res.Prev[1])
	assert.Equal(t, []int{0, 2, 1}, res.Order)
}

func TestSeed_PathReconstruction(t *testing.T) {
	res := dijkstra.Seed(triangle(t).View(0, 1, 2))

	path := res.Path(2)
	require.Len(t, path, 3)
	assert.Equal(t, []uint8{0, 1, 2}, []uint8{path[0].Index, path[1].Index, path[2].Index})
	assert.Len(t, res.Path(0), 1)
}

func TestSeed_SingleSlot(t *testing.T) {
	res := dijkstra.Seed(triangle(t).View(1))
	assert.Equal(t, []distmat.Cost{0}, res.Dist)
	assert.Equal(t, []int{0}, res.Order)
}

// ------------------------------------------------------------------------
// 2. Numeric semantics
// ------------------------------------------------------------------------

func TestRelax_SaturatedNeverImproves(t *testing.T) {
	alt, ok := dijkstra.Relax(distmat.Infinity, 3, distmat.Infinity)
	assert.False(t, ok)
	assert.Equal(t, distmat.Infinity, alt, "must not wrap to a small value")

	_, ok = dijkstra.Relax(distmat.Infinity, 3, 10)
	assert.False(t, ok)

	alt, ok = dijkstra.Relax(4, 3, 10)
	assert.True(t, ok)
	assert.Equal(t, distmat.Cost(7), alt)
}

func TestSeed_SaturationKeepsInfinity(t *testing.T) {
	inf := distmat.Infinity
	g := table{
		{0, inf - 1, inf},
		{inf - 1, 0, 10},
		{inf, 10, 0},
	}
	res := dijkstra.Seed(g)

	assert.Equal(t, inf-1, res.Dist[1])
	assert.Equal(t, inf, res.Dist[2], "inf-1 + 10 must saturate, not wrap to 8")
	assert.False(t, res.Reached(2))
	assert.Nil(t, res.Path(2))
	assert.Equal(t, uint8(2), res.Prev[2].Slot)
}

func TestSeed_MaxDistanceStopsSettling(t *testing.T) {
	g := table{
		{0, 4, 50},
		{4, 0, 60},
		{50, 60, 0},
	}
	res := dijkstra.Seed(g, dijkstra.WithMaxDistance(10))

	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, distmat.Cost(50), res.Dist[2], "relaxed but never settled")
}

// ------------------------------------------------------------------------
// 3. Preconditions
// ------------------------------------------------------------------------

func TestSeed_Preconditions(t *testing.T) {
	v := triangle(t).View(0, 1, 2)

	assert.Panics(t, func() { dijkstra.Seed(v, dijkstra.Source(3)) })
	assert.Panics(t, func() { dijkstra.Source(-1) })
	assert.Panics(t, func() { dijkstra.Seed(table{}) })
}
