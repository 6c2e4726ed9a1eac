package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cartroute/distmat"
	"github.com/katalvlaran/cartroute/tsp"
)

// table is a plain symmetric Weigher for tests.
type table [][]distmat.Cost

func (t table) Len() int                   { return len(t) }
func (t table) Cost(u, v int) distmat.Cost { return t[u][v] }

// crossed has two expensive edges (0,1) and (2,3); swapping them for
// (0,2) and (1,3) drops the cycle from 22 to 4.
func crossed() table {
	return table{
		{0, 10, 1, 1},
		{10, 0, 1, 1},
		{1, 1, 0, 10},
		{1, 1, 10, 0},
	}
}

// xorshift is a tiny deterministic generator for property tests.
type xorshift uint32

func (x *xorshift) next() uint32 {
	v := uint32(*x)
	v ^= v << 13
	v ^= v >> 17
	v ^= v << 5
	*x = xorshift(v)

	return v
}

func randomTable(rng *xorshift, n int) table {
	t := make(table, n)
	for i := range t {
		t[i] = make([]distmat.Cost, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c := distmat.Cost(rng.next()%90 + 1)
			t[i][j], t[j][i] = c, c
		}
	}

	return t
}

func shuffled(rng *xorshift, n int) []int {
	tour := tsp.Identity(n)
	for i := n - 1; i > 0; i-- {
		j := int(rng.next() % uint32(i+1))
		tour[i], tour[j] = tour[j], tour[i]
	}

	return tour
}

func TestTwoOpt_SwapsCrossedEdges(t *testing.T) {
	w := crossed()
	tour := []int{0, 1, 2, 3}
	require.Equal(t, distmat.Cost(22), tsp.TourCost(w, tour))

	st := tsp.TwoOpt(w, tour, 1)

	assert.Equal(t, []int{0, 2, 1, 3}, tour)
	assert.Equal(t, distmat.Cost(22), st.Initial)
	assert.Equal(t, distmat.Cost(4), st.Cost)
	assert.Equal(t, tsp.TourCost(w, tour), st.Cost)
	assert.Equal(t, 1, st.Passes)
	assert.Equal(t, 1, st.Swaps)
	assert.False(t, st.Converged, "budget ran out before a clean pass")
}

func TestTwoOpt_ConvergesWithinBudget(t *testing.T) {
	w := crossed()
	tour := []int{0, 1, 2, 3}

	st := tsp.TwoOpt(w, tour, 10)

	assert.Equal(t, []int{0, 2, 1, 3}, tour)
	assert.Equal(t, 2, st.Passes)
	assert.True(t, st.Converged)
}

func TestTwoOpt_ZeroBudgetLeavesTour(t *testing.T) {
	w := crossed()
	tour := []int{0, 1, 2, 3}

	st := tsp.TwoOpt(w, tour, 0)

	assert.Equal(t, []int{0, 1, 2, 3}, tour)
	assert.Equal(t, 0, st.Passes)
	assert.Equal(t, st.Initial, st.Cost)
}

func TestTwoOpt_SmallToursUnchanged(t *testing.T) {
	w := crossed()
	for _, tour := range [][]int{{0}, {1, 0}, {2, 0, 1}} {
		sub := make(table, len(tour))
		for i := range sub {
			sub[i] = w[i][:len(tour)]
		}
		before := append([]int(nil), tour...)
		st := tsp.TwoOpt(sub, tour, 5)
		assert.Equal(t, before, tour)
		assert.True(t, st.Converged)
		assert.Zero(t, st.Swaps)
	}
}

func TestTwoOpt_NonRegressionAndIdempotence(t *testing.T) {
	rng := xorshift(0x9E3779B9)
	var round int
	for round = 0; round < 200; round++ {
		n := 4 + int(rng.next()%7)
		w := randomTable(&rng, n)
		tour := shuffled(&rng, n)
		budget := 1 + int(rng.next()%4)

		before := tsp.TourCost(w, tour)
		st := tsp.TwoOpt(w, tour, 100)
		require.NoError(t, tsp.ValidatePermutation(tour, n))
		require.LessOrEqual(t, st.Cost, before)
		require.Equal(t, tsp.TourCost(w, tour), st.Cost)
		require.True(t, st.Converged)

		settled := append([]int(nil), tour...)
		again := tsp.TwoOpt(w, tour, budget)
		require.Equal(t, settled, tour, "second run must not move a converged tour")
		require.Zero(t, again.Swaps)
		require.Equal(t, st.Cost, again.Cost)
	}
}

func TestTwoOpt_SameBudgetRerunIsStable(t *testing.T) {
	rng := xorshift(0xC0FFEE)
	var round, converged int
	for round = 0; round < 300; round++ {
		n := 4 + int(rng.next()%7)
		w := randomTable(&rng, n)
		tour := shuffled(&rng, n)
		budget := 1 + int(rng.next()%4)

		first := tsp.TwoOpt(w, tour, budget)
		settled := append([]int(nil), tour...)
		second := tsp.TwoOpt(w, tour, budget)

		require.LessOrEqual(t, second.Cost, first.Cost)
		require.Equal(t, first.Cost, second.Initial)
		if !first.Converged {
			continue
		}
		converged++
		require.Equal(t, settled, tour, "round %d: converged tour moved", round)
		require.Zero(t, second.Swaps)
		require.Equal(t, 1, second.Passes)
		require.True(t, second.Converged)
		require.Equal(t, first.Cost, second.Cost)
	}
	assert.Positive(t, converged, "no round converged within its budget")
}

func TestTwoOpt_BudgetedRunsNeverRegress(t *testing.T) {
	rng := xorshift(12345)
	var round int
	for round = 0; round < 100; round++ {
		n := 5 + int(rng.next()%6)
		w := randomTable(&rng, n)
		tour := shuffled(&rng, n)

		before := tsp.TourCost(w, tour)
		st := tsp.TwoOpt(w, tour, 1)
		require.LessOrEqual(t, st.Cost, before)
		require.LessOrEqual(t, st.Passes, 1)
	}
}

func TestTwoOpt_InfinityEdgesAvoided(t *testing.T) {
	inf := distmat.Infinity
	w := table{
		{0, inf, 1, 1},
		{inf, 0, 1, 1},
		{1, 1, 0, inf},
		{1, 1, inf, 0},
	}
	tour := []int{0, 1, 2, 3}
	require.Equal(t, distmat.Infinity, tsp.TourCost(w, tour))

	st := tsp.TwoOpt(w, tour, 3)

	assert.Equal(t, []int{0, 2, 1, 3}, tour)
	assert.Equal(t, distmat.Infinity, st.Initial)
	assert.Equal(t, distmat.Cost(4), st.Cost)
}

func TestTwoOpt_OnMatrixView(t *testing.T) {
	m, err := distmat.FromTables([][]uint8{
		{0, 10, 1, 1},
		{10, 0, 1, 1},
		{1, 1, 0, 10},
		{1, 1, 10, 0},
	}, nil, []uint8{0, 0, 0, 0})
	require.NoError(t, err)

	// Slots 0..3 map to matrix indices 3, 2, 1, 0.
	v := m.View(3, 2, 1, 0)
	tour := []int{0, 1, 2, 3}
	st := tsp.TwoOpt(v, tour, 5)

	assert.Equal(t, distmat.Cost(22), st.Initial)
	assert.Equal(t, distmat.Cost(4), st.Cost)
	assert.Equal(t, []int{0, 2, 1, 3}, tour)
}

func TestTwoOpt_PanicsOnBadTour(t *testing.T) {
	w := crossed()
	assert.Panics(t, func() { tsp.TwoOpt(w, []int{0, 1, 2}, 1) })
	assert.Panics(t, func() { tsp.TwoOpt(w, []int{0, 1, 1, 3}, 1) })
	assert.Panics(t, func() { tsp.TwoOpt(w, nil, 1) })
}
