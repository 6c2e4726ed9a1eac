package frontier_test

import (
	"testing"

	"github.com/katalvlaran/cartroute/distmat"
	"github.com/katalvlaran/cartroute/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(i int) distmat.Node { return distmat.Node{Index: uint8(i), Slot: uint8(i)} }

func TestHash_FoldRotate(t *testing.T) {
	assert.Equal(t, uint64(0), frontier.Hash(distmat.Node{}))
	assert.Equal(t, uint64(1024), frontier.Hash(distmat.Node{Index: 1}))
	assert.Equal(t, uint64(1088), frontier.Hash(distmat.Node{Index: 1, Slot: 2}))
}

func TestFrontier_ExtractMinOrder(t *testing.T) {
	f := frontier.New(5)
	keys := []distmat.Cost{40, 7, 19, 3, 25}
	for i, k := range keys {
		require.True(t, f.Insert(node(i), k))
	}
	require.Equal(t, 5, f.Len())

	var got []int
	prev := distmat.Cost(0)
	for !f.IsEmpty() {
		n, k, ok := f.ExtractMin()
		require.True(t, ok)
		require.GreaterOrEqual(t, k, prev)
		prev = k
		got = append(got, int(n.Index))
	}
	assert.Equal(t, []int{3, 1, 2, 4, 0}, got)

	_, _, ok := f.ExtractMin()
	assert.False(t, ok)
}

func TestFrontier_DecreaseKeyOnlyLowers(t *testing.T) {
	f := frontier.New(3)
	f.Insert(node(0), 10)
	f.Insert(node(1), 20)

	assert.False(t, f.DecreaseKey(node(0), 10), "equal key is not a decrease")
	assert.False(t, f.DecreaseKey(node(0), 15), "larger key is ignored")
	assert.True(t, f.DecreaseKey(node(1), 5))
	assert.False(t, f.DecreaseKey(node(2), 1), "absent node is ignored")

	k, ok := f.Key(node(1))
	require.True(t, ok)
	assert.Equal(t, distmat.Cost(5), k)

	n, k, _ := f.ExtractMin()
	assert.Equal(t, node(1), n)
	assert.Equal(t, distmat.Cost(5), k)
}

func TestFrontier_InsertLiveActsAsDecrease(t *testing.T) {
	f := frontier.New(2)
	f.Insert(node(0), 9)
	assert.False(t, f.Insert(node(0), 12))
	assert.True(t, f.Insert(node(0), 4))
	assert.Equal(t, 1, f.Len(), "one live entry per node")
}

func TestFrontier_SettledNeverReturned(t *testing.T) {
	f := frontier.New(2)
	f.Insert(node(0), 1)
	f.Insert(node(1), 2)

	n, _, _ := f.ExtractMin()
	require.Equal(t, node(0), n)
	assert.True(t, f.Settled(node(0)))

	assert.False(t, f.Insert(node(0), 0))
	assert.False(t, f.DecreaseKey(node(0), 0))

	n, _, _ = f.ExtractMin()
	assert.Equal(t, node(1), n)
	assert.True(t, f.IsEmpty())
}

func TestFrontier_TieBreakLowestIdentity(t *testing.T) {
	f := frontier.New(4)
	f.Insert(distmat.Node{Index: 7, Slot: 0}, 3)
	f.Insert(distmat.Node{Index: 2, Slot: 3}, 3)
	f.Insert(distmat.Node{Index: 5, Slot: 1}, 3)
	f.Insert(distmat.Node{Index: 9, Slot: 2}, distmat.Infinity)

	var got []uint8
	for !f.IsEmpty() {
		n, _, _ := f.ExtractMin()
		got = append(got, n.Index)
	}
	assert.Equal(t, []uint8{2, 5, 7, 9}, got)
}

func TestFrontier_CollidingNodesStayDistinct(t *testing.T) {
	// Both nodes hash to bucket 0 of a two-slot table.
	f := frontier.New(2)
	a := distmat.Node{Index: 0, Slot: 0}
	b := distmat.Node{Index: 2, Slot: 0}
	f.Insert(a, 8)
	f.Insert(b, 6)
	ka, _ := f.Key(a)
	kb, _ := f.Key(b)
	assert.Equal(t, distmat.Cost(8), ka)
	assert.Equal(t, distmat.Cost(6), kb)
}

func TestFrontier_Preconditions(t *testing.T) {
	assert.Panics(t, func() { frontier.New(0) })

	f := frontier.New(1)
	f.Insert(node(0), 1)
	assert.Panics(t, func() { f.Insert(node(1), 1) })
	assert.Equal(t, 1, f.Cap())
}

func TestFrontier_RandomisedMinProperty(t *testing.T) {
	const m = 10
	f := frontier.New(m)
	keys := map[distmat.Node]distmat.Cost{}
	// Deterministic pseudo-random sequence of inserts and decreases.
	x := uint32(2463534242)
	next := func() uint32 {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		return x
	}
	for i := 0; i < 60; i++ {
		n := node(int(next() % m))
		k := distmat.Cost(next() % 200)
		if _, live := keys[n]; live {
			if f.DecreaseKey(n, k) {
				keys[n] = k
			}
			continue
		}
		f.Insert(n, k)
		keys[n] = k
	}
	for !f.IsEmpty() {
		n, k, _ := f.ExtractMin()
		for _, other := range keys {
			require.LessOrEqual(t, k, other)
		}
		require.Equal(t, keys[n], k)
		delete(keys, n)
	}
	assert.Empty(t, keys)
}
