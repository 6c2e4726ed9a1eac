// Package frontier implements the indexed priority structure used by the
// shortest-path seeder: a fixed-capacity associative table from node identity
// to a cost key, supporting insert, decrease-key and extract-min.
//
// The table is open-addressed with linear probing over exactly Cap() slots,
// keyed by a small XOR-fold/rotate hash (see Hash). It never grows: capacity
// is the node count of one computation, and every node occupies at most one
// slot for the lifetime of the frontier (live, then settled).
//
// Ordering contract:
//   - ExtractMin returns the live entry with the smallest key; equal keys are
//     broken by the lowest node identity (Index, then Slot), so runs are
//     reproducible.
//   - A settled (extracted) node is never returned again and ignores later
//     Insert/DecreaseKey calls.
//   - DecreaseKey only lowers: a key that is not strictly smaller is ignored.
//
// Complexity: Insert/DecreaseKey O(1) expected, O(M) worst case;
// ExtractMin O(M). With M ≤ 16 a linear scan beats a heap in both code size
// and constant factors.
package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cartroute/distmat"
)

// Panic values (wrapped) for precondition violations.
var (
	// ErrCapacity is raised when New is called with a non-positive capacity.
	ErrCapacity = errors.New("frontier: capacity must be positive")

	// ErrFull is raised when more distinct nodes are inserted than the
	// frontier was sized for.
	ErrFull = errors.New("frontier: capacity exceeded")
)

type slotState uint8

const (
	stateEmpty slotState = iota
	stateLive
	stateSettled
)

type entry struct {
	node  distmat.Node
	key   distmat.Cost
	state slotState
}

// Frontier is a fixed-capacity indexed min-priority structure.
// The zero value is not usable; call New.
type Frontier struct {
	slots []entry
	live  int
}

// New returns an empty frontier able to hold capacity distinct nodes.
// Panics if capacity <= 0.
func New(capacity int) *Frontier {
	if capacity <= 0 {
		panic(fmt.Errorf("frontier.New(%d): %w", capacity, ErrCapacity))
	}

	return &Frontier{slots: make([]entry, capacity)}
}

// Cap returns the number of distinct nodes the frontier can track.
func (f *Frontier) Cap() int { return len(f.slots) }

// Len returns the number of live (not yet extracted) entries.
func (f *Frontier) Len() int { return f.live }

// IsEmpty reports whether no live entries remain.
func (f *Frontier) IsEmpty() bool { return f.live == 0 }

// locate probes for n. It returns the slot holding n, or the first empty slot
// on n's probe sequence, or -1 when the table is full and n is absent.
func (f *Frontier) locate(n distmat.Node) int {
	var (
		c     = len(f.slots)
		start = int(Hash(n) % uint64(c))
		i, p  int
	)
	for i = 0; i < c; i++ {
		p = (start + i) % c
		switch {
		case f.slots[p].state == stateEmpty:
			return p
		case f.slots[p].node == n:
			return p
		}
	}

	return -1
}

// Insert adds n with the given key. Inserting a live node behaves as
// DecreaseKey; inserting a settled node is ignored. Reports whether the
// stored key changed. Panics with ErrFull when n is new and no slot is free.
func (f *Frontier) Insert(n distmat.Node, key distmat.Cost) bool {
	p := f.locate(n)
	if p < 0 {
		panic(fmt.Errorf("frontier.Insert(%s): %w", n, ErrFull))
	}
	e := &f.slots[p]
	switch e.state {
	case stateEmpty:
		*e = entry{node: n, key: key, state: stateLive}
		f.live++

		return true
	case stateLive:
		return f.lower(e, key)
	default:
		return false
	}
}

// DecreaseKey lowers the key of a live node. It is a no-op (returning false)
// when n is absent, settled, or key is not strictly smaller.
func (f *Frontier) DecreaseKey(n distmat.Node, key distmat.Cost) bool {
	p := f.locate(n)
	if p < 0 || f.slots[p].state != stateLive {
		return false
	}

	return f.lower(&f.slots[p], key)
}

func (f *Frontier) lower(e *entry, key distmat.Cost) bool {
	if key >= e.key {
		return false
	}
	e.key = key

	return true
}

// Key returns the current key of a live node.
func (f *Frontier) Key(n distmat.Node) (distmat.Cost, bool) {
	p := f.locate(n)
	if p < 0 || f.slots[p].state != stateLive {
		return 0, false
	}

	return f.slots[p].key, true
}

// Settled reports whether n has already been extracted.
func (f *Frontier) Settled(n distmat.Node) bool {
	p := f.locate(n)

	return p >= 0 && f.slots[p].state == stateSettled
}

// ExtractMin removes and returns the live entry with the smallest key.
// ok is false when the frontier is empty.
func (f *Frontier) ExtractMin() (n distmat.Node, key distmat.Cost, ok bool) {
	best := -1
	for p := range f.slots {
		if f.slots[p].state != stateLive {
			continue
		}
		if best < 0 || before(&f.slots[p], &f.slots[best]) {
			best = p
		}
	}
	if best < 0 {
		return distmat.Node{}, 0, false
	}
	e := &f.slots[best]
	e.state = stateSettled
	f.live--

	return e.node, e.key, true
}

// before orders entries by key, then node identity.
func before(a, b *entry) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	if a.node.Index != b.node.Index {
		return a.node.Index < b.node.Index
	}

	return a.node.Slot < b.node.Slot
}
