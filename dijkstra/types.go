package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cartroute/distmat"
)

// Panic values (wrapped) for precondition violations.
var (
	// ErrBadSource indicates a source slot outside 0..Len()-1.
	ErrBadSource = errors.New("dijkstra: source slot out of range")

	// ErrEmptyGraph indicates a graph with no slots.
	ErrEmptyGraph = errors.New("dijkstra: graph has no slots")
)

// Graph is the complete graph Seed walks: slots 0..Len()-1, each with a node
// identity, and a cost for every pair. *distmat.View implements it.
type Graph interface {
	Len() int
	Node(slot int) distmat.Node
	Cost(a, b int) distmat.Cost
}

// Options configures Seed.
//
// Source      – starting slot.
// MaxDistance – slots whose distance exceeds this value are left unsettled.
//
//	Default is distmat.Infinity (settle everything).
type Options struct {
	Source      int          // starting slot
	MaxDistance distmat.Cost // exploration cap
}

// Option represents a functional option for configuring Seed.
type Option func(*Options)

// Source sets the starting slot. Panics on a negative slot; the upper bound
// is checked by Seed against the graph.
func Source(slot int) Option {
	if slot < 0 {
		panic(fmt.Errorf("dijkstra.Source(%d): %w", slot, ErrBadSource))
	}

	return func(o *Options) {
		o.Source = slot
	}
}

// WithMaxDistance caps exploration: once the smallest frontier key exceeds
// max, the remaining slots stay unsettled and are left out of Order. A slot
// relaxed before the cap keeps its finite tentative distance.
func WithMaxDistance(max distmat.Cost) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults: source slot 0, no distance cap.
func DefaultOptions() Options {
	return Options{
		Source:      0,
		MaxDistance: distmat.Infinity,
	}
}

// Result holds the output of one Seed call. All slices are indexed by slot
// and owned by the caller.
type Result struct {
	// Source is the starting slot.
	Source int

	// Dist[s] is the shortest known cost from Source to s, or distmat.Infinity.
	Dist []distmat.Cost

	// Prev[s] is the node preceding s on its shortest path. The source, and
	// any slot never relaxed, is its own predecessor.
	Prev []distmat.Node

	// Order lists settled slots in settle order; Order[0] == Source.
	Order []int

	// Nodes[s] is the identity of slot s.
	Nodes []distmat.Node
}

// Reached reports whether slot s received a finite distance.
func (r Result) Reached(s int) bool {
	return r.Dist[s] != distmat.Infinity
}

// Path returns the nodes from the source to slot s along Prev, source first.
// It returns nil for an unreached slot.
func (r Result) Path(s int) []distmat.Node {
	if !r.Reached(s) {
		return nil
	}
	var out []distmat.Node
	for cur := s; ; cur = int(r.Prev[cur].Slot) {
		out = append(out, r.Nodes[cur])
		if int(r.Prev[cur].Slot) == cur {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
