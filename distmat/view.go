package distmat

import "fmt"

// View is the working subset of one route computation: slot s refers to
// matrix index idx[s]. Slots form the contiguous range 0..Len()-1.
type View struct {
	m   *Matrix
	idx []uint8
}

// View assigns graph slots 0..len(indices)-1 to the given matrix indices.
// Panics when an index is out of range, repeated, or more indices are given
// than the matrix holds: the subset is built by callers that validated it.
// Complexity: O(M).
func (m *Matrix) View(indices ...uint8) *View {
	if len(indices) == 0 || len(indices) > m.n {
		panic(fmt.Errorf("Matrix.View: %d indices on %d locations: %w", len(indices), m.n, ErrOutOfRange))
	}
	var seen [MaxNodes]bool
	for _, ix := range indices {
		if int(ix) >= m.n || seen[ix] {
			panic(fmt.Errorf("Matrix.View: index %d (duplicate or beyond %d): %w", ix, m.n, ErrOutOfRange))
		}
		seen[ix] = true
	}
	idx := make([]uint8, len(indices))
	copy(idx, indices)

	return &View{m: m, idx: idx}
}

// Len returns M, the number of slots.
func (w *View) Len() int { return len(w.idx) }

// Matrix returns the underlying table.
func (w *View) Matrix() *Matrix { return w.m }

// Node returns the identity of slot s.
func (w *View) Node(s int) Node {
	return Node{Index: w.idx[s], Slot: uint8(s)}
}

// Nodes returns the identities of all slots in slot order.
func (w *View) Nodes() []Node {
	out := make([]Node, len(w.idx))
	for s := range w.idx {
		out[s] = Node{Index: w.idx[s], Slot: uint8(s)}
	}

	return out
}

// Cost returns the cost between slots a and b (the priority when a == b).
func (w *View) Cost(a, b int) Cost {
	return w.m.Cost(int(w.idx[a]), int(w.idx[b]))
}

// Direction returns the direction of travel from slot a to slot b.
func (w *View) Direction(a, b int) Direction {
	return w.m.Direction(int(w.idx[a]), int(w.idx[b]))
}

// Priority returns the diagonal priority of slot s.
func (w *View) Priority(s int) Cost {
	return w.m.Priority(int(w.idx[s]))
}
