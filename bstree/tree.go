package bstree

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrOrder is the panic value wrapped by Assemble when the parts would break
// search-tree order.
var ErrOrder = errors.New("bstree: assemble violates ordering")

type node[T cmp.Ordered] struct {
	value       T
	left, right Tree[T]
}

// Tree is an ordered set of T. The zero value is empty.
type Tree[T cmp.Ordered] struct {
	root *node[T]
}

// New returns an empty tree holding values.
func New[T cmp.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// IsEmpty reports whether t holds no values.
func (t *Tree[T]) IsEmpty() bool { return t.root == nil }

// Insert adds v and reports whether it was absent. Duplicates are ignored.
func (t *Tree[T]) Insert(v T) bool {
	cur := t
	for cur.root != nil {
		switch c := cmp.Compare(v, cur.root.value); {
		case c < 0:
			cur = &cur.root.left
		case c > 0:
			cur = &cur.root.right
		default:
			return false
		}
	}
	cur.root = &node[T]{value: v}

	return true
}

// Has reports whether v is in t.
func (t *Tree[T]) Has(v T) bool {
	return t.find(v) != nil
}

// find returns the subtree rooted at v, or nil.
func (t *Tree[T]) find(v T) *Tree[T] {
	cur := t
	for cur.root != nil {
		switch c := cmp.Compare(v, cur.root.value); {
		case c < 0:
			cur = &cur.root.left
		case c > 0:
			cur = &cur.root.right
		default:
			return cur
		}
	}

	return nil
}

// Len returns the number of values in t.
func (t *Tree[T]) Len() int {
	if t.root == nil {
		return 0
	}

	return t.root.left.Len() + t.root.right.Len() + 1
}

// Min returns the smallest value, or false on an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	cur := t
	for cur.root.left.root != nil {
		cur = &cur.root.left
	}

	return cur.root.value, true
}

// Max returns the largest value, or false on an empty tree.
func (t *Tree[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}
	cur := t
	for cur.root.right.root != nil {
		cur = &cur.root.right
	}

	return cur.root.value, true
}

// Walk visits values in ascending order until fn returns false.
func (t *Tree[T]) Walk(fn func(T) bool) {
	t.walk(fn)
}

func (t *Tree[T]) walk(fn func(T) bool) bool {
	if t.root == nil {
		return true
	}

	return t.root.left.walk(fn) && fn(t.root.value) && t.root.right.walk(fn)
}

// InOrder returns the values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.Len())
	t.Walk(func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

// Disassemble empties t and returns its root value and both subtrees as
// owned trees. ok is false (and t untouched) when t is already empty.
func (t *Tree[T]) Disassemble() (value T, left, right *Tree[T], ok bool) {
	if t.root == nil {
		return value, nil, nil, false
	}
	n := t.root
	t.root = nil
	left = &Tree[T]{root: n.left.root}
	right = &Tree[T]{root: n.right.root}
	n.left.root, n.right.root = nil, nil

	return n.value, left, right, true
}

// Assemble consumes left and right (both are left empty) and returns a new
// tree rooted at value. Nil parts count as empty.
//
// Panics with ErrOrder unless every value in left is below value and every
// value in right is above it.
func Assemble[T cmp.Ordered](value T, left, right *Tree[T]) *Tree[T] {
	n := &node[T]{value: value}
	if left != nil {
		if hi, ok := left.Max(); ok && cmp.Compare(hi, value) >= 0 {
			panic(fmt.Errorf("left max %v, root %v: %w", hi, value, ErrOrder))
		}
		n.left.root, left.root = left.root, nil
	}
	if right != nil {
		if lo, ok := right.Min(); ok && cmp.Compare(lo, value) <= 0 {
			panic(fmt.Errorf("right min %v, root %v: %w", lo, value, ErrOrder))
		}
		n.right.root, right.root = right.root, nil
	}

	return &Tree[T]{root: n}
}

// Remove deletes v and reports whether it was present.
func (t *Tree[T]) Remove(v T) bool {
	sub := t.find(v)
	if sub == nil {
		return false
	}
	_, left, right, _ := sub.Disassemble()
	sub.root = join(left, right).root

	return true
}

// join merges two owned trees where every value of left is below every value
// of right, consuming both.
func join[T cmp.Ordered](left, right *Tree[T]) *Tree[T] {
	if right.IsEmpty() {
		return left
	}
	if left.IsEmpty() {
		return right
	}
	lo := right.popMin()

	return Assemble(lo, left, right)
}

// popMin removes and returns the smallest value of a non-empty tree.
func (t *Tree[T]) popMin() T {
	cur := t
	for cur.root.left.root != nil {
		cur = &cur.root.left
	}
	v, _, right, _ := cur.Disassemble()
	cur.root = right.root

	return v
}
