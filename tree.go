package rbtree

import (
	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"

	"github.com/anacrolix/rbtree/internal/panicif"
)

// Tree is an ordered set of values backed by a red-black tree. Insert,
// Contains and iterator advance are O(log n). The zero value is an empty tree
// ready for use. Not safe for concurrent use.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of values in the set.
func (t *Tree[T]) Len() int {
	return t.size
}

func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Insert adds value to the set, reporting whether it was absent. Duplicates
// leave the tree untouched. value must be orderable with itself: a floating
// point NaN panics before anything is modified.
func (t *Tree[T]) Insert(value T) bool {
	// NaN is the one inhabitant of an ordered type with no position in the
	// ordering.
	panicif.NotEqual(value, value)

	if t.root == nil {
		t.root = &node[T]{value: value}
		t.insertFixup(t.root)
		t.size++
		inserts.Add(1)
		return true
	}
	for n := t.root; ; {
		switch {
		case value < n.value:
			if n.left == nil {
				n.left = &node[T]{value: value, parent: n}
				t.insertFixup(n.left)
				t.size++
				inserts.Add(1)
				return true
			}
			n = n.left
		case value > n.value:
			if n.right == nil {
				n.right = &node[T]{value: value, parent: n}
				t.insertFixup(n.right)
				t.size++
				inserts.Add(1)
				return true
			}
			n = n.right
		default:
			duplicateInserts.Add(1)
			return false
		}
	}
}

// Contains reports whether value is in the set. Plain binary search, no
// mutation.
func (t *Tree[T]) Contains(value T) bool {
	if value != value {
		// NaN can't be inserted, so it can't be found either.
		return false
	}
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value in the set, or none if it's empty.
func (t *Tree[T]) Min() g.Option[T] {
	if t.root == nil {
		return g.None[T]()
	}
	return g.Some(t.root.min().value)
}

// Max returns the largest value in the set, or none if it's empty.
func (t *Tree[T]) Max() g.Option[T] {
	if t.root == nil {
		return g.None[T]()
	}
	return g.Some(t.root.max().value)
}

// Height returns the number of nodes on the longest root-to-leaf path. The
// red-black shape keeps this within 2*log2(n+1).
func (t *Tree[T]) Height() int {
	return t.root.height()
}
