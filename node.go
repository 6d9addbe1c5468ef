package rbtree

import (
	"golang.org/x/exp/constraints"
)

type color byte

const (
	// Fresh nodes start red, hence the zero value.
	red color = iota
	black
)

func (c color) String() string {
	if c == black {
		return "b"
	}
	return "r"
}

// node is a tree cell. parent is nil only at the root. Rotations rewrite
// parent pointers as they go, so holding a *node across a mutation is wrong.
type node[T constraints.Ordered] struct {
	value  T
	color  color
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// min returns the leftmost node under n. n must not be nil.
func (n *node[T]) min() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node under n. n must not be nil.
func (n *node[T]) max() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

func (n *node[T]) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.count() + n.right.count()
}
