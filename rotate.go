package rbtree

import (
	"github.com/anacrolix/rbtree/internal/panicif"
)

// Rotations pivot a node with one of its children without disturbing the
// in-order sequence. Each one fixes every affected parent pointer, including
// the link from the old subtree root's parent (or the tree root when there is
// none), and returns the new subtree root.

func (t *Tree[T]) rotateLeft(n *node[T]) *node[T] {
	panicif.Nil(n.right)
	grandparent := n.parent
	child := n.right

	n.right = child.left
	if child.left != nil {
		child.left.parent = n
	}

	child.left = n
	n.parent = child

	child.parent = grandparent
	t.relink(grandparent, n, child)
	rotations.Add(1)
	return child
}

func (t *Tree[T]) rotateRight(n *node[T]) *node[T] {
	panicif.Nil(n.left)
	grandparent := n.parent
	child := n.left

	n.left = child.right
	if child.right != nil {
		child.right.parent = n
	}

	child.right = n
	n.parent = child

	child.parent = grandparent
	t.relink(grandparent, n, child)
	rotations.Add(1)
	return child
}

// relink points whichever child link of parent addressed from at to. A nil
// parent means from was the root, so the tree root moves instead.
func (t *Tree[T]) relink(parent, from, to *node[T]) {
	if parent == nil {
		t.root = to
		return
	}
	if parent.left == from {
		parent.left = to
	} else {
		parent.right = to
	}
}
