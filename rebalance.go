package rbtree

import (
	"golang.org/x/exp/constraints"
)

func swapColors[T constraints.Ordered](a, b *node[T]) {
	a.color, b.color = b.color, a.color
}

// The four local repair shapes, named for where the red-red pair sits
// relative to the grandparent g. Each rotates the subtree into the balanced
// shape, swaps the colors the rotation displaced, and returns the new subtree
// root.

func (t *Tree[T]) leftLeftCase(g *node[T]) *node[T] {
	g = t.rotateRight(g)
	swapColors(g, g.right)
	return g
}

func (t *Tree[T]) leftRightCase(g *node[T]) *node[T] {
	t.rotateLeft(g.left)
	return t.leftLeftCase(g)
}

func (t *Tree[T]) rightRightCase(g *node[T]) *node[T] {
	g = t.rotateLeft(g)
	swapColors(g, g.left)
	return g
}

func (t *Tree[T]) rightLeftCase(g *node[T]) *node[T] {
	t.rotateRight(g.right)
	return t.rightRightCase(g)
}

// insertFixup restores the red-black invariants after hanging a fresh red
// node. It climbs from n toward the root. A red uncle only needs recoloring,
// after which the violation may have moved to the grandparent. A black or
// absent uncle takes one of the four rotation cases, which settles the
// subtree for good but still recurses to recolor the root.
func (t *Tree[T]) insertFixup(n *node[T]) {
	parent := n.parent
	if parent == nil {
		n.color = black
		return
	}
	grandparent := parent.parent
	if grandparent == nil {
		// A black root with one red child needs nothing.
		return
	}
	if parent.color == black || n.color == black {
		return
	}

	parentIsLeft := grandparent.left == parent
	uncle := grandparent.right
	if !parentIsLeft {
		uncle = grandparent.left
	}

	if uncle != nil && uncle.color == red {
		parent.color = black
		uncle.color = black
		grandparent.color = red
		recolorings.Add(1)
	} else {
		nIsLeft := parent.left == n
		switch {
		case parentIsLeft && nIsLeft:
			grandparent = t.leftLeftCase(grandparent)
		case parentIsLeft:
			grandparent = t.leftRightCase(grandparent)
		case nIsLeft:
			grandparent = t.rightLeftCase(grandparent)
		default:
			grandparent = t.rightRightCase(grandparent)
		}
	}

	t.insertFixup(grandparent)
}
