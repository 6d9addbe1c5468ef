package rbtree

import (
	"github.com/anacrolix/rbtree/internal/errorsx"
)

// Check walks the entire tree and returns the first structural violation it
// finds: bad ordering, a stale parent pointer, a red node with a red child, a
// red root, unequal black heights, or a size that disagrees with the node
// count. Normal operations never call it. It exists so tests and the stress
// tool can interrogate a tree after every mutation.
func (t *Tree[T]) Check() error {
	if t.root == nil {
		if t.size != 0 {
			return errorsx.Errorf("empty tree has size %v", t.size)
		}
		return nil
	}
	if t.root.color != black {
		return errorsx.Errorf("root %v is red", t.root.value)
	}
	if n := t.root.count(); n != t.size {
		return errorsx.Errorf("size %v but counted %v nodes", t.size, n)
	}
	err := errorsx.Compact(
		t.root.checkOrder(),
		t.root.checkParentLinks(nil),
		t.root.checkColors(),
	)
	if err != nil {
		return err
	}
	_, err = t.root.checkBlackHeight()
	return err
}

// checkOrder verifies the binary search tree ordering. Comparing against
// immediate children is enough: violations deeper down surface when the
// walk reaches them.
func (n *node[T]) checkOrder() error {
	if n == nil {
		return nil
	}
	if n.left != nil && !(n.left.value < n.value) {
		return errorsx.Errorf("left child %v not below %v", n.left.value, n.value)
	}
	if n.right != nil && !(n.right.value > n.value) {
		return errorsx.Errorf("right child %v not above %v", n.right.value, n.value)
	}
	return errorsx.Compact(n.left.checkOrder(), n.right.checkOrder())
}

func (n *node[T]) checkParentLinks(parent *node[T]) error {
	if n == nil {
		return nil
	}
	if n.parent != parent {
		return errorsx.Errorf("parent link of %v is stale", n.value)
	}
	return errorsx.Compact(n.left.checkParentLinks(n), n.right.checkParentLinks(n))
}

func (n *node[T]) checkColors() error {
	if n == nil {
		return nil
	}
	if n.color == red {
		if n.left != nil && n.left.color == red {
			return errorsx.Errorf("red %v has red left child %v", n.value, n.left.value)
		}
		if n.right != nil && n.right.color == red {
			return errorsx.Errorf("red %v has red right child %v", n.value, n.right.value)
		}
	}
	return errorsx.Compact(n.left.checkColors(), n.right.checkColors())
}

// checkBlackHeight returns the count of black nodes from n down to any leaf,
// which must be the same on every path.
func (n *node[T]) checkBlackHeight() (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := n.left.checkBlackHeight()
	if err != nil {
		return 0, err
	}
	rh, err := n.right.checkBlackHeight()
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errorsx.Errorf("black height %v vs %v below %v", lh, rh, n.value)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}
