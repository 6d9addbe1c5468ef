package rbtree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks a Tree in ascending order without recursion. The stack holds
// nodes whose left sides have been entered but not yet emitted, and trav
// marks the subtree whose left spine still wants descending. Work happens
// lazily in Next, so sparse consumption only pays for what it visits.
//
// An Iterator is good for one pass. It snapshots the tree's size at creation
// and refuses to keep going if the size changes, since the nodes it stacked
// may have been rotated out from under it.
type Iterator[T constraints.Ordered] struct {
	tree     *Tree[T]
	sizeThen int
	stack    []*node[T]
	trav     *node[T]
	value    T
	err      error
}

// Iterator starts an ascending pass over the set. Any number of iterators may
// be taken out; each is invalidated independently by mutation.
func (t *Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{
		tree:     t,
		sizeThen: t.size,
		trav:     t.root,
	}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

// Next advances to the next value, reporting whether there was one. Once it
// returns false it returns false forever; check Err to distinguish exhaustion
// from an invalidated iterator.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.tree.size != it.sizeThen {
		it.err = ErrConcurrentModification
		return false
	}
	if len(it.stack) == 0 {
		return false
	}

	// Bank the left spine of the pending subtree.
	for it.trav != nil && it.trav.left != nil {
		it.stack = append(it.stack, it.trav.left)
		it.trav = it.trav.left
	}

	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	if n.right != nil {
		it.stack = append(it.stack, n.right)
		it.trav = n.right
	}

	it.value = n.value
	return true
}

// Value returns the value the last successful Next stopped on. Before any
// Next it's the zero value.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Err returns ErrConcurrentModification if the tree changed size while
// iterating, nil otherwise. Running off the end is not an error.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Remove always fails with ErrRemoveUnsupported. Deletion isn't implemented,
// here or anywhere else on Tree.
func (it *Iterator[T]) Remove() error {
	return ErrRemoveUnsupported
}

// Values ranges over the set in ascending order. It's a convenience over
// Iterator for when the tree is known not to change mid-pass: since iter.Seq
// has nowhere to surface an error, mutation during the range panics with
// ErrConcurrentModification instead.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if it.Err() != nil {
			panic(it.Err())
		}
	}
}
