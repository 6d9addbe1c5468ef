/*
Package rbtree implements an ordered set as a red-black tree with parent
links: O(log n) insertion and membership, ascending iteration, no deletion.

Simple example:

	var t rbtree.Tree[int]
	t.Insert(3)
	t.Insert(1)
	t.Insert(2)
	for v := range t.Values() {
		fmt.Println(v)
	}

Iterators snapshot the tree's size and report ErrConcurrentModification if
it changes mid-pass.
*/
package rbtree
