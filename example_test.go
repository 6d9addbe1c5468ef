package rbtree_test

import (
	"errors"
	"fmt"

	"github.com/anacrolix/rbtree"
)

func Example() {
	var t rbtree.Tree[int]
	for _, v := range []int{88, 94, 99, 32} {
		t.Insert(v)
	}
	for v := range t.Values() {
		fmt.Println(v)
	}
	// Output:
	// 32
	// 88
	// 94
	// 99
}

func ExampleTree_Iterator() {
	var t rbtree.Tree[string]
	t.Insert("banana")
	t.Insert("apple")
	it := t.Iterator()
	for it.Next() {
		fmt.Println(it.Value())
		// Mutating here would surface as ErrConcurrentModification from
		// it.Err after the next advance.
	}
	if err := it.Err(); err != nil {
		fmt.Println("iteration failed:", err)
	}
	// Output:
	// apple
	// banana
}

func ExampleIterator_Remove() {
	var t rbtree.Tree[int]
	t.Insert(1)
	it := t.Iterator()
	it.Next()
	fmt.Println(errors.Is(it.Remove(), rbtree.ErrRemoveUnsupported))
	// Output:
	// true
}
