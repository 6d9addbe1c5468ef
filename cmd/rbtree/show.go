package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/anacrolix/rbtree"
	"github.com/anacrolix/rbtree/internal/errorsx"
)

type ShowCmd struct {
	Spew   bool    `help:"spew the node structs at the end"`
	Values []int64 `arg:"positional,required" help:"values inserted in order"`
}

// showErr replays the given inserts, printing the tree sideways after each
// one.
func showErr() error {
	cmd := flags.ShowCmd
	var tree rbtree.Tree[int64]
	for _, v := range cmd.Values {
		fmt.Printf("insert %v: added=%v\n", v, tree.Insert(v))
		tree.Dump(os.Stdout)
		if err := tree.Check(); err != nil {
			return errorsx.Wrap(err, "structural check failed")
		}
		fmt.Println()
	}
	if !tree.IsEmpty() {
		fmt.Printf(
			"len %v height %v min %v max %v\n",
			tree.Len(), tree.Height(), tree.Min().Unwrap(), tree.Max().Unwrap())
	}
	if cmd.Spew {
		spew.Dump(&tree)
	}
	return nil
}
