package rbtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	var tree Tree[int]
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}
	var sb strings.Builder
	tree.Dump(&sb)
	assert.Equal(t,
		"    3 r (N,N,2)\n"+
			"2 b (1,3,N)\n"+
			"    1 r (N,N,2)\n",
		sb.String())
}

func TestDumpEmpty(t *testing.T) {
	var sb strings.Builder
	new(Tree[int]).Dump(&sb)
	assert.Equal(t, "empty tree\n", sb.String())
}
