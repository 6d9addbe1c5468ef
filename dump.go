package rbtree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Dump writes the tree sideways, largest value first, one node per line,
// indented by depth. Each line shows the node's value, color and neighbor
// values as "value color (left,right,parent)" with N for absent. Purely
// diagnostic.
func (t *Tree[T]) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "empty tree")
		return
	}
	t.root.dump(w, 0)
}

func (n *node[T]) dump(w io.Writer, depth int) {
	if n == nil {
		return
	}
	n.right.dump(w, depth+1)
	fmt.Fprintf(w, "%s%v\n", strings.Repeat("    ", depth), n)
	n.left.dump(w, depth+1)
}

func (n *node[T]) String() string {
	return fmt.Sprintf("%v %v (%s,%s,%s)",
		n.value, n.color, valueText(n.left), valueText(n.right), valueText(n.parent))
}

func valueText[T constraints.Ordered](n *node[T]) string {
	if n == nil {
		return "N"
	}
	return fmt.Sprint(n.value)
}
