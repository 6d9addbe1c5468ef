package rbtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Each triple forces a different repair shape on the third insert. All four
// settle into the same tree: black 2 with red children 1 and 3.
func TestRotationCases(t *testing.T) {
	for name, values := range map[string][]int{
		"LeftLeft":   {3, 2, 1},
		"LeftRight":  {3, 1, 2},
		"RightRight": {1, 2, 3},
		"RightLeft":  {1, 3, 2},
	} {
		t.Run(name, func(t *testing.T) {
			var tree Tree[int]
			for _, v := range values {
				require.True(t, tree.Insert(v))
			}
			require.NoError(t, tree.Check())
			require.Equal(t, 2, tree.Height())
			require.Equal(t, 2, tree.root.value)
			require.Equal(t, black, tree.root.color)
			require.Equal(t, 1, tree.root.left.value)
			require.Equal(t, red, tree.root.left.color)
			require.Equal(t, 3, tree.root.right.value)
			require.Equal(t, red, tree.root.right.color)
			require.Nil(t, tree.root.parent)
			require.Same(t, tree.root, tree.root.left.parent)
			require.Same(t, tree.root, tree.root.right.parent)
		})
	}
}

func TestRedUncleRecolor(t *testing.T) {
	var tree Tree[int]
	for _, v := range []int{2, 1, 3, 4} {
		require.True(t, tree.Insert(v))
	}
	// Inserting 4 sees the red uncle 1, so everything recolors and nothing
	// rotates.
	require.NoError(t, tree.Check())
	require.Equal(t, 3, tree.Height())
	require.Equal(t, black, tree.root.color)
	require.Equal(t, black, tree.root.left.color)
	require.Equal(t, black, tree.root.right.color)
	require.Equal(t, 4, tree.root.right.right.value)
	require.Equal(t, red, tree.root.right.right.color)
}

// A longer ascending run climbs through repeated right-right repairs and
// recolorings without ever losing a parent link.
func TestCascadingFixups(t *testing.T) {
	var tree Tree[int]
	for v := 1; v <= 64; v++ {
		require.True(t, tree.Insert(v))
		require.NoError(t, tree.Check(), "after inserting %v", v)
	}
	require.Equal(t, 64, tree.Len())
}
