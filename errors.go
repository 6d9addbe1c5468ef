package rbtree

import (
	"github.com/anacrolix/rbtree/internal/errorsx"
)

const (
	// Returned from Iterator.Err (and thrown from Values) when the tree's
	// size changed under a live iterator.
	ErrConcurrentModification = errorsx.String("tree modified during iteration")
	// Returned from Iterator.Remove. The tree doesn't do deletion.
	ErrRemoveUnsupported = errorsx.String("remove not supported")
)
