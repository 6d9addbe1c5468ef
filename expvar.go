package rbtree

import (
	"expvar"
)

// Counters are shared across all trees in the process. They may grow
// per-Tree counterparts someday.
var (
	inserts          = expvar.NewInt("rbtreeInserts")
	duplicateInserts = expvar.NewInt("rbtreeDuplicateInserts")
	rotations        = expvar.NewInt("rbtreeRotations")
	recolorings      = expvar.NewInt("rbtreeRecolorings")
)
