package main

import (
	"expvar"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/anacrolix/log"
	"github.com/anacrolix/missinggo/v2"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/anacrolix/rbtree"
	"github.com/anacrolix/rbtree/internal/errorsx"
)

type StressCmd struct {
	Trees    int   `default:"1000000" help:"number of trees to build and check"`
	Values   int   `default:"9" help:"insertions per tree"`
	MaxValue int64 `default:"100" help:"values are drawn from [0, max-value)"`
	Workers  int   `help:"parallel workers (default GOMAXPROCS)"`
	Seed     int64 `help:"base RNG seed (default from the clock)"`
}

// stressErr builds random trees and cross-examines each one: structural
// checks after every insert, then the in-order sequence against a bitmap
// oracle fed the same values. Any discrepancy stops the run and dumps the
// offending tree.
func stressErr() error {
	cmd := flags.StressCmd
	if cmd.MaxValue < 1 || cmd.MaxValue > math.MaxUint32 {
		return errorsx.Errorf("max-value %v outside [1, %v]", cmd.MaxValue, uint32(math.MaxUint32))
	}
	workers := cmd.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("stressing with %v workers, seed %v", workers, seed)

	var stop missinggo.SynchronizedEvent
	go exitSignalHandlers(&stop)
	defer outputStats()

	var (
		claimed   atomic.Int64
		checked   atomic.Int64
		maxHeight atomic.Int64
	)
	started := time.Now()
	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		eg.Go(func() error {
			values := make([]int64, cmd.Values)
			for {
				if claimed.Add(1) > int64(cmd.Trees) {
					return nil
				}
				select {
				case <-stop.C():
					return nil
				default:
				}
				for i := range values {
					values[i] = rng.Int63n(cmd.MaxValue)
				}
				h, err := checkTree(values)
				if err != nil {
					// Unblock the other workers before reporting.
					stop.Set()
					return errorsx.Wrap(err, fmt.Sprintf("values %v", values))
				}
				checked.Add(1)
				for {
					prev := maxHeight.Load()
					if h <= prev || maxHeight.CompareAndSwap(prev, h) {
						break
					}
				}
			}
		})
	}
	err := eg.Wait()
	if err != nil {
		return err
	}
	trees := checked.Load()
	log.Printf(
		"checked %v trees (%v inserts) in %v, max height %v",
		humanize.Comma(trees),
		humanize.Comma(trees*int64(cmd.Values)),
		time.Since(started),
		maxHeight.Load(),
	)
	return nil
}

// checkTree inserts values into a fresh tree, comparing every step against a
// roaring bitmap fed the same sequence, and returns the final height.
func checkTree(values []int64) (height int64, err error) {
	var tree rbtree.Tree[int64]
	oracle := roaring.NewBitmap()
	for i, v := range values {
		if added, expected := tree.Insert(v), oracle.CheckedAdd(uint32(v)); added != expected {
			return 0, errorsx.Errorf("insert %v of %v returned %v", i, v, added)
		}
		if err := tree.Check(); err != nil {
			tree.Dump(os.Stderr)
			return 0, errorsx.Wrap(err, fmt.Sprintf("after insert %v of %v", i, v))
		}
	}
	if c := oracle.GetCardinality(); uint64(tree.Len()) != c {
		return 0, errorsx.Errorf("tree has %v values, oracle %v", tree.Len(), c)
	}
	if h, n := tree.Height(), tree.Len(); float64(h) > 2*math.Log2(float64(n+1)) {
		return 0, errorsx.Errorf("height %v too tall for %v values", h, n)
	}
	it := tree.Iterator()
	oracle.Iterate(func(x uint32) bool {
		if !it.Next() {
			err = errorsx.Errorf("iteration ended before oracle value %v", x)
			return false
		}
		if it.Value() != int64(x) {
			err = errorsx.Errorf("iteration produced %v, oracle expected %v", it.Value(), x)
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if it.Next() {
		return 0, errorsx.Errorf("iteration outlived the oracle at %v", it.Value())
	}
	return int64(tree.Height()), it.Err()
}

func outputStats() {
	if !flags.Stats {
		return
	}
	expvar.Do(func(kv expvar.KeyValue) {
		fmt.Printf("%s: %s\n", kv.Key, kv.Value)
	})
}
