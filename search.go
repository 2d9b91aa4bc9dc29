// search.go - sequential and sharded binary search over a sorted Store
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package keyset

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Minimum number of elements before ParallelBinarySearch shards the
// work; below this the goroutine setup costs more than the search.
const minParallelSearch = 4096

// BinarySearch looks up 'want' in O(log n) and returns its index.
// The store must have been sorted since the last mutation; an empty
// store reports not found. When duplicates of 'want' exist, some
// matching index is returned, with no guarantee which.
func (s *Store[K]) BinarySearch(want K) (int, bool) {
	return bsearch(s.active(), 0, want, s.cmp, nil)
}

// ParallelBinarySearch splits [0, Len()) into one contiguous shard
// per CPU and searches the shards concurrently. The first shard to
// find a match claims the result with a compare-and-swap; the rest
// observe the claim between probe steps and stop cooperatively. The
// verdict matches BinarySearch on any fully sorted store (the index
// may differ only when duplicates exist).
func (s *Store[K]) ParallelBinarySearch(want K) (int, bool) {
	v := s.active()
	if len(v) < minParallelSearch {
		return bsearch(v, 0, want, s.cmp, nil)
	}

	ncpu := runtime.NumCPU()
	n := len(v)
	z := n / ncpu
	r := n % ncpu

	printf("psearch: %d keys over %d shards (%d each, %d extra)", n, ncpu, z, r)

	var found atomic.Int64
	found.Store(-1)

	var wg sync.WaitGroup
	wg.Add(ncpu)
	for i := 0; i < ncpu; i++ {
		x := z * i
		y := x + z
		if i == (ncpu - 1) {
			y += r
		}
		go func(x, y int) {
			bsearch(v[x:y], x, want, s.cmp, &found)
			wg.Done()
		}(x, y)
	}
	wg.Wait()

	if i := found.Load(); i >= 0 {
		return int(i), true
	}
	return 0, false
}

// bsearch is the one binary search both entry points share. 'base'
// translates shard-local indices back to store indices. A nil 'found'
// runs standalone and returns the result; a non-nil 'found' is the
// shared claim slot: polled between probe steps so a shard stops once
// a sibling has won, and written with a compare-and-swap so only the
// first success is retained.
func bsearch[K any](v []K, base int, want K, cmp func(a, b K) int, found *atomic.Int64) (int, bool) {
	lo, hi := 0, len(v)-1

	for lo <= hi {
		if found != nil && found.Load() >= 0 {
			return 0, false
		}

		mid := lo + (hi-lo)/2
		switch d := cmp(v[mid], want); {
		case d == 0:
			if found != nil {
				found.CompareAndSwap(-1, int64(base+mid))
			}
			return base + mid, true
		case d < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}
