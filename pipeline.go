// pipeline.go - two-stage filter-then-confirm membership lookup
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
	"sync/atomic"

	"github.com/hashicorp/golang-lru/arc/v2"
)

// Number of confirmed lookups to cache by default.
const defaultCacheSize = 128

// Pipeline composes a Filter and a Key store into the staged lookup:
// the filter rejects absent keys in O(1), the sorted store confirms
// the rest. A filter hit that the store refutes is a counted false
// positive, never an error. Confirmed hits are kept in a small ARC
// cache keyed by Key.Hash; a cached index is re-verified against the
// store before it is believed, so hash collisions can't fake
// membership.
//
// Lifecycle: Add every key during the build phase, call Freeze, then
// Lookup. Lookups are safe to run concurrently once the pipeline is
// frozen; Add and Freeze are not.
type Pipeline struct {
	f *Filter
	s *Store[Key]

	cache *arc.ARCCache[uint64, int]

	nlookup atomic.Uint64
	nreject atomic.Uint64
	nhit    atomic.Uint64
	nfp     atomic.Uint64
	ncached atomic.Uint64
}

// Stats is a point-in-time snapshot of pipeline counters.
type Stats struct {
	Lookups       uint64 // total Lookup calls
	FilterRejects uint64 // filter said definitely-absent
	Hits          uint64 // store-confirmed present
	FalsePositive uint64 // filter said maybe, store said no
	CacheHits     uint64 // answered from the hit cache
}

// NewPipeline builds a pipeline over 'f' and 's'. Both stages see
// every key exactly as Add hands it to them; the caller must not add
// to one behind the pipeline's back. 'cacheSize' bounds the confirmed
// hit cache (default 128 if zero or negative).
func NewPipeline(f *Filter, s *Store[Key], cacheSize int) (*Pipeline, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cache, err := arc.NewARC[uint64, int](cacheSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		f:     f,
		s:     s,
		cache: cache,
	}
	return p, nil
}

// Add registers 'k' with both stages.
func (p *Pipeline) Add(k Key) {
	p.s.Add(k)
	p.f.Add(k)
}

// Freeze ends the build phase: sorts the store and drops any cached
// indices made stale by the sort. Call it before the first Lookup and
// after any later burst of Adds.
func (p *Pipeline) Freeze() {
	p.s.StdSort()
	p.cache.Purge()
}

// Lookup reports whether 'k' is in the set. The filter stage is
// necessary but not sufficient; the store is the authority.
func (p *Pipeline) Lookup(k Key) bool {
	p.nlookup.Add(1)

	if i, ok := p.cache.Get(k.Hash()); ok {
		if v, err := p.s.Get(i); err == nil && v.Equal(k) {
			p.ncached.Add(1)
			return true
		}
	}

	if !p.f.Contains(k) {
		p.nreject.Add(1)
		return false
	}

	i, ok := p.s.BinarySearch(k)
	if !ok {
		p.nfp.Add(1)
		return false
	}

	p.nhit.Add(1)
	p.cache.Add(k.Hash(), i)
	return true
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Lookups:       p.nlookup.Load(),
		FilterRejects: p.nreject.Load(),
		Hits:          p.nhit.Load(),
		FalsePositive: p.nfp.Load(),
		CacheHits:     p.ncached.Load(),
	}
}
