// filter.go - Bloom filter membership pre-check
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
	"math"
)

// filterSeeds are the fixed seeds deriving the k independent bit
// positions per key; one hash per seed. Small distinct primes keep
// the derived positions independent for any reasonable Hasher.
var filterSeeds = [...]uint32{31, 37, 41, 43, 47, 53, 59}

// Filter is a Bloom filter over keys: a fixed-size bit array plus the
// fixed seed set and one Hasher. It never yields a false negative for
// a key that was Add'ed (and not Clear'ed since); it may yield false
// positives at a rate governed by the bit array size and population.
//
// Concurrent Contains calls are safe on a quiescent filter; Add calls
// must be serialized by the caller and must not race with Contains.
type Filter struct {
	bv *bitVector
	m  uint64
	h  Hasher
}

// FilterBits returns the bit array size needed to hold 'n' keys at a
// target false-positive probability 'p':
//
//	m = ceil(-n * ln(p) / (ln 2)^2)
func FilterBits(n uint64, p float64) uint64 {
	ln2 := math.Ln2
	return uint64(math.Ceil(-float64(n) * math.Log(p) / (ln2 * ln2)))
}

// NewFilter creates a Filter with a bit array of 'm' bits hashed by
// 'h'. A nil Hasher selects Murmur3. It returns ErrBadFilterSize if
// 'm' is zero; the bit array size and seed set never change after
// construction.
func NewFilter(m uint64, h Hasher) (*Filter, error) {
	if m == 0 {
		return nil, ErrBadFilterSize
	}
	if h == nil {
		h = Murmur3{}
	}

	f := &Filter{
		bv: newBitVector(m),
		m:  m,
		h:  h,
	}
	return f, nil
}

// Add registers key 'k' in the filter: one bit per seed, each index
// derived as hash mod m. Bits only ever flip from 0 to 1.
func (f *Filter) Add(k Key) {
	for _, seed := range filterSeeds {
		f.bv.Set(uint64(f.h.Sum32(k.b, seed)) % f.m)
	}
}

// Contains returns true if 'k' may be in the set: all k derived bits
// are set. A false return is authoritative.
func (f *Filter) Contains(k Key) bool {
	for _, seed := range filterSeeds {
		if !f.bv.IsSet(uint64(f.h.Sum32(k.b, seed)) % f.m) {
			return false
		}
	}
	return true
}

// Clear resets every bit; the filter is indistinguishable from a
// freshly constructed one with the same size, seeds and hasher.
func (f *Filter) Clear() {
	f.bv.Reset()
}

// Size returns the number of bits 'm' the filter was built with.
func (f *Filter) Size() uint64 {
	return f.m
}

// FillRatio returns the fraction of set bits; useful for judging
// whether a filter is overloaded for its population.
func (f *Filter) FillRatio() float64 {
	return float64(f.bv.Count()) / float64(f.bv.Size())
}
