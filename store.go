// store.go - growable ordered array of keys
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

// Default initial capacity when the caller doesn't pick one.
const defaultCapacity = 16

// Store is a growable, zero-origin-indexed array of K ordered by a
// caller supplied comparison. It is the authoritative membership
// structure behind Pipeline: sort it, then search it.
//
// Sortedness is not tracked as state. After any Add or InsertAt the
// caller must sort again before calling BinarySearch or
// ParallelBinarySearch; searching an unsorted store silently returns
// garbage. Find is correct regardless of order.
//
// A Store does no locking: mutation must not race with sorting or
// searching on the same instance. The intended lifecycle is a build
// phase that fully completes before the search phase starts.
type Store[K any] struct {
	buf []K // backing buffer; len(buf) is the capacity
	n   int // logical size, n <= len(buf)
	cmp func(a, b K) int
}

// NewStore makes an empty store with room for 'capacity' elements
// before the first resize. A zero capacity selects the default (16);
// a negative one returns ErrBadCapacity. 'cmp' must be a total order
// over K returning <0, 0, >0.
func NewStore[K any](capacity int, cmp func(a, b K) int) (*Store[K], error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}
	if capacity == 0 {
		capacity = defaultCapacity
	}

	s := &Store[K]{
		buf: make([]K, capacity),
		cmp: cmp,
	}
	return s, nil
}

// NewKeyStore makes an empty store of Key ordered by Key.Cmp.
func NewKeyStore(capacity int) (*Store[Key], error) {
	return NewStore(capacity, Key.Cmp)
}

// Len returns the logical size of the store.
func (s *Store[K]) Len() int {
	return s.n
}

// Cap returns the current capacity of the backing buffer.
func (s *Store[K]) Cap() int {
	return len(s.buf)
}

// Add appends 'v' at the logical end in amortized O(1); the backing
// buffer grows by 1.5x when full.
func (s *Store[K]) Add(v K) {
	if s.n == len(s.buf) {
		s.grow(len(s.buf) + len(s.buf)/2 + 1)
	}
	s.buf[s.n] = v
	s.n++
}

// Get returns the element at 'i'; ErrIndexRange if 'i' is outside
// [0, Len()).
func (s *Store[K]) Get(i int) (K, error) {
	if i < 0 || i >= s.n {
		var zero K
		return zero, errIndexRange("get", i, s.n)
	}
	return s.buf[i], nil
}

// InsertAt puts 'v' at index 'i', shifting every element at or after
// 'i' one position right; O(n). 'i' may be anywhere in [0, Len()]
// (Len() appends); anything else is ErrIndexRange. The capacity
// doubles when the buffer is full.
func (s *Store[K]) InsertAt(i int, v K) error {
	if i < 0 || i > s.n {
		return errIndexRange("insert", i, s.n)
	}
	if s.n == len(s.buf) {
		s.grow(len(s.buf) * 2)
	}

	copy(s.buf[i+1:s.n+1], s.buf[i:s.n])
	s.buf[i] = v
	s.n++
	return nil
}

// Find scans linearly for the first element comparing equal to 'v'
// and returns its index; O(n), correct whether or not the store is
// sorted.
func (s *Store[K]) Find(v K) (int, bool) {
	for i := 0; i < s.n; i++ {
		if s.cmp(s.buf[i], v) == 0 {
			return i, true
		}
	}
	return 0, false
}

// ToSlice returns a snapshot copy of the logical range; mutating the
// result does not touch the store.
func (s *Store[K]) ToSlice() []K {
	out := make([]K, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// grow replaces the backing buffer with a larger one. The swap is
// the last step, so a reader never observes a torn buffer.
func (s *Store[K]) grow(capacity int) {
	buf := make([]K, capacity)
	copy(buf, s.buf[:s.n])
	s.buf = buf
}

// active returns the live window of the backing buffer for the
// sort and search routines.
func (s *Store[K]) active() []K {
	return s.buf[:s.n]
}
