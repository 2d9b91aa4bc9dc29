// sort.go - interchangeable sorting algorithms for Store
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
	"slices"
)

// The three sorts below share one postcondition: elements in
// [0, Len()) end up in non-decreasing order under the store's
// comparison. They differ in stability and constant factors only.

// QuickSort sorts the store in place by recursive partitioning with a
// median-of-three pivot; average O(n log n), not stable. The pivot
// choice keeps already-sorted and reverse-sorted input off the
// quadratic path a fixed-position pivot would hit.
func (s *Store[K]) QuickSort() {
	quicksort(s.active(), s.cmp)
}

func quicksort[K any](v []K, cmp func(a, b K) int) {
	if len(v) < 2 {
		return
	}

	p := partition(v, cmp)
	quicksort(v[:p], cmp)
	quicksort(v[p+1:], cmp)
}

// partition picks the median of the first, middle and last element,
// parks it at the end, then does the usual Lomuto sweep. Returns the
// pivot's final index.
func partition[K any](v []K, cmp func(a, b K) int) int {
	hi := len(v) - 1
	mid := hi / 2

	if cmp(v[mid], v[0]) < 0 {
		v[mid], v[0] = v[0], v[mid]
	}
	if cmp(v[hi], v[0]) < 0 {
		v[hi], v[0] = v[0], v[hi]
	}
	if cmp(v[mid], v[hi]) < 0 {
		v[mid], v[hi] = v[hi], v[mid]
	}
	pivot := v[hi]

	i := 0
	for j := 0; j < hi; j++ {
		if cmp(v[j], pivot) < 0 {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[hi] = v[hi], v[i]
	return i
}

// MergeSort sorts the store with a bottom-up merge sort; O(n log n)
// deterministic, stable, one O(n) auxiliary buffer reused across
// merge levels. Use this when equal keys must keep their insertion
// order.
func (s *Store[K]) MergeSort() {
	v := s.active()
	if len(v) < 2 {
		return
	}

	aux := make([]K, len(v))
	for width := 1; width < len(v); width *= 2 {
		for lo := 0; lo < len(v)-width; lo += 2 * width {
			mid := lo + width
			hi := min(lo+2*width, len(v))
			merge(v, aux, lo, mid, hi, s.cmp)
		}
	}
}

// merge combines the sorted runs v[lo:mid] and v[mid:hi]. Ties take
// from the left run first; that is what makes the sort stable.
func merge[K any](v, aux []K, lo, mid, hi int, cmp func(a, b K) int) {
	copy(aux[lo:hi], v[lo:hi])

	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			v[k] = aux[j]
			j++
		case j >= hi:
			v[k] = aux[i]
			i++
		case cmp(aux[j], aux[i]) < 0:
			v[k] = aux[j]
			j++
		default:
			v[k] = aux[i]
			i++
		}
	}
}

// StdSort delegates to the library sort (pattern-defeating
// quicksort); fastest in practice for large n, not stable.
func (s *Store[K]) StdSort() {
	slices.SortFunc(s.active(), s.cmp)
}
