// list.go - append-only persistent list for undo/versioning callers
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

// List is an immutable, structurally-shared list: Append never
// modifies the receiver, it returns a new version whose tail is the
// old list in its entirety. Every retained version stays valid
// forever, which is what undo and versioning callers want.
//
// A nil *List is the empty list and is ready to use. Lists are never
// sorted, hashed or resized; they are deliberately outside the
// filter/store pipeline.
type List[T any] struct {
	last T
	prev *List[T]
	n    int
}

// Append returns a new list holding the receiver's elements followed
// by 'v'. O(1); the receiver is shared, not copied.
func (l *List[T]) Append(v T) *List[T] {
	n := 1
	if l != nil {
		n += l.n
	}
	return &List[T]{last: v, prev: l, n: n}
}

// Len returns the number of elements in this version of the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// Get returns the element at index 'i'; ErrIndexRange outside
// [0, Len()). Cost is O(Len()-i): the list is a chain of versions
// walked from the newest end.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.Len() {
		var zero T
		return zero, errIndexRange("list get", i, l.Len())
	}

	node := l
	for node.n-1 > i {
		node = node.prev
	}
	return node.last, nil
}

// ToSlice copies this version's elements, oldest first.
func (l *List[T]) ToSlice() []T {
	out := make([]T, l.Len())
	for node := l; node != nil; node = node.prev {
		out[node.n-1] = node.last
	}
	return out
}
