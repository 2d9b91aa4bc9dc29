// list_test.go -- test suite for the persistent list
//
// (c) Sudhi Herle 2018
//
// License GPLv2
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package keyset

import (
	"errors"
	"testing"
)

func TestListEmpty(t *testing.T) {
	assert := newAsserter(t)

	var l *List[string]
	assert(l.Len() == 0, "nil list len %d", l.Len())
	assert(len(l.ToSlice()) == 0, "nil list ToSlice non-empty")

	_, err := l.Get(0)
	assert(errors.Is(err, ErrIndexRange), "get on empty: exp ErrIndexRange, saw %v", err)
}

func TestListAppend(t *testing.T) {
	assert := newAsserter(t)

	var l *List[string]
	for i, w := range keyw {
		l = l.Append(w)
		assert(l.Len() == i+1, "len after append: exp %d, saw %d", i+1, l.Len())
	}

	for i, w := range keyw {
		v, err := l.Get(i)
		assert(err == nil, "get %d: %s", i, err)
		assert(v == w, "get %d: exp %s, saw %s", i, w, v)
	}

	_, err := l.Get(len(keyw))
	assert(errors.Is(err, ErrIndexRange), "get past end: exp ErrIndexRange, saw %v", err)
	_, err = l.Get(-1)
	assert(errors.Is(err, ErrIndexRange), "get -1: exp ErrIndexRange, saw %v", err)
}

// Every retained version must stay intact after later appends: that
// is the whole point of structural sharing.
func TestListVersions(t *testing.T) {
	assert := newAsserter(t)

	var versions []*List[int]
	var l *List[int]
	versions = append(versions, l)

	for i := 0; i < 50; i++ {
		l = l.Append(i)
		versions = append(versions, l)
	}

	for n, v := range versions {
		assert(v.Len() == n, "version %d: len %d", n, v.Len())
		got := v.ToSlice()
		for i := 0; i < n; i++ {
			assert(got[i] == i, "version %d: [%d] = %d", n, i, got[i])
		}
	}
}

func TestListSliceOrder(t *testing.T) {
	assert := newAsserter(t)

	var l *List[int]
	for i := 0; i < 10; i++ {
		l = l.Append(i * i)
	}

	got := l.ToSlice()
	assert(len(got) == 10, "len: exp 10, saw %d", len(got))
	for i := range got {
		assert(got[i] == i*i, "[%d]: exp %d, saw %d", i, i*i, got[i])
	}
}
