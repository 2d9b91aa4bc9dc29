// key.go - immutable ordered byte-sequence keys
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
	"bytes"

	"github.com/OneOfOne/xxhash"
)

// hashSeed perturbs Key.Hash so key hashes don't collide with plain
// xxhash sums of the same bytes elsewhere in a program.
const hashSeed uint64 = 0x5bd1e995

// Key is an immutable byte sequence used as a search and sort key.
// The zero value is the empty key. Keys are ordered length-first:
// a shorter key always sorts before a longer one, and only keys of
// equal length are compared bytewise.
type Key struct {
	b []byte
}

// NewKey makes a Key from a copy of 'b'. It returns ErrNilKey if 'b'
// is nil; a nil slice is a caller bug, not an empty key.
func NewKey(b []byte) (Key, error) {
	if b == nil {
		return Key{}, ErrNilKey
	}

	k := Key{b: make([]byte, len(b))}
	copy(k.b, b)
	return k, nil
}

// NewKeyString makes a Key from string 's'.
func NewKeyString(s string) Key {
	return Key{b: []byte(s)}
}

// Len returns the number of bytes in the key.
func (k Key) Len() int {
	return len(k.b)
}

// Bytes returns a copy of the underlying bytes; the key itself stays
// immutable.
func (k Key) Bytes() []byte {
	b := make([]byte, len(k.b))
	copy(b, k.b)
	return b
}

// String returns the key bytes as a string.
func (k Key) String() string {
	return string(k.b)
}

// Cmp returns -1, 0 or +1 as k orders before, equal to or after 'o'.
// Length decides first; content is only consulted for equal lengths.
func (k Key) Cmp(o Key) int {
	if d := len(k.b) - len(o.b); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	return bytes.Compare(k.b, o.b)
}

// Equal returns true iff both keys have the same length and content.
func (k Key) Equal(o Key) bool {
	return bytes.Equal(k.b, o.b)
}

// Hash returns a deterministic 64-bit hash of the key; equal keys
// hash identically.
func (k Key) Hash() uint64 {
	return xxhash.Checksum64S(k.b, hashSeed)
}
