// errors.go - public errors exposed by keyset
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
	"errors"
	"fmt"
)

var (
	// ErrNilKey is returned when a key is constructed from a nil byte slice.
	// A nil input is never silently treated as an empty key.
	ErrNilKey = errors.New("key: nil input")

	// ErrUnsupportedHash is returned when a digest-backed Hasher is
	// constructed from anything other than MD5, SHA-1 or SHA-256.
	ErrUnsupportedHash = errors.New("hasher: unsupported digest; supported: MD5, SHA-1, SHA-256")

	// ErrBadFilterSize is returned when a Filter is constructed with a
	// zero-length bit array.
	ErrBadFilterSize = errors.New("filter: bit array size must be positive")

	// ErrBadCapacity is returned when a Store is constructed with a
	// negative initial capacity.
	ErrBadCapacity = errors.New("store: initial capacity must be positive")

	// ErrNilCompare is returned when a Store is constructed without a
	// compare function.
	ErrNilCompare = errors.New("store: nil compare function")

	// ErrIndexRange is returned by Get and InsertAt for indices outside
	// the valid range. Callers can match it with errors.Is().
	ErrIndexRange = errors.New("index out of range")
)

func errIndexRange(who string, i, n int) error {
	return fmt.Errorf("%s: %w: index %d, size %d", who, ErrIndexRange, i, n)
}
