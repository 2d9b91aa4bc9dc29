// hash.go - pluggable 32-bit hash capability and its variants
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
	"crypto"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/dchest/siphash"
	"github.com/opencoff/go-fasthash"
	"github.com/spaolacci/murmur3"
)

// Hasher is the hash capability consumed by Filter: a deterministic,
// seeded 32-bit hash over a byte sequence. Identical (input, seed)
// pairs always produce identical values.
type Hasher interface {
	Sum32(b []byte, seed uint32) uint32
}

// murmurDefaultSeed replaces an explicit zero seed in Murmur3.Sum32.
// This is a documented special case of the murmur variant only; other
// hashers treat zero like any other seed.
const murmurDefaultSeed uint32 = 0x9747b28c

// Murmur3 computes MurmurHash3 (x86, 32-bit variant). It is the
// default Hasher for filters constructed without one.
type Murmur3 struct{}

// Sum32 hashes 'b' with 'seed'; a zero seed is replaced by the fixed
// murmurDefaultSeed.
func (Murmur3) Sum32(b []byte, seed uint32) uint32 {
	if seed == 0 {
		seed = murmurDefaultSeed
	}
	return murmur3.Sum32WithSeed(b, seed)
}

// DigestHasher adapts a cryptographic digest into the Hasher
// capability: the digest of the input is truncated to its first 4
// bytes, read big-endian, and XOR'd with the seed. Only MD5, SHA-1
// and SHA-256 are accepted.
type DigestHasher struct {
	algo crypto.Hash
}

// NewDigestHasher makes a DigestHasher for 'algo'. It returns
// ErrUnsupportedHash for any algorithm other than crypto.MD5,
// crypto.SHA1 or crypto.SHA256.
func NewDigestHasher(algo crypto.Hash) (*DigestHasher, error) {
	switch algo {
	case crypto.MD5, crypto.SHA1, crypto.SHA256:
		return &DigestHasher{algo: algo}, nil
	}
	return nil, fmt.Errorf("%w: have %s", ErrUnsupportedHash, algo.String())
}

// Sum32 digests 'b', truncates to 32 bits and folds in 'seed'.
func (d *DigestHasher) Sum32(b []byte, seed uint32) uint32 {
	var sum [sha256.Size]byte

	switch d.algo {
	case crypto.MD5:
		s := md5.Sum(b)
		copy(sum[:], s[:])
	case crypto.SHA1:
		s := sha1.Sum(b)
		copy(sum[:], s[:])
	case crypto.SHA256:
		s := sha256.Sum256(b)
		copy(sum[:], s[:])
	}

	return binary.BigEndian.Uint32(sum[:4]) ^ seed
}

// SipHasher computes SipHash-2-4 keyed from the seed, truncated to
// 32 bits.
type SipHasher struct{}

func (SipHasher) Sum32(b []byte, seed uint32) uint32 {
	k := uint64(seed)
	h := siphash.Hash(k, k<<32|k, b)
	return uint32(h)
}

// FastHasher computes Zi Long Tan's superfast hash, truncated to
// 32 bits.
type FastHasher struct{}

func (FastHasher) Sum32(b []byte, seed uint32) uint32 {
	return uint32(fasthash.Hash64(uint64(seed), b))
}

// XXHasher computes seeded xxHash64, truncated to 32 bits.
type XXHasher struct{}

func (XXHasher) Sum32(b []byte, seed uint32) uint32 {
	return uint32(xxhash.Checksum64S(b, uint64(seed)))
}

var _ Hasher = Murmur3{}
var _ Hasher = &DigestHasher{}
var _ Hasher = SipHasher{}
var _ Hasher = FastHasher{}
var _ Hasher = XXHasher{}
