// hash_test.go -- test suite for the Hasher variants
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
	"crypto"
	"errors"
	"strings"
	"testing"
)

func allHashers(t *testing.T) map[string]Hasher {
	assert := newAsserter(t)

	md5h, err := NewDigestHasher(crypto.MD5)
	assert(err == nil, "md5: %s", err)
	sha1h, err := NewDigestHasher(crypto.SHA1)
	assert(err == nil, "sha1: %s", err)
	sha256h, err := NewDigestHasher(crypto.SHA256)
	assert(err == nil, "sha256: %s", err)

	return map[string]Hasher{
		"murmur3":  Murmur3{},
		"siphash":  SipHasher{},
		"fasthash": FastHasher{},
		"xxhash":   XXHasher{},
		"md5":      md5h,
		"sha1":     sha1h,
		"sha256":   sha256h,
	}
}

func TestHasherDeterministic(t *testing.T) {
	assert := newAsserter(t)

	for name, h := range allHashers(t) {
		for i, w := range keyw {
			seed := uint32(i*31 + 1)
			a := h.Sum32([]byte(w), seed)
			b := h.Sum32([]byte(w), seed)
			assert(a == b, "%s: %s/%d: not deterministic (%#x vs %#x)",
				name, w, seed, a, b)
		}

		// different seeds should vary the output for at least
		// one word; a constant function is useless as a filter
		// probe
		varies := false
		for _, w := range keyw {
			if h.Sum32([]byte(w), 31) != h.Sum32([]byte(w), 59) {
				varies = true
				break
			}
		}
		assert(varies, "%s: seed has no effect", name)
	}
}

func TestMurmurZeroSeed(t *testing.T) {
	assert := newAsserter(t)

	var h Murmur3
	for _, w := range keyw {
		b := []byte(w)
		assert(h.Sum32(b, 0) == h.Sum32(b, murmurDefaultSeed),
			"%s: zero seed must alias the default seed", w)
	}
}

func TestDigestTruncateXor(t *testing.T) {
	assert := newAsserter(t)

	h, err := NewDigestHasher(crypto.SHA256)
	assert(err == nil, "sha256: %s", err)

	// digest variants fold the seed in via XOR over the truncated
	// digest; that relationship is part of the contract
	for _, w := range keyw {
		b := []byte(w)
		base := h.Sum32(b, 0)
		for _, seed := range []uint32{1, 31, 0xffffffff} {
			assert(h.Sum32(b, seed) == base^seed,
				"%s/%#x: seed not XOR-folded", w, seed)
		}
	}
}

func TestDigestUnsupported(t *testing.T) {
	assert := newAsserter(t)

	for _, algo := range []crypto.Hash{crypto.SHA512, crypto.SHA384, crypto.SHA3_256} {
		_, err := NewDigestHasher(algo)
		assert(err != nil, "%s: construction must fail", algo)
		assert(errors.Is(err, ErrUnsupportedHash), "%s: exp ErrUnsupportedHash, saw %v", algo, err)

		// the message must name the three supported algorithms
		for _, want := range []string{"MD5", "SHA-1", "SHA-256"} {
			assert(strings.Contains(err.Error(), want),
				"%s: error doesn't name %s: %s", algo, want, err)
		}
	}
}
