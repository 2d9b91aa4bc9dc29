// helpers_test.go - helper routines for tests
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
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// One seeded source per test run; never the package-global rand, so
// failures reproduce.
func newRand() *rand.Rand {
	var seed uint64 = 0xdeadbeefbaadf00d
	return rand.New(rand.NewSource(int64(seed)))
}

// randKeys makes 'n' distinct random keys of length 4..19 bytes.
func randKeys(rng *rand.Rand, n int) []Key {
	seen := make(map[string]bool, n)
	keys := make([]Key, 0, n)
	for len(keys) < n {
		b := make([]byte, 4+rng.Intn(16))
		for i := range b {
			b[i] = byte('a' + rng.Intn(26))
		}
		if seen[string(b)] {
			continue
		}
		seen[string(b)] = true
		keys = append(keys, NewKeyString(string(b)))
	}
	return keys
}

var keyw = []string{
	"expectoration",
	"mizzenmastman",
	"stockfather",
	"pictorialness",
	"villainous",
	"unquality",
	"sized",
	"Tarahumari",
	"endocrinotherapy",
	"quicksandy",
	"heretics",
	"pediment",
	"spleen's",
	"Shepard's",
	"paralyzed",
	"megahertzes",
	"Richardson's",
	"mechanics's",
	"Springfield",
	"burlesques",
}
