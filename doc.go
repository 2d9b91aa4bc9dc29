// doc.go - top level documentation
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

// Package keyset implements staged membership testing over large,
// mutable sets of ordered keys.
//
// Membership queries run through a two stage pipeline:
//
//  1. A Bloom filter ('Filter') answers "definitely absent" in O(1);
//     it never yields a false negative, only bounded false positives.
//  2. A sorted, growable array of keys ('Store') is the authority;
//     binary search over it confirms or refutes the filter's verdict.
//
// Keys are immutable byte sequences ('Key') ordered length-first, then
// lexicographically. The filter derives its bit positions from a fixed
// set of prime seeds fed to a pluggable hash capability ('Hasher');
// concrete hashers include MurmurHash3 (the default), truncated
// cryptographic digests (MD5, SHA-1, SHA-256), SipHash-2-4, fasthash
// and xxHash.
//
// The 'Pipeline' type glues the two stages together and keeps an ARC
// cache of confirmed hits in front of the store, along with counters
// for filter rejects and false positives.
//
// The library is strictly in-memory and provides no locking of its
// own: a store must be fully built and sorted before any search runs
// against it. ParallelBinarySearch and the read side of the filter
// are safe for concurrent use over a quiescent structure.
package keyset
