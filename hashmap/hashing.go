package hashmap

import (
	"hash/maphash"
	"math/bits"
)

// The trie consumes a 32-bit hash code in chunks of 5 bits, giving 32-way
// branching and at most ⌈32/5⌉ = 7 levels.
const (
	chunkBits uint32 = 5
	fanout    uint32 = 1 << chunkBits
	chunkMask uint32 = fanout - 1
)

// mix spreads the entropy of a raw hash code over all bits, so that poorly
// distributed hash functions do not cluster in the upper trie levels.
// These are the finalization steps of MurmurHash3.
func mix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// masked extracts the 5-bit trie segment of a hash code at a given level.
// shift grows by chunkBits per level of descent.
func masked(hash, shift uint32) uint32 {
	return (hash >> shift) & chunkMask
}

// bitpos returns the bitmap bit for a 5-bit segment value.
func bitpos(mask uint32) uint32 {
	return 1 << mask
}

// sparseIndex translates a bitmap bit into the physical offset within the
// densely packed children array of a bitmap node: the population count of
// all bits below it.
func sparseIndex(bitmap, bit uint32) int {
	return bits.OnesCount32(bitmap & (bit - 1))
}

var defaultSeed = maphash.MakeSeed()

// defaultHasher hashes any comparable key with the runtime's maphash,
// folded down to the 32 bits the trie consumes.
func defaultHasher[K comparable]() func(K) uint32 {
	return func(key K) uint32 {
		h := maphash.Comparable(defaultSeed, key)
		return uint32(h ^ (h >> 32))
	}
}
