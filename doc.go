/*
Package persistent is a library of persistent (immutable) collection types:
a hash-trie map and set, a chunked random-access vector, a cons-list stack,
an amortized two-stack queue, and comparator-ordered tree map and set.

Every “mutating” operation on any of the collections returns a new
collection value; prior versions remain valid and unmodified. Under the
hood the new incarnation shares most of its structure (trie nodes, chunks,
cons cells) with the original, so copies are cheap in space and time.

Because every instance is immutable after construction, arbitrarily many
goroutines may hold, read, and derive new versions from the same instance
concurrently without any locking: thread-safety is a corollary of
immutability, not a separate mechanism.

The sub-packages hold one collection each; this root package only declares
the narrow read capabilities all of them share. There is deliberately no
mutable-collection interface anywhere in the module: write operations that
must not happen are not representable, rather than failing at run-time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

// Collection is the read capability common to all persistent collections in
// this module. Each sub-package's concrete type satisfies it.
type Collection[T any] interface {
	// Len returns the number of elements held by the collection.
	Len() int
	// Each walks the collection's elements in its natural order, calling f
	// for each one. Walking stops early as soon as f returns false.
	Each(f func(el T) bool)
}

// Sequence is the read capability of collections with positional access.
type Sequence[T any] interface {
	Collection[T]
	// Get returns the element at position i, with 0 ≤ i < Len().
	Get(i int) T
}
