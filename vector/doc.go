/*
Package vector implements an immutable persistent vector with random
access, designed for use-cases similar to Go slices.

The backing store is a two-level chunk table: an outer array of pointers to
fixed-size chunks of 32 elements each. Every chunk except possibly the last
is full. Reading is O(1); appending is amortized O(1) and copies at most
the outer array plus a single chunk, sharing all other chunks with the
original. Point updates likewise copy exactly one chunk.

Arbitrary-position insertion and removal, and sub-vector extraction, are
deliberately not chunk-aware: they rebuild the vector from an intermediate
slice in O(n). Only append and point-update are on the optimized path.

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.vector'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.vector")
}
