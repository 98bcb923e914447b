/*
Package ordered implements immutable sorted maps and sets, ordered by a
client-supplied comparator.

The backing store is a read-only balanced binary search tree snapshot.
Unlike the trie-backed structures of this module, a “mutating” call here
rebuilds a complete new tree holding the prior entries plus the delta and
wraps it read-only — O(n) per mutation, not O(log n). The old instance's
tree is never touched. Lookups, neighbour queries (floor, ceiling, lower,
higher) and range views operate on the snapshot in O(log n).

Immutable sorted maps and sets are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordered

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.ordered'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.ordered")
}
