/*
Package hashmap implements an immutable persistent hash map, backed by a
hash array mapped trie (HAMT).

An immutable persistent map has copy-on-write behaviour: each “modification”
of the map (insertion or deletion of a key) creates a copy, leaving the
original unmodified. Under the hood, copy-on-write retains most of the trie
nodes held by the original and creates new incarnations only along the path
from the root to the touched leaf. Thus, most of the structure/memory is
shared between original and copy, transparently to clients.

Immutable hash maps are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.hashmap'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.hashmap")
}
