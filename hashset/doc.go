/*
Package hashset implements an immutable persistent hash set, backed by the
persistent hash map of package hashmap: elements are the map's keys, and
all of them are associated with a single shared sentinel value.

Immutable hash sets are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.hashset'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.hashset")
}
