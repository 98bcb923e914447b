/*
Package stack implements an immutable persistent LIFO stack as a
singly-linked list of cons cells, also usable as an indexed list.

Pushing is O(1) and allocates a single cell pointing at the unchanged rest
of the stack, so derived stacks automatically share their tails. Indexed
operations walk i cells from the head; updates rebuild only the prefix
before the touched position and share the unmodified suffix.

Immutable stacks are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.stack'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.stack")
}
