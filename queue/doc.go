/*
Package queue implements an immutable persistent FIFO queue built from two
persistent stacks.

Elements are enqueued onto a back stack and dequeued from a front stack.
Whenever the front runs dry, the back is reversed into a fresh front
(“normalization”). Normalization costs O(n), but happens at most once per
element between enqueueing and dequeueing it, so the amortized cost per
operation is O(1). Removal by value has no cheap structural-sharing path in
a two-stack queue and rebuilds the queue in O(n).

Immutable queues are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.queue'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.queue")
}
