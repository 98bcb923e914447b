package queue

import (
	"fmt"

	"github.com/npillmayer/persistent/maybe"
	"github.com/npillmayer/persistent/stack"
)

// Queue is a persistent FIFO queue. The zero value is an empty queue ready
// for use. Queues are immutable: every mutator returns a new incarnation,
// sharing stack cells with the original wherever possible.
//
// Invariant: all elements of front (top first) precede all elements of
// back (bottom first) in FIFO order. front may be empty while elements are
// waiting in back; the pending normalization is applied on the next Pop.
type Queue[T any] struct {
	front  stack.Stack[T]
	back   stack.Stack[T]
	length int
}

// Immutable constructs an empty queue.
func Immutable[T any]() Queue[T] {
	return Queue[T]{}
}

// From constructs a queue from a list of elements, in encounter order: the
// first argument is the first to be dequeued.
func From[T any](els ...T) Queue[T] {
	q := Queue[T]{}
	for _, el := range els {
		q = q.Push(el)
	}
	return q
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the queue.
func (q Queue[T]) Len() int {
	return q.length
}

// Push returns a copy of the queue with value enqueued at the rear. O(1).
func (q Queue[T]) Push(value T) Queue[T] {
	return Queue[T]{front: q.front, back: q.back.Push(value), length: q.length + 1}
}

// Pop returns a copy of the queue with the oldest element removed. O(1)
// once normalized; a pending normalization reverses the back stack first.
func (q Queue[T]) Pop() Queue[T] {
	assertThat(q.length > 0, "attempt to remove item from empty queue")
	q = q.normalized()
	return Queue[T]{front: q.front.Pop(), back: q.back, length: q.length - 1}
}

// Peek returns the oldest element, if any, without removing it.
func (q Queue[T]) Peek() maybe.Maybe[T] {
	if q.length == 0 {
		return maybe.Nothing[T]()
	}
	if q.front.Len() > 0 {
		return q.front.Top()
	}
	// normalization pending: the oldest element sits at the back's bottom
	return maybe.Just(q.back.Get(q.back.Len() - 1))
}

// Each walks the queue's elements in FIFO order, calling f for each one,
// until f returns false.
func (q Queue[T]) Each(f func(el T) bool) {
	aborted := false
	q.front.Each(func(el T) bool {
		if !f(el) {
			aborted = true
		}
		return !aborted
	})
	if aborted {
		return
	}
	q.back.Reverse().Each(f)
}

// AsSlice returns the queue's elements as a fresh slice, in FIFO order.
func (q Queue[T]) AsSlice() []T {
	els := make([]T, 0, q.length)
	q.Each(func(el T) bool {
		els = append(els, el)
		return true
	})
	return els
}

// normalized moves the reversed back stack into the front if the front ran
// dry. This happens at most once per element over its lifetime in the
// queue.
func (q Queue[T]) normalized() Queue[T] {
	if q.front.Len() > 0 || q.length == 0 {
		return q
	}
	tracer().Debugf("normalizing queue of length %d", q.length)
	return Queue[T]{front: q.back.Reverse(), back: stack.Immutable[T](), length: q.length}
}

// --- Removal by value ------------------------------------------------------

// Without returns a copy of the queue with the first occurrence of el
// removed, preserving FIFO order of the rest. O(n): the queue is rebuilt.
func Without[T comparable](q Queue[T], el T) Queue[T] {
	result := Queue[T]{}
	dropped := false
	q.Each(func(e T) bool {
		if !dropped && e == el {
			dropped = true
			return true
		}
		result = result.Push(e)
		return true
	})
	if !dropped {
		return q // no need for modification
	}
	return result
}

// WithoutAll returns a copy of the queue with every occurrence of any of
// the given elements removed, preserving FIFO order of the rest. O(n).
func WithoutAll[T comparable](q Queue[T], els ...T) Queue[T] {
	drop := make(map[T]bool, len(els))
	for _, el := range els {
		drop[el] = true
	}
	result := Queue[T]{}
	changed := false
	q.Each(func(e T) bool {
		if drop[e] {
			changed = true
			return true
		}
		result = result.Push(e)
		return true
	})
	if !changed {
		return q
	}
	return result
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
