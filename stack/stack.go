package stack

import (
	"fmt"

	"github.com/npillmayer/persistent/maybe"
)

// cell is one link of the list. Cells are immutable and may be shared by
// any number of stacks with a common tail.
type cell[T any] struct {
	value T
	rest  *cell[T]
}

// Stack is a persistent LIFO stack. The zero value is an empty stack ready
// for use. Stacks are immutable: every mutator returns a new incarnation,
// sharing cells with the original wherever possible.
type Stack[T any] struct {
	head   *cell[T]
	length int
}

// Immutable constructs an empty stack.
func Immutable[T any]() Stack[T] {
	return Stack[T]{}
}

// From constructs a stack from a list of elements, in encounter order:
// the first argument becomes the top of the stack.
func From[T any](els ...T) Stack[T] {
	s := Stack[T]{}
	for i := len(els) - 1; i >= 0; i-- {
		s = s.Push(els[i])
	}
	return s
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements on the stack.
func (s Stack[T]) Len() int {
	return s.length
}

// Top returns the top element, if any, without removing it.
func (s Stack[T]) Top() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.value)
}

// Push returns a copy of the stack with value on top. O(1): allocates one
// cell pointing at the unchanged former stack.
func (s Stack[T]) Push(value T) Stack[T] {
	return Stack[T]{head: &cell[T]{value: value, rest: s.head}, length: s.length + 1}
}

// Pop returns a copy of the stack with the top element removed. O(1): the
// result simply is the shared tail.
func (s Stack[T]) Pop() Stack[T] {
	assertThat(s.length > 0, "attempt to remove item from empty stack")
	return Stack[T]{head: s.head.rest, length: s.length - 1}
}

// Get returns the element at position i, counted from the top. O(i).
func (s Stack[T]) Get(i int) T {
	assertThat(i >= 0 && i < s.length, "stack index out of bounds: %d with length %d", i, s.length)
	c := s.head
	for ; i > 0; i-- {
		c = c.rest
	}
	return c.value
}

// Set returns a copy of the stack with the element at position i replaced
// by value. Rebuilds the i cells above position i and shares the suffix.
func (s Stack[T]) Set(i int, value T) Stack[T] {
	assertThat(i >= 0 && i < s.length, "stack index out of bounds: %d with length %d", i, s.length)
	prefix, c := s.splitAt(i)
	tracer().Debugf("set at %d: rebuilding %d cells", i, len(prefix))
	suffix := &cell[T]{value: value, rest: c.rest}
	return Stack[T]{head: relink(prefix, suffix), length: s.length}
}

// Insert returns a copy of the stack with value inserted at position i,
// pushing deeper elements further down. i == Len() appends at the bottom.
func (s Stack[T]) Insert(i int, value T) Stack[T] {
	assertThat(i >= 0 && i <= s.length, "stack index out of bounds: %d with length %d", i, s.length)
	prefix := make([]T, 0, i)
	c := s.head
	for n := 0; n < i; n++ {
		prefix = append(prefix, c.value)
		c = c.rest
	}
	suffix := &cell[T]{value: value, rest: c}
	return Stack[T]{head: relink(prefix, suffix), length: s.length + 1}
}

// Remove returns a copy of the stack with the element at position i
// removed. Rebuilds the prefix above i and shares the suffix below.
func (s Stack[T]) Remove(i int) Stack[T] {
	assertThat(i >= 0 && i < s.length, "stack index out of bounds: %d with length %d", i, s.length)
	prefix, c := s.splitAt(i)
	return Stack[T]{head: relink(prefix, c.rest), length: s.length - 1}
}

// Reverse returns a stack holding the same elements in opposite order. O(n).
func (s Stack[T]) Reverse() Stack[T] {
	r := Stack[T]{}
	for c := s.head; c != nil; c = c.rest {
		r = r.Push(c.value)
	}
	return r
}

// Each walks the stack's elements from top to bottom, calling f for each
// one, until f returns false.
func (s Stack[T]) Each(f func(el T) bool) {
	for c := s.head; c != nil; c = c.rest {
		if !f(c.value) {
			return
		}
	}
}

// AsSlice returns the stack's elements as a fresh slice, top first.
func (s Stack[T]) AsSlice() []T {
	els := make([]T, 0, s.length)
	for c := s.head; c != nil; c = c.rest {
		els = append(els, c.value)
	}
	return els
}

// --- Internals -------------------------------------------------------------

// splitAt collects the values of the first i cells and returns them
// together with the cell at position i.
func (s Stack[T]) splitAt(i int) ([]T, *cell[T]) {
	prefix := make([]T, 0, i)
	c := s.head
	for n := 0; n < i; n++ {
		prefix = append(prefix, c.value)
		c = c.rest
	}
	return prefix, c
}

// relink builds fresh cells for a prefix of values on top of a shared
// suffix.
func relink[T any](prefix []T, suffix *cell[T]) *cell[T] {
	head := suffix
	for i := len(prefix) - 1; i >= 0; i-- {
		head = &cell[T]{value: prefix[i], rest: head}
	}
	return head
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
