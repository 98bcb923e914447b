package vector

import (
	"fmt"

	"github.com/npillmayer/persistent/maybe"
)

const (
	chunkBits = 5
	chunkSize = 1 << chunkBits // 32 elements per chunk
	chunkMask = chunkSize - 1
)

// Vector is a persistent random-access sequence. The zero value is an
// empty vector ready for use, i.e. this is legal:
//
//     v := vector.Vector[int]{}.Push(42)
//
// Vectors are immutable: every mutator returns a new incarnation, sharing
// unchanged chunks with the original.
type Vector[T any] struct {
	length int
	chunks [][]T
}

// Immutable constructs an empty vector.
func Immutable[T any]() Vector[T] {
	return Vector[T]{}
}

// From constructs a vector from a list of elements, in encounter order.
func From[T any](els ...T) Vector[T] {
	return fromSlice(els)
}

// fromSlice packs a slice into full chunks of 32, plus a partial last one.
func fromSlice[T any](els []T) Vector[T] {
	if len(els) == 0 {
		return Vector[T]{}
	}
	chunks := make([][]T, (len(els)+chunkMask)>>chunkBits)
	for i := range chunks {
		lo := i << chunkBits
		hi := lo + chunkSize
		if hi > len(els) {
			hi = len(els)
		}
		chunk := make([]T, hi-lo)
		copy(chunk, els[lo:hi])
		chunks[i] = chunk
	}
	return Vector[T]{length: len(els), chunks: chunks}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the vector.
func (v Vector[T]) Len() int {
	return v.length
}

// Get returns the element at position i, with 0 ≤ i < Len().
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && i < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	return v.chunks[i>>chunkBits][i&chunkMask]
}

// Last returns the vector's last element, if any.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.length == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.Get(v.length - 1))
}

// Push returns a copy of the vector with value appended. Amortized O(1):
// the outer chunk table is copied shallowly, and at most one chunk is
// copied or freshly allocated.
func (v Vector[T]) Push(value T) Vector[T] {
	if v.length&chunkMask == 0 { // crossing a chunk boundary
		tracer().Debugf("fresh chunk for element %d", v.length)
		chunks := make([][]T, len(v.chunks)+1)
		copy(chunks, v.chunks)
		chunks[len(v.chunks)] = []T{value}
		return Vector[T]{length: v.length + 1, chunks: chunks}
	}
	last := len(v.chunks) - 1
	chunk := v.chunks[last] // copy-on-write of exactly this chunk
	newChunk := make([]T, len(chunk)+1)
	copy(newChunk, chunk)
	newChunk[len(chunk)] = value
	chunks := make([][]T, len(v.chunks))
	copy(chunks, v.chunks)
	chunks[last] = newChunk
	return Vector[T]{length: v.length + 1, chunks: chunks}
}

// Pop returns a copy of the vector with the last element removed.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	if v.length == 1 {
		return Vector[T]{}
	}
	last := len(v.chunks) - 1
	if len(v.chunks[last]) == 1 { // last chunk vanishes
		chunks := make([][]T, last)
		copy(chunks, v.chunks)
		return Vector[T]{length: v.length - 1, chunks: chunks}
	}
	chunk := v.chunks[last]
	newChunk := make([]T, len(chunk)-1)
	copy(newChunk, chunk)
	chunks := make([][]T, len(v.chunks))
	copy(chunks, v.chunks)
	chunks[last] = newChunk
	return Vector[T]{length: v.length - 1, chunks: chunks}
}

// Set returns a copy of the vector with the element at position i replaced
// by value. O(1): copies the outer chunk table and the single affected
// chunk.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && i < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	chunks := make([][]T, len(v.chunks))
	copy(chunks, v.chunks)
	chunk := v.chunks[i>>chunkBits]
	newChunk := make([]T, len(chunk))
	copy(newChunk, chunk)
	newChunk[i&chunkMask] = value
	chunks[i>>chunkBits] = newChunk
	return Vector[T]{length: v.length, chunks: chunks}
}

// Insert returns a copy of the vector with value inserted at position i,
// shifting later elements one to the right. i == Len() appends. Not
// chunk-aware: rebuilds the vector in O(n).
func (v Vector[T]) Insert(i int, value T) Vector[T] {
	assertThat(i >= 0 && i <= v.length, "vector index out of bounds: %d with length %d", i, v.length)
	els := make([]T, 0, v.length+1)
	els = append(els, v.slice(0, i)...)
	els = append(els, value)
	els = append(els, v.slice(i, v.length)...)
	return fromSlice(els)
}

// Remove returns a copy of the vector with the element at position i
// removed, shifting later elements one to the left. Not chunk-aware:
// rebuilds the vector in O(n).
func (v Vector[T]) Remove(i int) Vector[T] {
	assertThat(i >= 0 && i < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	els := make([]T, 0, v.length-1)
	els = append(els, v.slice(0, i)...)
	els = append(els, v.slice(i+1, v.length)...)
	return fromSlice(els)
}

// Slice returns a new vector holding the elements of positions [from, to).
// Not chunk-aware: rebuilds in O(to-from).
func (v Vector[T]) Slice(from, to int) Vector[T] {
	assertThat(0 <= from && from <= to && to <= v.length,
		"vector slice bounds out of range: [%d:%d] with length %d", from, to, v.length)
	return fromSlice(v.slice(from, to))
}

// Each walks the vector's elements in positional order, calling f for each
// one, until f returns false.
func (v Vector[T]) Each(f func(el T) bool) {
	for _, chunk := range v.chunks {
		for _, el := range chunk {
			if !f(el) {
				return
			}
		}
	}
}

// AsSlice returns the vector's elements as a fresh slice.
func (v Vector[T]) AsSlice() []T {
	return v.slice(0, v.length)
}

// slice flattens positions [from, to) into a fresh Go slice.
func (v Vector[T]) slice(from, to int) []T {
	els := make([]T, 0, to-from)
	for i := from; i < to; i++ {
		els = append(els, v.chunks[i>>chunkBits][i&chunkMask])
	}
	return els
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
