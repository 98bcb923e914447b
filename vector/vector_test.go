package vector

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestVectorZeroValue(t *testing.T) {
	v := Vector[int]{}.Push(42)
	if v.Len() != 1 {
		t.Errorf("expected vector of length 1, have %d", v.Len())
	}
	if v.Get(0) != 42 {
		t.Errorf("expected element 42 at position 0, have %d", v.Get(0))
	}
}

func TestVectorChunkBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	v := Immutable[int]()
	for i := 0; i < 33; i++ {
		v = v.Push(i)
	}
	if v.Len() != 33 {
		t.Fatalf("expected length 33, have %d", v.Len())
	}
	if v.Get(31) != 31 || v.Get(32) != 32 {
		t.Errorf("expected elements 31 and 32 across the chunk boundary, have %d and %d", v.Get(31), v.Get(32))
	}
	if len(v.chunks) != 2 {
		t.Errorf("expected a second chunk after 33 appends, have %d chunks", len(v.chunks))
	}
	// a point update in chunk 1 must not perturb chunk 0
	v2 := v.Set(32, 99)
	for i := 0; i < 32; i++ {
		if v2.Get(i) != i {
			t.Fatalf("expected element %d to be untouched by Set(32), is %d", i, v2.Get(i))
		}
	}
	if &v2.chunks[0][0] != &v.chunks[0][0] {
		t.Error("expected chunk 0 to be shared after Set(32), isn't")
	}
	if &v2.chunks[1][0] == &v.chunks[1][0] {
		t.Error("expected chunk 1 to be copied by Set(32), isn't")
	}
}

func TestVectorPushSharesFullChunks(t *testing.T) {
	v := Immutable[int]()
	for i := 0; i < 40; i++ {
		v = v.Push(i)
	}
	v2 := v.Push(40)
	if &v2.chunks[0][0] != &v.chunks[0][0] {
		t.Error("expected append to share full chunks, doesn't")
	}
	if v.Len() != 40 || v2.Len() != 41 {
		t.Errorf("expected lengths 40/41, have %d/%d", v.Len(), v2.Len())
	}
}

func TestVectorImmutability(t *testing.T) {
	v1 := From(1, 2, 3)
	v2 := v1.Set(1, 20)
	v3 := v1.Push(4)
	if v1.Get(1) != 2 {
		t.Error("expected original to be unaffected by Set, isn't")
	}
	if v2.Get(1) != 20 {
		t.Errorf("expected v2 to hold 20 at position 1, has %d", v2.Get(1))
	}
	if v1.Len() != 3 || v3.Len() != 4 {
		t.Errorf("expected lengths 3/4, have %d/%d", v1.Len(), v3.Len())
	}
}

func TestVectorPop(t *testing.T) {
	v := From(1, 2, 3)
	v = v.Pop()
	if v.Len() != 2 || v.Get(1) != 2 {
		t.Errorf("expected [1 2] after pop, have length %d", v.Len())
	}
	// pop across a chunk boundary drops the last chunk
	w := Immutable[int]()
	for i := 0; i < 33; i++ {
		w = w.Push(i)
	}
	w = w.Pop()
	if w.Len() != 32 || len(w.chunks) != 1 {
		t.Errorf("expected 32 elements in 1 chunk after pop, have %d in %d", w.Len(), len(w.chunks))
	}
}

func TestVectorInsertRemove(t *testing.T) {
	v := From("a", "b", "d")
	v2 := v.Insert(2, "c")
	if v2.Len() != 4 || v2.Get(2) != "c" || v2.Get(3) != "d" {
		t.Errorf("expected [a b c d], have %v", v2.AsSlice())
	}
	v3 := v2.Remove(0)
	if v3.Len() != 3 || v3.Get(0) != "b" {
		t.Errorf("expected [b c d], have %v", v3.AsSlice())
	}
	appended := v.Insert(v.Len(), "e") // insert at i == Len() appends
	if appended.Get(appended.Len()-1) != "e" {
		t.Error("expected Insert at Len() to append, doesn't")
	}
}

func TestVectorSlice(t *testing.T) {
	v := From(0, 1, 2, 3, 4, 5)
	s := v.Slice(2, 5)
	if s.Len() != 3 || s.Get(0) != 2 || s.Get(2) != 4 {
		t.Errorf("expected [2 3 4], have %v", s.AsSlice())
	}
	empty := v.Slice(3, 3)
	if empty.Len() != 0 {
		t.Errorf("expected empty slice, has length %d", empty.Len())
	}
}

func TestVectorRoundTrip(t *testing.T) {
	input := []int{5, 1, 4, 1, 5, 9, 2, 6}
	v := From(input...)
	if v.Len() != len(input) {
		t.Fatalf("expected length %d, have %d", len(input), v.Len())
	}
	i := 0
	v.Each(func(el int) bool {
		if el != input[i] {
			t.Errorf("expected element %d at position %d, have %d", input[i], i, el)
		}
		i++
		return true
	})
	if i != len(input) {
		t.Errorf("expected to visit %d elements, visited %d", len(input), i)
	}
}

func TestVectorLast(t *testing.T) {
	if v := Immutable[int]().Last().WithDefault(-1); v != -1 {
		t.Errorf("expected Nothing for empty vector, have %d", v)
	}
	if v := From(1, 2, 3).Last().WithDefault(-1); v != 3 {
		t.Errorf("expected last element 3, have %d", v)
	}
}

func TestVectorBoundsPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected out-of-bounds access to panic, didn't")
		}
	}()
	From(1, 2, 3).Get(3)
}

func TestVectorLargeRoundTrip(t *testing.T) {
	v := Immutable[int]()
	const n = 1000
	for i := 0; i < n; i++ {
		v = v.Push(i)
	}
	for i := 0; i < n; i += 7 {
		if v.Get(i) != i {
			t.Fatalf("expected %d at position %d, have %d", i, i, v.Get(i))
		}
	}
	if got := len(v.chunks); got != (n+chunkMask)/chunkSize {
		t.Errorf("expected %d chunks, have %d", (n+chunkMask)/chunkSize, got)
	}
}
