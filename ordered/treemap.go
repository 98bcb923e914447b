package ordered

import (
	"cmp"

	"github.com/npillmayer/persistent/maybe"
)

// Comparator defines a total order on keys: negative for a < b, zero for
// equal keys, positive for a > b.
type Comparator[K any] func(a, b K) int

// Natural is the comparator given by the ordering operators of ordered
// base types.
func Natural[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}

// Entry is a key/value pair, as handed out by Entries and consumed by From.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is a persistent sorted map. Maps are immutable: With and WithDeleted
// return a new incarnation, built over a complete new tree snapshot.
//
// A Map must be created through Immutable or From; the comparator is
// mandatory.
type Map[K, V any] struct {
	cmp  Comparator[K]
	root *tnode[K, V]
	size int
}

// Immutable constructs an empty sorted map ordered by c.
// Use it like this:
//
//     m := ordered.Immutable[string, int](ordered.Natural[string])
//     m = m.With("Galaxy", 42)
//
// A nil comparator is a programming error and panics.
func Immutable[K, V any](c Comparator[K]) Map[K, V] {
	assertThat(c != nil, "comparator must not be nil")
	return Map[K, V]{cmp: c}
}

// From constructs a sorted map ordered by c from a list of entries, in
// encounter order. Later entries win over earlier ones with an equal key.
func From[K, V any](c Comparator[K], entries ...Entry[K, V]) Map[K, V] {
	m := Immutable[K, V](c)
	return m.WithAll(entries...)
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int {
	return m.size
}

// Comparator returns the comparator ordering the map.
func (m Map[K, V]) Comparator() Comparator[K] {
	return m.cmp
}

// Get returns the value associated with key, if present.
func (m Map[K, V]) Get(key K) (V, bool) {
	if n := locate(m.root, m.cmp, key); n != nil {
		return n.item.Value, true
	}
	var none V
	return none, false
}

// Has reports whether the map contains key.
func (m Map[K, V]) Has(key K) bool {
	return locate(m.root, m.cmp, key) != nil
}

// With returns a copy of the map with key associated with value. The copy
// is built over a complete new tree snapshot holding the old entries plus
// the delta; the receiver's tree is never touched.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	items := m.root.collect(make([]Entry[K, V], 0, m.size+1))
	items, added := splice(items, m.cmp, key, value)
	size := m.size
	if added {
		size++
	}
	tracer().Debugf("with %v: rebuilding tree of size %d", key, size)
	return Map[K, V]{cmp: m.cmp, root: build(items), size: size}
}

// WithDeleted returns a copy of the map with key deleted, if present.
// If key is not found, the map is returned unchanged.
func (m Map[K, V]) WithDeleted(key K) Map[K, V] {
	items := m.root.collect(make([]Entry[K, V], 0, m.size))
	items, removed := unspliced(items, m.cmp, key)
	if !removed {
		return m // no need for modification
	}
	tracer().Debugf("without %v: rebuilding tree of size %d", key, m.size-1)
	return Map[K, V]{cmp: m.cmp, root: build(items), size: m.size - 1}
}

// WithAll returns a copy of the map with all given entries added, in
// encounter order.
func (m Map[K, V]) WithAll(entries ...Entry[K, V]) Map[K, V] {
	for _, e := range entries {
		m = m.With(e.Key, e.Value)
	}
	return m
}

// WithoutKeys returns a copy of the map with all given keys deleted.
func (m Map[K, V]) WithoutKeys(keys ...K) Map[K, V] {
	for _, k := range keys {
		m = m.WithDeleted(k)
	}
	return m
}

// Each walks the map's entries in comparator order, calling f for each
// one, until f returns false.
func (m Map[K, V]) Each(f func(key K, value V) bool) {
	m.root.each(func(e Entry[K, V]) bool {
		return f(e.Key, e.Value)
	})
}

// Entries returns a read-only snapshot of the map's entries, in comparator
// order.
func (m Map[K, V]) Entries() []Entry[K, V] {
	return m.root.collect(make([]Entry[K, V], 0, m.size))
}

// Keys returns the map's keys, in comparator order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// --- Navigation ------------------------------------------------------------

// First returns the entry with the smallest key, if any.
func (m Map[K, V]) First() maybe.Maybe[Entry[K, V]] {
	return entryOf(m.root.leftmost())
}

// Last returns the entry with the greatest key, if any.
func (m Map[K, V]) Last() maybe.Maybe[Entry[K, V]] {
	return entryOf(m.root.rightmost())
}

// Floor returns the entry with the greatest key ≤ key, if any.
func (m Map[K, V]) Floor(key K) maybe.Maybe[Entry[K, V]] {
	return entryOf(floorOf(m.root, m.cmp, key, false))
}

// Lower returns the entry with the greatest key < key, if any.
func (m Map[K, V]) Lower(key K) maybe.Maybe[Entry[K, V]] {
	return entryOf(floorOf(m.root, m.cmp, key, true))
}

// Ceiling returns the entry with the least key ≥ key, if any.
func (m Map[K, V]) Ceiling(key K) maybe.Maybe[Entry[K, V]] {
	return entryOf(ceilingOf(m.root, m.cmp, key, false))
}

// Higher returns the entry with the least key > key, if any.
func (m Map[K, V]) Higher(key K) maybe.Maybe[Entry[K, V]] {
	return entryOf(ceilingOf(m.root, m.cmp, key, true))
}

func entryOf[K, V any](n *tnode[K, V]) maybe.Maybe[Entry[K, V]] {
	if n == nil {
		return maybe.Nothing[Entry[K, V]]()
	}
	return maybe.Just(n.item)
}

// --- Range views -----------------------------------------------------------

// View is a read-only window onto a map snapshot, restricted to a key
// interval and/or reversed in order. Views share the snapshot with the map
// they were derived from; constructing one is O(1).
type View[K, V any] struct {
	m    Map[K, V]
	b    bounds[K]
	desc bool
}

// Descending returns a view of the whole map in reverse comparator order.
func (m Map[K, V]) Descending() View[K, V] {
	return View[K, V]{m: m, desc: true}
}

// HeadMap returns a view of all entries with keys below hi; incl controls
// whether an entry for hi itself is part of the view.
func (m Map[K, V]) HeadMap(hi K, incl bool) View[K, V] {
	return View[K, V]{m: m, b: bounds[K]{hi: &hi, hiIncl: incl}}
}

// TailMap returns a view of all entries with keys above lo; incl controls
// whether an entry for lo itself is part of the view.
func (m Map[K, V]) TailMap(lo K, incl bool) View[K, V] {
	return View[K, V]{m: m, b: bounds[K]{lo: &lo, loIncl: incl}}
}

// SubMap returns a view of all entries with lo ≤ key < hi.
func (m Map[K, V]) SubMap(lo, hi K) View[K, V] {
	return View[K, V]{m: m, b: bounds[K]{lo: &lo, loIncl: true, hi: &hi, hiIncl: false}}
}

// Descending returns the view with its order reversed.
func (v View[K, V]) Descending() View[K, V] {
	v.desc = !v.desc
	return v
}

// Each walks the view's entries in view order, calling f for each one,
// until f returns false.
func (v View[K, V]) Each(f func(key K, value V) bool) {
	eachRange(v.m.root, v.m.cmp, v.b, v.desc, func(e Entry[K, V]) bool {
		return f(e.Key, e.Value)
	})
}

// Len returns the number of entries within the view's interval.
func (v View[K, V]) Len() int {
	count := 0
	v.Each(func(K, V) bool {
		count++
		return true
	})
	return count
}

// Get returns the value associated with key, if key lies within the view's
// interval and is present.
func (v View[K, V]) Get(key K) (V, bool) {
	if !v.b.contains(v.m.cmp, key) {
		var none V
		return none, false
	}
	return v.m.Get(key)
}

// Has reports whether the view contains key.
func (v View[K, V]) Has(key K) bool {
	_, found := v.Get(key)
	return found
}

// First returns the view's first entry in view order, if any.
func (v View[K, V]) First() maybe.Maybe[Entry[K, V]] {
	result := maybe.Nothing[Entry[K, V]]()
	eachRange(v.m.root, v.m.cmp, v.b, v.desc, func(e Entry[K, V]) bool {
		result = maybe.Just(e)
		return false
	})
	return result
}

// Last returns the view's last entry in view order, if any.
func (v View[K, V]) Last() maybe.Maybe[Entry[K, V]] {
	return v.Descending().First()
}

// Entries returns the view's entries, in view order.
func (v View[K, V]) Entries() []Entry[K, V] {
	var entries []Entry[K, V]
	v.Each(func(k K, val V) bool {
		entries = append(entries, Entry[K, V]{Key: k, Value: val})
		return true
	})
	return entries
}

// Keys returns the view's keys, in view order.
func (v View[K, V]) Keys() []K {
	var keys []K
	v.Each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
