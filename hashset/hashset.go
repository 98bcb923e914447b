package hashset

import (
	"github.com/npillmayer/persistent/hashmap"
)

// unit is the sentinel value shared by all set members.
type unit = struct{}

// Set is a persistent hash set. The zero value is an empty set ready for
// use. Sets are immutable: With and WithDeleted return a new incarnation,
// sharing unchanged structure with the original.
type Set[K comparable] struct {
	m hashmap.Map[K, unit]
}

// Immutable constructs an empty hash set with options, if you need any.
// Options are those of package hashmap and configure the key hasher.
func Immutable[K comparable](opts ...hashmap.Option[K]) Set[K] {
	return Set[K]{m: hashmap.Immutable[K, unit](opts...)}
}

// From constructs a hash set from a list of elements, in encounter order.
// Duplicates are dropped.
func From[K comparable](els ...K) Set[K] {
	s := Immutable[K]()
	return s.WithAll(els...)
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the set.
func (s Set[K]) Len() int {
	return s.m.Len()
}

// Has reports whether the set contains el.
func (s Set[K]) Has(el K) bool {
	return s.m.Has(el)
}

// With returns a copy of the set with el added. If el is already a member,
// the set itself is returned unchanged.
func (s Set[K]) With(el K) Set[K] {
	if s.m.Has(el) {
		return s // no need for modification
	}
	tracer().Debugf("with %v: size %d -> %d", el, s.Len(), s.Len()+1)
	return Set[K]{m: s.m.With(el, unit{})}
}

// WithDeleted returns a copy of the set with el removed, if present.
// If el is not a member, the set itself is returned unchanged.
func (s Set[K]) WithDeleted(el K) Set[K] {
	m := s.m.WithDeleted(el)
	if m.Len() == s.m.Len() {
		return s // no need for modification
	}
	return Set[K]{m: m}
}

// WithAll returns a copy of the set with all given elements added.
func (s Set[K]) WithAll(els ...K) Set[K] {
	for _, el := range els {
		s = s.With(el)
	}
	return s
}

// WithoutAll returns a copy of the set with all given elements removed.
func (s Set[K]) WithoutAll(els ...K) Set[K] {
	for _, el := range els {
		s = s.WithDeleted(el)
	}
	return s
}

// Each walks all elements of the set, calling f for each one, until f
// returns false. The order of elements is unspecified but stable for any
// single set value.
func (s Set[K]) Each(f func(el K) bool) {
	s.m.Each(func(k K, _ unit) bool {
		return f(k)
	})
}

// Elements returns a read-only snapshot of the set's elements, in
// unspecified order.
func (s Set[K]) Elements() []K {
	return s.m.Keys()
}
