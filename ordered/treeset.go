package ordered

import (
	"github.com/npillmayer/persistent/maybe"
)

// unit is the sentinel value shared by all set members.
type unit = struct{}

// Set is a persistent sorted set, backed by a sorted map whose values are
// all a shared sentinel. Sets are immutable: With and WithDeleted return a
// new incarnation, built over a complete new tree snapshot.
type Set[K any] struct {
	m Map[K, unit]
}

// ImmutableSet constructs an empty sorted set ordered by c.
// A nil comparator is a programming error and panics.
func ImmutableSet[K any](c Comparator[K]) Set[K] {
	return Set[K]{m: Immutable[K, unit](c)}
}

// SetFrom constructs a sorted set ordered by c from a list of elements, in
// encounter order. Duplicates are dropped.
func SetFrom[K any](c Comparator[K], els ...K) Set[K] {
	s := ImmutableSet[K](c)
	return s.WithAll(els...)
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the set.
func (s Set[K]) Len() int {
	return s.m.Len()
}

// Comparator returns the comparator ordering the set.
func (s Set[K]) Comparator() Comparator[K] {
	return s.m.Comparator()
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

// Each walks the set's elements in comparator order, calling f for each
// one, until f returns false.
func (s Set[K]) Each(f func(el K) bool) {
	s.m.Each(func(k K, _ unit) bool {
		return f(k)
	})
}

// Elements returns a read-only snapshot of the set's elements, in
// comparator order.
func (s Set[K]) Elements() []K {
	return s.m.Keys()
}

// --- Navigation ------------------------------------------------------------

// First returns the smallest element, if any.
func (s Set[K]) First() maybe.Maybe[K] {
	return keyOf(s.m.root.leftmost())
}

// Last returns the greatest element, if any.
func (s Set[K]) Last() maybe.Maybe[K] {
	return keyOf(s.m.root.rightmost())
}

// Floor returns the greatest element ≤ el, if any.
func (s Set[K]) Floor(el K) maybe.Maybe[K] {
	return keyOf(floorOf(s.m.root, s.m.cmp, el, false))
}

// Lower returns the greatest element < el, if any.
func (s Set[K]) Lower(el K) maybe.Maybe[K] {
	return keyOf(floorOf(s.m.root, s.m.cmp, el, true))
}

// Ceiling returns the least element ≥ el, if any.
func (s Set[K]) Ceiling(el K) maybe.Maybe[K] {
	return keyOf(ceilingOf(s.m.root, s.m.cmp, el, false))
}

// Higher returns the least element > el, if any.
func (s Set[K]) Higher(el K) maybe.Maybe[K] {
	return keyOf(ceilingOf(s.m.root, s.m.cmp, el, true))
}

func keyOf[K any](n *tnode[K, unit]) maybe.Maybe[K] {
	if n == nil {
		return maybe.Nothing[K]()
	}
	return maybe.Just(n.item.Key)
}

// --- Range views -----------------------------------------------------------

// SetView is a read-only window onto a set snapshot, restricted to an
// element interval and/or reversed in order. Views share the snapshot with
// the set they were derived from; constructing one is O(1).
type SetView[K any] struct {
	v View[K, unit]
}

// Descending returns a view of the whole set in reverse comparator order.
func (s Set[K]) Descending() SetView[K] {
	return SetView[K]{v: s.m.Descending()}
}

// HeadSet returns a view of all elements below hi; incl controls whether
// hi itself is part of the view.
func (s Set[K]) HeadSet(hi K, incl bool) SetView[K] {
	return SetView[K]{v: s.m.HeadMap(hi, incl)}
}

// TailSet returns a view of all elements above lo; incl controls whether
// lo itself is part of the view.
func (s Set[K]) TailSet(lo K, incl bool) SetView[K] {
	return SetView[K]{v: s.m.TailMap(lo, incl)}
}

// SubSet returns a view of all elements with lo ≤ el < hi.
func (s Set[K]) SubSet(lo, hi K) SetView[K] {
	return SetView[K]{v: s.m.SubMap(lo, hi)}
}

// Descending returns the view with its order reversed.
func (sv SetView[K]) Descending() SetView[K] {
	return SetView[K]{v: sv.v.Descending()}
}

// Len returns the number of elements within the view's interval.
func (sv SetView[K]) Len() int {
	return sv.v.Len()
}

// Has reports whether the view contains el.
func (sv SetView[K]) Has(el K) bool {
	return sv.v.Has(el)
}

// Each walks the view's elements in view order, calling f for each one,
// until f returns false.
func (sv SetView[K]) Each(f func(el K) bool) {
	sv.v.Each(func(k K, _ unit) bool {
		return f(k)
	})
}

// Elements returns the view's elements, in view order.
func (sv SetView[K]) Elements() []K {
	return sv.v.Keys()
}

// First returns the view's first element in view order, if any.
func (sv SetView[K]) First() maybe.Maybe[K] {
	first := sv.v.First()
	var e Entry[K, unit]
	switch m := first.Match(); m {
	case m.Just(&e):
		return maybe.Just(e.Key)
	case m.Nothing():
	}
	return maybe.Nothing[K]()
}

// Last returns the view's last element in view order, if any.
func (sv SetView[K]) Last() maybe.Maybe[K] {
	return sv.Descending().First()
}
