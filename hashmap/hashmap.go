package hashmap

// Entry is a key/value pair, as handed out by Entries and consumed by From.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a persistent hash map. The zero value is an empty map ready for
// use, i.e. this is legal:
//
//     m := hashmap.Map[string, int]{}.With("answer", 42)
//
// Map values are immutable: With and WithDeleted return a new incarnation
// of the map, sharing unchanged trie nodes with the original.
type Map[K comparable, V any] struct {
	props[K]
	size int
	root node[K, V]
}

// props carries the map's configuration. Defaults are installed lazily so
// that the zero value of Map remains usable.
type props[K comparable] struct {
	hasher func(K) uint32
}

func (p props[K]) init() props[K] {
	if p.hasher == nil {
		p.hasher = defaultHasher[K]()
	}
	return p
}

func (p props[K]) hashOf(key K) uint32 {
	return mix(p.hasher(key))
}

// Immutable constructs an empty hash map with options, if you need any.
// Use it like this:
//
//     m := hashmap.Immutable[string, int]()
//     m = m.With("Galaxy", 42)
//     value, found := m.Get("Galaxy")
//
func Immutable[K comparable, V any](opts ...Option[K]) Map[K, V] {
	m := Map[K, V]{}
	for _, option := range opts {
		m.props = option.config(m.props)
	}
	return m
}

// Option is a type to help initializing hash maps at creation time.
type Option[K comparable] struct {
	config func(props[K]) props[K]
}

// Hasher is an option to replace the default hash function for keys.
// The raw hash codes returned by h are avalanche-mixed by the map before
// use, so h does not itself need to distribute well.
//
// Use it like this:
//
//     m := hashmap.Immutable[string, int](hashmap.Hasher(myHash))
//
func Hasher[K comparable](h func(K) uint32) Option[K] {
	conf := func(p props[K]) props[K] {
		p.hasher = h
		return p
	}
	return Option[K]{config: conf}
}

// From constructs a hash map from a list of entries, in encounter order.
// Later entries win over earlier ones with an equal key.
func From[K comparable, V any](entries ...Entry[K, V]) Map[K, V] {
	m := Immutable[K, V]()
	for _, e := range entries {
		m = m.With(e.Key, e.Value)
	}
	return m
}

// FromMap constructs a persistent hash map holding the entries of an
// ordinary Go map.
func FromMap[K comparable, V any](src map[K]V) Map[K, V] {
	m := Immutable[K, V]()
	for k, v := range src {
		m = m.With(k, v)
	}
	return m
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int {
	return m.size
}

// Get returns the value associated with key, if present.
// If key is not found, the zero value for type V is returned, together
// with found=false.
func (m Map[K, V]) Get(key K) (V, bool) {
	m.props = m.props.init()
	return lookup[K, V](m.root, 0, m.hashOf(key), key)
}

// Has reports whether the map contains key.
func (m Map[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

// With returns a copy of the map with key associated with value. If an
// entry for key is already present, its value is replaced (in a new
// incarnation of the map, nevertheless).
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	m.props = m.props.init()
	root, added := insert(m.root, 0, m.hashOf(key), key, value)
	size := m.size
	if added {
		size++
	}
	tracer().Debugf("with %v: size %d -> %d", key, m.size, size)
	return Map[K, V]{props: m.props, size: size, root: root}
}

// WithDeleted returns a copy of the map with key deleted, if present.
// If key is not found, the map is returned unchanged.
func (m Map[K, V]) WithDeleted(key K) Map[K, V] {
	m.props = m.props.init()
	root, removed := remove[K, V](m.root, 0, m.hashOf(key), key)
	if !removed {
		return m // no need for modification
	}
	tracer().Debugf("without %v: size %d -> %d", key, m.size, m.size-1)
	return Map[K, V]{props: m.props, size: m.size - 1, root: root}
}

// WithAll returns a copy of the map holding all entries of m plus all
// entries of other. Entries of other win over entries of m with an equal
// key.
func (m Map[K, V]) WithAll(other Map[K, V]) Map[K, V] {
	other.Each(func(k K, v V) bool {
		m = m.With(k, v)
		return true
	})
	return m
}

// WithoutKeys returns a copy of the map with all given keys deleted.
func (m Map[K, V]) WithoutKeys(keys ...K) Map[K, V] {
	for _, k := range keys {
		m = m.WithDeleted(k)
	}
	return m
}

// Each walks all entries of the map, calling f for each one, until f
// returns false. The order of entries is unspecified but stable for any
// single map value.
func (m Map[K, V]) Each(f func(key K, value V) bool) {
	each(m.root, f)
}

// Entries returns a read-only snapshot of the map's entries.
// The order of entries is unspecified.
func (m Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	m.Each(func(k K, v V) bool {
		entries = append(entries, Entry[K, V]{k, v})
		return true
	})
	return entries
}

// Keys returns the map's keys, in unspecified order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Each(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns the map's values, in unspecified order.
func (m Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	m.Each(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}
