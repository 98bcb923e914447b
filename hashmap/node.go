package hashmap

import "fmt"

// The trie is a closed union of node variants; the nil interface stands in
// for the empty trie. Dispatch in the recursive algorithms below is by
// exhaustive type switch, keeping merge/split/promote/demote auditable as
// straight-line case analysis.
//
// Invariant: a node's subtree contains only entries whose (mixed) hash
// matches the path taken to reach it. Leafs and collision nodes appear only
// where no further hash bits are needed to distinguish keys.
type node[K comparable, V any] interface {
	trieNode()
}

// leafNode holds a single key/value entry together with the key's mixed hash.
type leafNode[K comparable, V any] struct {
	hash  uint32
	key   K
	value V
}

// collisionNode holds entries whose keys have an identical mixed hash but
// are unequal by key equality. It always holds at least two entries.
type collisionNode[K comparable, V any] struct {
	hash    uint32
	entries []Entry[K, V]
}

// bitmapNode is a branch. bitmap marks which of the 32 logical slots are
// populated; children stores only the populated ones, densely, in bit order.
type bitmapNode[K comparable, V any] struct {
	bitmap   uint32
	children []node[K, V]
}

func (n *leafNode[K, V]) trieNode()      {}
func (n *collisionNode[K, V]) trieNode() {}
func (n *bitmapNode[K, V]) trieNode()    {}

// --- Lookup ----------------------------------------------------------------

func lookup[K comparable, V any](n node[K, V], shift, hash uint32, key K) (V, bool) {
	var none V
	switch n := n.(type) {
	case nil:
		return none, false
	case *leafNode[K, V]:
		if n.hash == hash && n.key == key {
			return n.value, true
		}
		return none, false
	case *collisionNode[K, V]:
		if n.hash != hash {
			return none, false
		}
		for _, e := range n.entries {
			if e.Key == key {
				return e.Value, true
			}
		}
		return none, false
	case *bitmapNode[K, V]:
		bit := bitpos(masked(hash, shift))
		if n.bitmap&bit == 0 {
			return none, false
		}
		child := n.children[sparseIndex(n.bitmap, bit)]
		return lookup[K, V](child, shift+chunkBits, hash, key)
	}
	panic(fmt.Sprintf("hashmap: unknown trie node variant %T", n))
}

// --- Insertion -------------------------------------------------------------

// insert adds or replaces an entry below n and reports whether the key was
// newly added (as opposed to an existing key's value being replaced).
// Nodes on the path from n to the touched leaf are copied; siblings are
// shared with the original trie.
func insert[K comparable, V any](n node[K, V], shift, hash uint32, key K, value V) (node[K, V], bool) {
	switch n := n.(type) {
	case nil:
		return &leafNode[K, V]{hash: hash, key: key, value: value}, true
	case *leafNode[K, V]:
		if n.hash == hash {
			if n.key == key {
				return &leafNode[K, V]{hash: hash, key: key, value: value}, false
			}
			tracer().Debugf("hash collision on %x: %v vs %v", hash, n.key, key)
			return &collisionNode[K, V]{
				hash:    hash,
				entries: []Entry[K, V]{{n.key, n.value}, {key, value}},
			}, true
		}
		leaf := &leafNode[K, V]{hash: hash, key: key, value: value}
		return mergeLeaves[K, V](shift, n.hash, n, hash, leaf), true
	case *collisionNode[K, V]:
		if n.hash == hash {
			for i, e := range n.entries {
				if e.Key == key {
					entries := make([]Entry[K, V], len(n.entries))
					copy(entries, n.entries)
					entries[i].Value = value
					return &collisionNode[K, V]{hash: hash, entries: entries}, false
				}
			}
			entries := make([]Entry[K, V], len(n.entries), len(n.entries)+1)
			copy(entries, n.entries)
			entries = append(entries, Entry[K, V]{key, value})
			return &collisionNode[K, V]{hash: hash, entries: entries}, true
		}
		leaf := &leafNode[K, V]{hash: hash, key: key, value: value}
		return mergeLeaves[K, V](shift, n.hash, n, hash, leaf), true
	case *bitmapNode[K, V]:
		bit := bitpos(masked(hash, shift))
		inx := sparseIndex(n.bitmap, bit)
		if n.bitmap&bit == 0 { // slot vacant: grow children by one
			children := make([]node[K, V], len(n.children)+1)
			copy(children, n.children[:inx])
			children[inx] = &leafNode[K, V]{hash: hash, key: key, value: value}
			copy(children[inx+1:], n.children[inx:])
			return &bitmapNode[K, V]{bitmap: n.bitmap | bit, children: children}, true
		}
		child, added := insert(n.children[inx], shift+chunkBits, hash, key, value)
		children := make([]node[K, V], len(n.children))
		copy(children, n.children)
		children[inx] = child
		return &bitmapNode[K, V]{bitmap: n.bitmap, children: children}, added
	}
	panic(fmt.Sprintf("hashmap: unknown trie node variant %T", n))
}

// mergeLeaves builds the minimal branch structure distinguishing two nodes
// with different hashes. If the hashes' 5-bit segments at this level differ,
// a two-child bitmap node suffices; if they still collide at this level, a
// single-child chain descends one level further.
func mergeLeaves[K comparable, V any](shift, h1 uint32, n1 node[K, V], h2 uint32, n2 node[K, V]) node[K, V] {
	assertThat(h1 != h2, "attempt to merge leaves with identical hash %x", h1)
	m1, m2 := masked(h1, shift), masked(h2, shift)
	if m1 == m2 {
		inner := mergeLeaves[K, V](shift+chunkBits, h1, n1, h2, n2)
		return &bitmapNode[K, V]{bitmap: bitpos(m1), children: []node[K, V]{inner}}
	}
	children := []node[K, V]{n1, n2}
	if m1 > m2 {
		children[0], children[1] = n2, n1
	}
	return &bitmapNode[K, V]{bitmap: bitpos(m1) | bitpos(m2), children: children}
}

// --- Deletion --------------------------------------------------------------

// remove deletes an entry below n, if present. It demotes a 2-entry
// collision node to a leaf, collapses an empty branch, and hoists the sole
// remaining child of a branch if that child needs no further hash bits
// (eliminating single-child branch chains).
func remove[K comparable, V any](n node[K, V], shift, hash uint32, key K) (node[K, V], bool) {
	switch n := n.(type) {
	case nil:
		return nil, false
	case *leafNode[K, V]:
		if n.hash == hash && n.key == key {
			return nil, true
		}
		return n, false
	case *collisionNode[K, V]:
		if n.hash != hash {
			return n, false
		}
		for i, e := range n.entries {
			if e.Key != key {
				continue
			}
			if len(n.entries) == 2 { // demote to a leaf
				rest := n.entries[1-i]
				return &leafNode[K, V]{hash: n.hash, key: rest.Key, value: rest.Value}, true
			}
			entries := make([]Entry[K, V], 0, len(n.entries)-1)
			entries = append(entries, n.entries[:i]...)
			entries = append(entries, n.entries[i+1:]...)
			return &collisionNode[K, V]{hash: n.hash, entries: entries}, true
		}
		return n, false
	case *bitmapNode[K, V]:
		bit := bitpos(masked(hash, shift))
		if n.bitmap&bit == 0 {
			return n, false
		}
		inx := sparseIndex(n.bitmap, bit)
		child, removed := remove[K, V](n.children[inx], shift+chunkBits, hash, key)
		if !removed {
			return n, false
		}
		if child == nil {
			switch len(n.children) {
			case 1: // last child gone: branch collapses
				return nil, true
			case 2: // sole remaining child may be hoisted
				rest := n.children[1-inx]
				if hoistable[K, V](rest) {
					return rest, true
				}
			}
			children := make([]node[K, V], 0, len(n.children)-1)
			children = append(children, n.children[:inx]...)
			children = append(children, n.children[inx+1:]...)
			return &bitmapNode[K, V]{bitmap: n.bitmap &^ bit, children: children}, true
		}
		if len(n.children) == 1 && hoistable[K, V](child) {
			return child, true // child shrunk to a leaf below a single-child chain
		}
		children := make([]node[K, V], len(n.children))
		copy(children, n.children)
		children[inx] = child
		return &bitmapNode[K, V]{bitmap: n.bitmap, children: children}, true
	}
	panic(fmt.Sprintf("hashmap: unknown trie node variant %T", n))
}

// hoistable reports whether a node carries its full hash itself and may
// therefore replace its parent branch.
func hoistable[K comparable, V any](n node[K, V]) bool {
	switch n.(type) {
	case *leafNode[K, V], *collisionNode[K, V]:
		return true
	}
	return false
}

// --- Iteration -------------------------------------------------------------

// each walks all entries below n. Returns false if f aborted the walk.
func each[K comparable, V any](n node[K, V], f func(K, V) bool) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *leafNode[K, V]:
		return f(n.key, n.value)
	case *collisionNode[K, V]:
		for _, e := range n.entries {
			if !f(e.Key, e.Value) {
				return false
			}
		}
		return true
	case *bitmapNode[K, V]:
		for _, child := range n.children {
			if !each(child, f) {
				return false
			}
		}
		return true
	}
	panic(fmt.Sprintf("hashmap: unknown trie node variant %T", n))
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("hashmap: "+msg, msgargs...)
		panic(msg)
	}
}
