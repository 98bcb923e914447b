package ordered

import (
	"fmt"
	"sort"
)

// tnode is a node of the read-only tree snapshot. Nodes are never modified
// after construction; a whole new tree is built per mutation.
type tnode[K, V any] struct {
	item  Entry[K, V]
	left  *tnode[K, V]
	right *tnode[K, V]
}

// build constructs a balanced tree from comparator-sorted entries by
// midpoint recursion.
func build[K, V any](items []Entry[K, V]) *tnode[K, V] {
	if len(items) == 0 {
		return nil
	}
	mid := len(items) / 2
	return &tnode[K, V]{
		item:  items[mid],
		left:  build(items[:mid]),
		right: build(items[mid+1:]),
	}
}

// collect appends the subtree's entries to buf in comparator order.
func (n *tnode[K, V]) collect(buf []Entry[K, V]) []Entry[K, V] {
	if n == nil {
		return buf
	}
	buf = n.left.collect(buf)
	buf = append(buf, n.item)
	return n.right.collect(buf)
}

// locate descends to the node holding key, or nil.
func locate[K, V any](n *tnode[K, V], cmp Comparator[K], key K) *tnode[K, V] {
	for n != nil {
		c := cmp(key, n.item.Key)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// floorOf returns the node with the greatest key ≤ key (or < key if
// strict), or nil.
func floorOf[K, V any](n *tnode[K, V], cmp Comparator[K], key K, strict bool) *tnode[K, V] {
	var best *tnode[K, V]
	for n != nil {
		c := cmp(key, n.item.Key)
		if c > 0 || (c == 0 && !strict) {
			if c == 0 {
				return n
			}
			best = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return best
}

// ceilingOf returns the node with the least key ≥ key (or > key if
// strict), or nil.
func ceilingOf[K, V any](n *tnode[K, V], cmp Comparator[K], key K, strict bool) *tnode[K, V] {
	var best *tnode[K, V]
	for n != nil {
		c := cmp(key, n.item.Key)
		if c < 0 || (c == 0 && !strict) {
			if c == 0 {
				return n
			}
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return best
}

// leftmost returns the node with the smallest key of the subtree, or nil.
func (n *tnode[K, V]) leftmost() *tnode[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the node with the greatest key of the subtree, or nil.
func (n *tnode[K, V]) rightmost() *tnode[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// each walks the subtree in comparator order. Returns false if f aborted
// the walk.
func (n *tnode[K, V]) each(f func(Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return n.left.each(f) && f(n.item) && n.right.each(f)
}

// eachDescending walks the subtree in reverse comparator order.
func (n *tnode[K, V]) eachDescending(f func(Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return n.right.eachDescending(f) && f(n.item) && n.left.eachDescending(f)
}

// bounds is a half-open or closed key interval, as used by range views.
// A nil bound is unbounded on that side.
type bounds[K any] struct {
	lo, hi         *K
	loIncl, hiIncl bool
}

// belowLower reports whether key falls below the interval.
func (b bounds[K]) belowLower(cmp Comparator[K], key K) bool {
	if b.lo == nil {
		return false
	}
	c := cmp(key, *b.lo)
	return c < 0 || (c == 0 && !b.loIncl)
}

// aboveUpper reports whether key falls above the interval.
func (b bounds[K]) aboveUpper(cmp Comparator[K], key K) bool {
	if b.hi == nil {
		return false
	}
	c := cmp(key, *b.hi)
	return c > 0 || (c == 0 && !b.hiIncl)
}

func (b bounds[K]) contains(cmp Comparator[K], key K) bool {
	return !b.belowLower(cmp, key) && !b.aboveUpper(cmp, key)
}

// eachRange walks the subtree's entries within b, pruning subtrees that
// fall entirely outside the interval, in ascending or descending order.
func eachRange[K, V any](n *tnode[K, V], cmp Comparator[K], b bounds[K], desc bool,
	f func(Entry[K, V]) bool) bool {
	//
	if n == nil {
		return true
	}
	below := b.belowLower(cmp, n.item.Key)
	above := b.aboveUpper(cmp, n.item.Key)
	lower, upper := n.left, n.right
	if desc {
		lower, upper = upper, lower
		below, above = above, below
	}
	if !below {
		if !eachRange(lower, cmp, b, desc, f) {
			return false
		}
		if !above && !f(n.item) {
			return false
		}
	}
	if !above {
		return eachRange(upper, cmp, b, desc, f)
	}
	return true
}

// splice returns a sorted entry list with key set to value, either
// replacing an existing entry or inserting a new one, plus whether the
// entry was newly added. items must be sorted by cmp; it is not modified.
func splice[K, V any](items []Entry[K, V], cmp Comparator[K], key K, value V) ([]Entry[K, V], bool) {
	inx := sort.Search(len(items), func(i int) bool {
		return cmp(items[i].Key, key) >= 0 // smallest i with items[i].Key ≥ key
	})
	if inx < len(items) && cmp(items[inx].Key, key) == 0 {
		replaced := make([]Entry[K, V], len(items))
		copy(replaced, items)
		replaced[inx] = Entry[K, V]{Key: key, Value: value}
		return replaced, false
	}
	grown := make([]Entry[K, V], 0, len(items)+1)
	grown = append(grown, items[:inx]...)
	grown = append(grown, Entry[K, V]{Key: key, Value: value})
	grown = append(grown, items[inx:]...)
	return grown, true
}

// unspliced returns a sorted entry list with the entry for key removed,
// plus whether it was present.
func unspliced[K, V any](items []Entry[K, V], cmp Comparator[K], key K) ([]Entry[K, V], bool) {
	inx := sort.Search(len(items), func(i int) bool {
		return cmp(items[i].Key, key) >= 0
	})
	if inx >= len(items) || cmp(items[inx].Key, key) != 0 {
		return items, false
	}
	shrunk := make([]Entry[K, V], 0, len(items)-1)
	shrunk = append(shrunk, items[:inx]...)
	shrunk = append(shrunk, items[inx+1:]...)
	return shrunk, true
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ordered: "+msg, msgargs...)
		panic(msg)
	}
}
