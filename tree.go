package avlmap

/*
BSD 3-Clause License

Copyright (c) 2026, Mureakuha

Please refer to the License file in the repository root.

*/

import "cmp"

// Tree is an ordered map backed by a counted AVL tree.
//
// A tree created by
//
//	Tree[int, string]{}
//
// is a valid object and behaves like an empty map. Lookup, positional access
// and mutation all run in O(log n); see the package documentation for the
// complete cost table and for the (lack of a) concurrency contract.
type Tree[K cmp.Ordered, V any] struct {
	root *Entry[K, V]
	size int
}

// New creates an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Get returns the value stored for key. The second return value reports
// whether the key is present; an absent key is a normal miss, not an error.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	e := t.root
	for e != nil {
		switch c := cmp.Compare(key, e.key); {
		case c < 0:
			e = e.left
		case c > 0:
			e = e.right
		default:
			return e.value, true
		}
	}
	return zero, false
}

// EntryAt returns the entry with the i-th smallest key (zero-based), or nil
// if i is outside [0, Len()). Out-of-range indices are a normal miss.
//
// The walk descends by the left-subtree counters: go left while i is below
// the counter, go right with i reduced by counter+1 while above, stop on
// equality.
func (t *Tree[K, V]) EntryAt(i int) *Entry[K, V] {
	if t == nil || i < 0 || i >= t.size {
		return nil
	}
	e := t.root
	for {
		assert(e != nil, "EntryAt ran off the tree; left counters are corrupt")
		switch {
		case i < e.count:
			e = e.left
		case i > e.count:
			i -= e.count + 1
			e = e.right
		default:
			return e
		}
	}
}

// First returns the entry with the smallest key, or nil for an empty tree.
func (t *Tree[K, V]) First() *Entry[K, V] {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root.Min()
}
