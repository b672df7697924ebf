package avlmap

import "iter"

// ForEachEntry walks the entries in key order.
//
// Iteration stops early if the callback returns false. Mutating the tree
// while iterating is undefined behavior.
func (t *Tree[K, V]) ForEachEntry(fn func(e *Entry[K, V]) bool) {
	if t == nil || fn == nil {
		return
	}
	for e := t.First(); e != nil; e = e.Next() {
		if !fn(e) {
			return
		}
	}
}

// All returns an in-order iterator over key/value pairs, for use with
// range-over-func:
//
//	for k, v := range tree.All() { ... }
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := t.First(); e != nil; e = e.Next() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
