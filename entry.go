package avlmap

import (
	"cmp"
	"fmt"
)

// Entry is one key→value mapping, doubling as a node of the tree.
//
// Entries are created by Put for new keys and destroyed by Remove. Children
// are owned by their parent (the root by the tree); the parent link is a
// non-owning back-reference used only for upward traversal and rebalancing.
type Entry[K cmp.Ordered, V any] struct {
	key   K
	value V
	count int // number of entries in the left subtree; drives EntryAt
	h     int // cached subtree height; a leaf has height 0, nil counts as -1

	parent *Entry[K, V]
	left   *Entry[K, V]
	right  *Entry[K, V]
}

// Key returns the entry's key. Keys are immutable once inserted.
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Value returns the entry's current value.
func (e *Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the entry's value and returns the previous one.
func (e *Entry[K, V]) SetValue(v V) V {
	old := e.value
	e.value = v
	return old
}

// Next returns the in-order successor of e, or nil if e holds the largest key.
func (e *Entry[K, V]) Next() *Entry[K, V] {
	if e.right != nil {
		e = e.right
		for e.left != nil {
			e = e.left
		}
		return e
	}
	for e.parent != nil && e.parent.right == e {
		e = e.parent
	}
	return e.parent
}

// Min returns the entry with the smallest key in the subtree rooted at e.
func (e *Entry[K, V]) Min() *Entry[K, V] {
	for e.left != nil {
		e = e.left
	}
	return e
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("[%v -> %v]", e.key, e.value)
}

// height is the nil-safe subtree height; the empty tree has height -1.
func height[K cmp.Ordered, V any](e *Entry[K, V]) int {
	if e == nil {
		return -1
	}
	return e.h
}
