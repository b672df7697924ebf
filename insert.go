package avlmap

import "cmp"

// Put associates key with value. If the key is already present its value is
// overwritten in place with no structural change, and the previous value is
// returned with replaced == true. For a new key, a fresh entry is attached
// at the search frontier, the left-subtree counters on the path are bumped,
// and a single bottom-up rebalancing pass restores the AVL balance.
//
// Unlike the read operations, which treat a nil tree as empty, Put needs an
// allocated tree to store into and panics on a nil receiver.
func (t *Tree[K, V]) Put(key K, value V) (prev V, replaced bool) {
	assert(t != nil, "Put called on a nil tree")
	if t.root == nil {
		t.root = &Entry[K, V]{key: key, value: value}
		t.size = 1
		return prev, false
	}

	x := t.root
	var p *Entry[K, V]
	for x != nil {
		p = x
		switch c := cmp.Compare(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			prev = x.value
			x.value = value
			return prev, true
		}
	}

	e := &Entry[K, V]{key: key, value: value, parent: p}
	if cmp.Compare(key, p.key) < 0 {
		p.left = e
		p.count = 1 // p had no left child before
	} else {
		p.right = e
	}

	// Bump the counter on every ancestor reached through its left child.
	for lo, anc := p, p.parent; anc != nil; lo, anc = anc, anc.parent {
		if anc.left == lo {
			anc.count++
		}
	}

	t.size++
	t.rebalanceAfterPut(p)
	return prev, false
}

// rebalanceAfterPut walks from the attachment parent toward the root,
// refreshing cached heights. A single insertion can produce an imbalance of
// magnitude 2 at most once on the path; one (possibly double) rotation there
// restores global balance, so the walk stops after the first rotation.
func (t *Tree[K, V]) rebalanceAfterPut(p *Entry[K, V]) {
	for p != nil {
		switch {
		case height(p.left) == height(p.right)+2:
			pp := p.parent
			var sub *Entry[K, V]
			if height(p.left.left) >= height(p.left.right) {
				sub = t.rightRotate(p)
			} else {
				sub = t.leftRightRotate(p)
			}
			t.replaceChild(pp, p, sub)
			if pp != nil {
				pp.h = max(height(pp.left), height(pp.right)) + 1
			}
			return

		case height(p.left)+2 == height(p.right):
			pp := p.parent
			var sub *Entry[K, V]
			if height(p.right.right) >= height(p.right.left) {
				sub = t.leftRotate(p)
			} else {
				sub = t.rightLeftRotate(p)
			}
			t.replaceChild(pp, p, sub)
			if pp != nil {
				pp.h = max(height(pp.left), height(pp.right)) + 1
			}
			return
		}

		p.h = max(height(p.left), height(p.right)) + 1
		p = p.parent
	}
}
