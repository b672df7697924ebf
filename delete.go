package avlmap

import "cmp"

// Remove deletes the entry for key and returns its value. An absent key is a
// normal miss: the tree is left untouched and removed == false.
//
// An entry with two children is not detached itself; the in-order successor's
// key and value are copied over it and the successor node (which has at most
// a right child, being leftmost in its subtree) is detached instead. See the
// package documentation for what this means for cached Entry handles.
func (t *Tree[K, V]) Remove(key K) (prev V, removed bool) {
	if t == nil {
		return prev, false
	}
	e := t.root
	for e != nil {
		switch c := cmp.Compare(key, e.key); {
		case c < 0:
			e = e.left
		case c > 0:
			e = e.right
		default:
			t.size--
			prev = e.value
			t.rebalanceAfterRemove(t.detach(e))
			return prev, true
		}
	}
	return prev, false
}

// detach removes e from the tree without rebalancing and returns the node
// that was physically unlinked. Left-subtree counters are decremented on the
// way up from the detachment point; cached heights are left stale for the
// rebalancing walk to refresh.
func (t *Tree[K, V]) detach(e *Entry[K, V]) *Entry[K, V] {
	if e.left == nil && e.right == nil {
		// Leaf.
		p := e.parent
		if p == nil {
			t.root = nil
			return e
		}
		if e == p.left {
			p.left = nil
			p.count = 0
		} else {
			p.right = nil
		}
		for lo, anc := p, p.parent; anc != nil; lo, anc = anc, anc.parent {
			if anc.left == lo {
				anc.count--
			}
		}
		return e
	}

	if e.left == nil || e.right == nil {
		// One child: splice it into e's slot.
		child := e.left
		if child == nil {
			child = e.right
		}
		p := e.parent
		child.parent = p
		if p == nil {
			t.root = child
			return e
		}
		if e == p.left {
			p.left = child
		} else {
			p.right = child
		}
		for lo, anc := child, p; anc != nil; lo, anc = anc, anc.parent {
			if anc.left == lo {
				anc.count--
			}
		}
		return e
	}

	// Two children: overwrite e with its in-order successor and unlink the
	// successor node instead.
	succ := e.right.Min()
	e.key = succ.key
	e.value = succ.value
	child := succ.right
	p := succ.parent
	if p.left == succ {
		p.left = child
	} else {
		p.right = child
	}
	if child != nil {
		child.parent = p
	}
	for lo, anc := child, p; anc != nil; lo, anc = anc, anc.parent {
		if anc.left == lo {
			anc.count--
		}
	}
	return succ
}

// rebalanceAfterRemove walks upward from the parent of the detached node.
// Unlike insertion, a removal can leave imbalances at several ancestor
// levels, so the walk rotates wherever it finds a height difference of 2 and
// keeps climbing all the way to the root.
//
// Tie-break on the deletion path: with equally tall inner subtrees the
// single rotation is the one that does not grow the result, so the double
// rotation is chosen only when the inner subtree is strictly taller.
func (t *Tree[K, V]) rebalanceAfterRemove(detached *Entry[K, V]) {
	p := detached.parent
	for p != nil {
		pp := p.parent
		wasLeft := pp == nil || pp.left == p
		var sub *Entry[K, V]

		switch {
		case height(p.left) == height(p.right)+2:
			if height(p.left.left) < height(p.left.right) {
				sub = t.leftRightRotate(p)
			} else {
				sub = t.rightRotate(p)
			}
		case height(p.left)+2 == height(p.right):
			if height(p.right.right) < height(p.right.left) {
				sub = t.rightLeftRotate(p)
			} else {
				sub = t.leftRotate(p)
			}
		default:
			p.h = max(height(p.left), height(p.right)) + 1
			p = p.parent
			continue
		}

		if pp == nil {
			t.root = sub
			return
		}
		if wasLeft {
			pp.left = sub
		} else {
			pp.right = sub
		}
		p = pp
	}
}
