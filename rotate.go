package avlmap

// Rotations restructure a small node neighborhood while preserving in-order
// key order. Each rotation touches the disbalanced node, the pivot child and
// at most their immediate children, recomputes the two affected heights and
// transfers left-subtree counters between the rotated pair. Everything else
// in the tree stays untouched, which keeps a rebalancing step O(1).
//
// The caller is responsible for hooking the returned subtree root into the
// parent (or the tree root); rotations only fix the pivot's parent link.

// leftRotate rotates the subtree of a right-heavy node e to the left and
// returns the new subtree root.
func (t *Tree[K, V]) leftRotate(e *Entry[K, V]) *Entry[K, V] {
	pivot := e.right
	pivot.parent = e.parent
	e.parent = pivot
	e.right = pivot.left
	pivot.left = e

	if e.right != nil {
		e.right.parent = e
	}

	e.h = max(height(e.left), height(e.right)) + 1
	pivot.h = max(height(pivot.left), height(pivot.right)) + 1

	// e and its left subtree moved below the pivot.
	pivot.count += e.count + 1
	return pivot
}

// rightRotate rotates the subtree of a left-heavy node e to the right and
// returns the new subtree root.
func (t *Tree[K, V]) rightRotate(e *Entry[K, V]) *Entry[K, V] {
	pivot := e.left
	pivot.parent = e.parent
	e.parent = pivot
	e.left = pivot.right
	pivot.right = e

	if e.left != nil {
		e.left.parent = e
	}

	e.h = max(height(e.left), height(e.right)) + 1
	pivot.h = max(height(pivot.left), height(pivot.right)) + 1

	// The pivot and its left subtree left e's left subtree.
	e.count -= pivot.count + 1
	return pivot
}

// leftRightRotate resolves a left-right-heavy imbalance with a double
// rotation: first the left child to the left, then e to the right.
func (t *Tree[K, V]) leftRightRotate(e *Entry[K, V]) *Entry[K, V] {
	e.left = t.leftRotate(e.left)
	return t.rightRotate(e)
}

// rightLeftRotate resolves a right-left-heavy imbalance with a double
// rotation: first the right child to the right, then e to the left.
func (t *Tree[K, V]) rightLeftRotate(e *Entry[K, V]) *Entry[K, V] {
	e.right = t.rightRotate(e.right)
	return t.leftRotate(e)
}

// replaceChild hooks sub into the slot that old occupied below parent, or
// makes sub the tree root if parent is nil.
func (t *Tree[K, V]) replaceChild(parent, old, sub *Entry[K, V]) {
	switch {
	case parent == nil:
		t.root = sub
	case parent.left == old:
		parent.left = sub
	default:
		parent.right = sub
	}
}
