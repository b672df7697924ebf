package avlmap

import (
	"cmp"
	"fmt"
	"math"
)

// The checkers in this file are diagnostics for tests and fuzzing. None of
// them is ever called by Put, Get, Remove or EntryAt; a violation reported
// here means a logic defect in the mutation algorithms, not a condition a
// caller could recover from.

// Check validates all structural tree invariants and reports the first
// violation as an error wrapping ErrInvariantViolation.
//
// This checker is intentionally strict: on top of the classic AVL health
// predicates (see IsHealthy) it verifies BST key order, parent back-links
// and the incrementally maintained size.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrInvariantViolation, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent link", ErrInvariantViolation)
	}
	seen := make(map[*Entry[K, V]]bool, t.size)
	entries, _, err := t.checkEntry(t.root, nil, nil, seen)
	if err != nil {
		return err
	}
	if entries != t.size {
		return fmt.Errorf("%w: size mismatch (%d entries, size=%d)", ErrInvariantViolation, entries, t.size)
	}
	return nil
}

func (t *Tree[K, V]) checkEntry(e *Entry[K, V], lo, hi *K, seen map[*Entry[K, V]]bool) (entries, h int, err error) {
	if e == nil {
		return 0, -1, nil
	}
	if seen[e] {
		return 0, 0, fmt.Errorf("%w: entry %v is reachable twice", ErrInvariantViolation, e.key)
	}
	seen[e] = true
	if lo != nil && cmp.Compare(e.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v violates BST order (not above %v)", ErrInvariantViolation, e.key, *lo)
	}
	if hi != nil && cmp.Compare(e.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v violates BST order (not below %v)", ErrInvariantViolation, e.key, *hi)
	}
	if e.left != nil && e.left.parent != e {
		return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrInvariantViolation, e.key)
	}
	if e.right != nil && e.right.parent != e {
		return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrInvariantViolation, e.key)
	}
	ln, lh, err := t.checkEntry(e.left, lo, &e.key, seen)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := t.checkEntry(e.right, &e.key, hi, seen)
	if err != nil {
		return 0, 0, err
	}
	if want := max(lh, rh) + 1; e.h != want {
		return 0, 0, fmt.Errorf("%w: cached height of %v is %d, recomputed %d", ErrInvariantViolation, e.key, e.h, want)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor of %v out of bounds (%d vs %d)", ErrInvariantViolation, e.key, lh, rh)
	}
	if e.count != ln {
		return 0, 0, fmt.Errorf("%w: left counter of %v is %d, left subtree holds %d", ErrInvariantViolation, e.key, e.count, ln)
	}
	return ln + rn + 1, e.h, nil
}

// IsHealthy checks the classic counted-AVL-tree invariants: acyclicity,
// height-field correctness, the balance bound, and left-counter correctness.
func (t *Tree[K, V]) IsHealthy() bool {
	return !t.HasCycles() &&
		t.HeightFieldsOK() &&
		t.IsBalanced() &&
		t.IsWellIndexed()
}

// HasCycles reports whether any node is reachable twice from the root.
func (t *Tree[K, V]) HasCycles() bool {
	if t == nil {
		return false
	}
	return hasCycles(t.root, make(map[*Entry[K, V]]bool))
}

func hasCycles[K cmp.Ordered, V any](e *Entry[K, V], seen map[*Entry[K, V]]bool) bool {
	if e == nil {
		return false
	}
	if seen[e] {
		return true
	}
	seen[e] = true
	return hasCycles(e.left, seen) || hasCycles(e.right, seen)
}

// HeightFieldsOK reports whether every cached height equals the recursively
// recomputed subtree height.
func (t *Tree[K, V]) HeightFieldsOK() bool {
	if t == nil || t.root == nil {
		return true
	}
	return checkHeight(t.root) == t.root.h
}

func checkHeight[K cmp.Ordered, V any](e *Entry[K, V]) int {
	if e == nil {
		return -1
	}
	l := checkHeight(e.left)
	if l == math.MinInt {
		return l
	}
	r := checkHeight(e.right)
	if r == math.MinInt {
		return r
	}
	if h := max(l, r) + 1; h == e.h {
		return h
	}
	return math.MinInt
}

// IsBalanced reports whether the AVL balance bound |h(left)-h(right)| <= 1
// holds at every node.
func (t *Tree[K, V]) IsBalanced() bool {
	if t == nil {
		return true
	}
	return isBalanced(t.root)
}

func isBalanced[K cmp.Ordered, V any](e *Entry[K, V]) bool {
	if e == nil {
		return true
	}
	if d := height(e.left) - height(e.right); d > 1 || d < -1 {
		return false
	}
	return isBalanced(e.left) && isBalanced(e.right)
}

// IsWellIndexed reports whether every left-subtree counter equals the
// independently recomputed left-subtree size.
func (t *Tree[K, V]) IsWellIndexed() bool {
	if t == nil || t.root == nil {
		return true
	}
	return countLeft(t.root.left) == t.root.count
}

// countLeft recomputes subtree sizes bottom-up, comparing every counter on
// the way; math.MinInt poisons the result on the first mismatch.
func countLeft[K cmp.Ordered, V any](e *Entry[K, V]) int {
	if e == nil {
		return 0
	}
	l := countLeft(e.left)
	if l != e.count {
		return math.MinInt
	}
	r := countLeft(e.right)
	if r == math.MinInt {
		return math.MinInt
	}
	return l + r + 1
}
