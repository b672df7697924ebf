/*
Package avlmap provides an in-memory ordered map with order statistics,
implemented as a counted AVL tree.

An ordered map keeps its entries sorted by key at all times. On top of the
usual key-based operations, avlmap maintains a per-node left-subtree counter
("counted" tree), which makes positional access possible: EntryAt(i) returns
the entry with the i-th smallest key without scanning.

All relevant operations run in logarithmic time with respect to the map size:

	Operation     |  avlmap       |  built-in map  |  sorted slice
	--------------+---------------+----------------+--------------
	Put           |  O(log n)     |  O(1)          |  O(n)
	Get           |  O(log n)     |  O(1)          |  O(log n)
	Remove        |  O(log n)     |  O(1)          |  O(n)
	EntryAt(i)    |  O(log n)     |  —             |  O(1)
	In-order walk |  O(n)         |  —             |  O(n)

Keys are constrained to cmp.Ordered and compared with the standard Go
ordering. The zero value of Tree is an empty map ready for use.

Entry handles returned by EntryAt, First and Next stay attached to the tree
and support in-order navigation. Removal of an entry with two children reuses
the entry's node and replaces its content with that of the in-order successor;
a long-lived Entry handle therefore survives structurally, but its key and
value may have been replaced. Do not cache handles across removals if key
identity matters.

Trees are not safe for concurrent use. All operations run synchronously to
completion with no internal locking; callers that share a tree across
goroutines must provide their own synchronization around the whole structure.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Mureakuha

Please refer to the License file in the repository root.

*/
package avlmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
