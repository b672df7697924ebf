package avlmap

import (
	"cmp"
	"fmt"
	"io"
)

type nodeids[K cmp.Ordered, V any] struct {
	idTable map[*Entry[K, V]]int
	max     int
}

func newtable[K cmp.Ordered, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*Entry[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(e *Entry[K, V]) int {
	return ids.idTable[e]
}

func (ids *nodeids[K, V]) alloc(e *Entry[K, V]) int {
	if id := ids.find(e); id > 0 {
		return id
	}
	ids.idTable[e] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Every node is labelled with its key, cached
// height and left-subtree counter; nil children appear as small circles.
func Tree2Dot[K cmp.Ordered, V any](t *Tree[K, V], w io.Writer) {
	T().Debugf("tree DOT: dumping %d entries", t.Len())
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	t.ForEachEntry(func(e *Entry[K, V]) bool {
		ID := ids.alloc(e)
		label := fmt.Sprintf("%v\\nh=%d #%d", e.key, e.h, e.count)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", ID, label)
		if e.left == nil && e.right != nil {
			nilid := ID + 10000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		}
		if e.left != nil {
			_ = ids.alloc(e.left)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(e.left))
		}
		if e.right == nil && e.left != nil {
			nilid := ID + 20000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		}
		if e.right != nil {
			_ = ids.alloc(e.right)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(e.right))
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}
