package avlmap

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
)

func randomKeys(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Int()
	}
	return keys
}

func BenchmarkPut(b *testing.B) {
	keys := randomKeys(b.N, 323)
	tree := New[int, int]()
	b.ResetTimer()
	for _, k := range keys {
		tree.Put(k, k)
	}
}

func BenchmarkGet(b *testing.B) {
	keys := randomKeys(100_000, 323)
	tree := New[int, int]()
	for _, k := range keys {
		tree.Put(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Get(keys[i%len(keys)])
	}
}

func BenchmarkEntryAt(b *testing.B) {
	keys := randomKeys(100_000, 323)
	tree := New[int, int]()
	for _, k := range keys {
		tree.Put(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.EntryAt(i % tree.Len())
	}
}

func BenchmarkRemove(b *testing.B) {
	keys := randomKeys(b.N, 323)
	tree := New[int, int]()
	for _, k := range keys {
		tree.Put(k, k)
	}
	b.ResetTimer()
	for _, k := range keys {
		tree.Remove(k)
	}
}

// Comparison baselines against google/btree, the de-facto ordered container
// of the ecosystem. Note that it offers no ranked access at all, so there is
// no EntryAt baseline to measure against.

func BenchmarkReferenceBTreePut(b *testing.B) {
	keys := randomKeys(b.N, 323)
	ref := btree.NewOrderedG[int](8)
	b.ResetTimer()
	for _, k := range keys {
		ref.ReplaceOrInsert(k)
	}
}

func BenchmarkReferenceBTreeGet(b *testing.B) {
	keys := randomKeys(100_000, 323)
	ref := btree.NewOrderedG[int](8)
	for _, k := range keys {
		ref.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref.Get(keys[i%len(keys)])
	}
}
