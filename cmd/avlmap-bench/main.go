// avlmap-bench is a benchmark and demo driver for the avlmap library.
// It measures Put/Get/EntryAt/Remove against google/btree, the de-facto
// ordered container of the Go ecosystem, and cross-checks agreement of the
// two containers between the measured phases.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/google/btree"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mureakuha/avlmap"
)

type benchResult struct {
	name     string
	duration time.Duration
	ops      int
}

func (r benchResult) String() string {
	if r.ops > 0 {
		opsPerSec := float64(r.ops) / r.duration.Seconds()
		return fmt.Sprintf("%-36s %12v  (%d ops, %.0f ops/sec)",
			r.name, r.duration.Round(time.Microsecond), r.ops, opsPerSec)
	}
	return fmt.Sprintf("%-36s %12v", r.name, r.duration.Round(time.Microsecond))
}

func measure(name string, ops int, fn func()) benchResult {
	start := time.Now()
	fn()
	return benchResult{name: name, duration: time.Since(start), ops: ops}
}

var (
	optN    int
	optSeed int64
	optDemo bool
)

func main() {
	root := &cobra.Command{
		Use:   "avlmap-bench",
		Short: "Benchmark the counted AVL tree against google/btree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
			if optDemo {
				runDemo()
				return nil
			}
			return runBench(optN, optSeed)
		},
		SilenceUsage: true,
	}
	root.Flags().IntVarP(&optN, "count", "n", 600000, "number of keys to benchmark with (min 1000)")
	root.Flags().Int64Var(&optSeed, "seed", 323, "seed for the key generator")
	root.Flags().BoolVar(&optDemo, "demo", false, "run the small rank-access demo instead of the benchmark")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBench(n int, seed int64) error {
	if n < 1000 {
		n = 1000
	}
	heading := color.New(color.FgCyan, color.Bold)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)

	heading.Println("avlmap benchmark: counted AVL tree vs google/btree")
	fmt.Printf("n=%d seed=%d go=%s GOMAXPROCS=%d\n\n", n, seed, runtime.Version(), runtime.GOMAXPROCS(0))

	r := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Int()
	}

	var results []benchResult
	record := func(res benchResult) {
		results = append(results, res)
		fmt.Println(res)
	}

	avl := avlmap.New[int, int]()
	ref := btree.NewOrderedG[int](8)

	record(measure("btree.ReplaceOrInsert", n, func() {
		for _, k := range keys {
			ref.ReplaceOrInsert(k)
		}
	}))
	record(measure("avlmap.Put", n, func() {
		for _, k := range keys {
			avl.Put(k, k)
		}
	}))

	if avl.IsHealthy() {
		good.Println("avlmap.IsHealthy: true")
	} else {
		bad.Println("avlmap.IsHealthy: FALSE, tree invariants are broken")
		return fmt.Errorf("unhealthy tree after load")
	}

	bar := progressbar.Default(int64(avl.Len()), "verify agreement")
	rank := 0
	agree := true
	ref.Ascend(func(k int) bool {
		e := avl.EntryAt(rank)
		if e == nil || e.Key() != k {
			agree = false
			return false
		}
		rank++
		bar.Add(1)
		return true
	})
	if !agree || rank != avl.Len() {
		bad.Println("containers disagree on ordering")
		return fmt.Errorf("container mismatch at rank %d", rank)
	}
	fmt.Println()

	record(measure("btree.Get x3", 3*n, func() {
		for round := 0; round < 3; round++ {
			for _, k := range keys {
				if _, ok := ref.Get(k); !ok {
					panic("btree.Get failed")
				}
			}
		}
	}))
	record(measure("avlmap.Get x3", 3*n, func() {
		for round := 0; round < 3; round++ {
			for _, k := range keys {
				if v, ok := avl.Get(k); !ok || v != k {
					panic("avlmap.Get failed")
				}
			}
		}
	}))

	record(measure("avlmap.EntryAt sweep", avl.Len(), func() {
		prev := -1
		for i := 0; i < avl.Len(); i++ {
			e := avl.EntryAt(i)
			if e == nil || e.Key() < prev {
				panic("avlmap.EntryAt out of order")
			}
			prev = e.Key()
		}
	}))

	// Partial removal, then verify both containers agree on size.
	for _, k := range keys[:100] {
		ref.Delete(k)
		avl.Remove(k)
	}
	if avl.Len() != ref.Len() {
		bad.Printf("size mismatch after partial removal: avlmap=%d btree=%d\n", avl.Len(), ref.Len())
		return fmt.Errorf("size mismatch")
	}

	record(measure("btree.Delete (drain)", ref.Len(), func() {
		for _, k := range keys {
			ref.Delete(k)
		}
	}))
	record(measure("avlmap.Remove (drain)", avl.Len(), func() {
		for _, k := range keys {
			avl.Remove(k)
		}
	}))

	if avl.Len() != 0 || ref.Len() != 0 {
		bad.Printf("containers not empty after drain: avlmap=%d btree=%d\n", avl.Len(), ref.Len())
		return fmt.Errorf("drain incomplete")
	}

	fmt.Println()
	heading.Println("Summary")
	for _, res := range results {
		fmt.Println(res)
	}
	return nil
}

// runDemo walks through ranked access on a ten-entry map, the way the rank
// index behaves around overwrites and removals.
func runDemo() {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Println("avlmap demo: ranked access")

	m := avlmap.New[int, int]()
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}
	fmt.Printf("size after ten puts: %d\n\n", m.Len())

	for i := -5; i < 15; i++ {
		if e := m.EntryAt(i); e != nil {
			fmt.Printf("i = %2d: entryAt(i) = %s\n", i, e)
		} else {
			fmt.Printf("i = %2d: entryAt(i) = <absent>\n", i)
		}
	}
	fmt.Println()

	prev, _ := m.Put(5, 55)
	fmt.Printf("put(5, 55) replaced value %d, size stays %d\n", prev, m.Len())
	prev, _ = m.Remove(5)
	fmt.Printf("remove(5) returned %d, size is now %d\n", prev, m.Len())
	if e := m.EntryAt(5); e != nil {
		fmt.Printf("entryAt(5) now holds %s (the former rank 6)\n", e)
	}
	fmt.Printf("isHealthy: %v\n", m.IsHealthy())
}
