// hitree-bench is a benchmark and stress test for the hitree library.
// It builds a large set and measures the throughput of ranked and keyed
// operations.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/phroun/hitree"
)

const (
	defaultSize = 1 << 20
	lookupOps   = 1 << 20
	churnOps    = 1 << 18
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-32s %12v  (%d ops, %.0f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-32s %12v  (%d ops, %.0f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	return fmt.Sprintf("%-32s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
}

func main() {
	size := defaultSize
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Printf("usage: %s [set-size]\n", os.Args[0])
			os.Exit(1)
		}
		size = n
	}

	fmt.Println("hitree Benchmark and Stress Test")
	fmt.Println("================================")
	fmt.Printf("Set size: %d\n", size)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	values := rng.Perm(size)
	set := hitree.New[int]()

	var results []BenchResult

	// Phase 1: build
	bar := progressbar.Default(int64(size), "inserting")
	start := time.Now()
	for i, v := range values {
		set.Insert(v)
		if i%4096 == 0 {
			_ = bar.Set(i)
		}
	}
	_ = bar.Finish()
	results = append(results, BenchResult{"Insert (random order)", time.Since(start), size, ""})

	// Phase 2: ranked lookups
	start = time.Now()
	var sink int
	for i := 0; i < lookupOps; i++ {
		v, _ := set.GetByIndex(rng.Intn(set.Len()))
		sink ^= v
	}
	results = append(results, BenchResult{"GetByIndex (random rank)", time.Since(start), lookupOps, ""})

	// Phase 3: keyed lookups and ranks
	start = time.Now()
	for i := 0; i < lookupOps; i++ {
		r, _ := set.IndexOf(rng.Intn(size))
		sink ^= r
	}
	results = append(results, BenchResult{"IndexOf (random key)", time.Since(start), lookupOps, ""})

	// Phase 4: iteration
	start = time.Now()
	it := set.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		sink ^= v
	}
	results = append(results, BenchResult{"Iter (full scan)", time.Since(start), size, ""})

	// Phase 5: remove/reinsert churn at random ranks
	bar = progressbar.Default(churnOps, "churning")
	start = time.Now()
	for i := 0; i < churnOps; i++ {
		v, _ := set.TakeByIndex(rng.Intn(set.Len()))
		set.Insert(v)
		if i%4096 == 0 {
			_ = bar.Set(i)
		}
	}
	_ = bar.Finish()
	results = append(results, BenchResult{"TakeByIndex + Insert churn", time.Since(start), churnOps, ""})

	// Phase 6: drain
	start = time.Now()
	drained := 0
	d := set.Drain()
	for v, ok := d.Next(); ok; v, ok = d.Next() {
		sink ^= v
		drained++
	}
	results = append(results, BenchResult{"Drain (consume all)", time.Since(start), drained, ""})

	fmt.Println()
	fmt.Println("Results")
	fmt.Println("-------")
	for _, r := range results {
		fmt.Println(r)
	}
	fmt.Printf("\nchecksum: %x\n", sink)
}
