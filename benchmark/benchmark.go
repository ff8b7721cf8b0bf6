// benchmark.go
// Measures execution time and memory usage for any wrapped tool invocation.

package benchmark

import (
	"fmt"
	"runtime"
	"time"
)

// Run wraps a tool invocation to measure its runtime and memory usage.
func Run(label string, f func()) {
	fmt.Printf("[Benchmark] Running: %s\n", label)
	fmt.Println("[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	fmt.Println("[Benchmark] Go Version:", runtime.Version())
	fmt.Printf("[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	fmt.Printf("[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Printf("[Benchmark] Memory Used: %.2f MB\n", float64(memEnd.Alloc-memStart.Alloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Printf("[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Println("[Benchmark] ----------------------------------------")
}
