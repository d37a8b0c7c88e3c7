// Command matmul-bench runs the matrix-multiply optimization ladder and
// reports elapsed time, GFLOPS, and check values for cross-variant
// validation. Results are also appended to a JSON session log.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	atperf "github.com/OliverGrainge/Arm-Total-Performance"
)

type variant struct {
	name string
	run  func(a, b, c []float32, m, k, n, tile int) error
}

var variants = []variant{
	{"naive", func(a, b, c []float32, m, k, n, _ int) error {
		return atperf.MultiplyNaive(a, b, c, m, k, n)
	}},
	{"reordered", func(a, b, c []float32, m, k, n, _ int) error {
		return atperf.MultiplyReordered(a, b, c, m, k, n)
	}},
	{"tiled1d", atperf.MultiplyTiled1D},
	{"tiled", atperf.MultiplyTiled},
	{"packed", atperf.Multiply},
}

func main() {
	var (
		variantName = flag.String("variant", "all", "variant to run: naive|reordered|tiled1d|tiled|packed|all")
		m           = flag.Int("m", 1024, "rows of A and C")
		k           = flag.Int("k", 1024, "cols of A / rows of B")
		n           = flag.Int("n", 1024, "cols of B and C")
		tile        = flag.Int("tile", atperf.DefaultTileSize, "tile size for blocked variants")
		minTime     = flag.Duration("mintime", 0, "repeat each variant until this much time has elapsed")
		logDir      = flag.String("logdir", "benchmark_logs", "directory for JSON session logs")
	)
	flag.Parse()

	M, K, N := *m, *k, *n

	fmt.Println("=== Matrix multiply ladder ===")
	fmt.Printf("Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("CPU: %d cores, %s\n", runtime.NumCPU(), atperf.CPUInfo())
	fmt.Printf("Problem: %dx%d * %dx%d, tile=%d\n\n", M, K, K, N, *tile)

	logger, err := atperf.NewBenchLogger(*logDir, "matmul")
	if err != nil {
		log.Fatalf("Failed to open benchmark log: %v", err)
	}

	a := make([]float32, M*K)
	b := make([]float32, K*N)
	c := make([]float32, M*N)
	atperf.FillModA(a)
	atperf.FillModB(b)

	for _, v := range variants {
		if *variantName != "all" && *variantName != v.name {
			continue
		}
		runVariant(logger, v, a, b, c, M, K, N, *tile, *minTime)
	}

	fmt.Printf("\nSession log: %s\n", logger.SessionFile())
}

func runVariant(logger *atperf.BenchLogger, v variant, a, b, c []float32, m, k, n, tile int, minTime time.Duration) {
	reps := 0
	start := time.Now()
	for {
		if err := v.run(a, b, c, m, k, n, tile); err != nil {
			log.Fatalf("%s failed: %v", v.name, err)
		}
		reps++
		if time.Since(start) >= minTime {
			break
		}
	}
	elapsed := time.Since(start)

	ms := float64(elapsed.Nanoseconds()) / 1e6
	gflops := 2.0 * float64(m) * float64(k) * float64(n) * float64(reps) / (ms * 1e6)
	checkLo := float64(c[0])
	checkHi := float64(c[m*n-1])

	fmt.Printf("%-10s %4d rep(s)\n", v.name, reps)
	fmt.Printf("  Time:   %.2f ms\n", ms)
	fmt.Printf("  GFLOPS: %.2f\n", gflops)
	fmt.Printf("  Check:  C[0]=%g C[M*N-1]=%g\n", checkLo, checkHi)

	if err := logger.Log(atperf.BenchResult{
		Name: v.name, M: m, K: k, N: n, Tile: tile, Reps: reps,
		Millis: ms, GFLOPS: gflops,
		CheckLo: checkLo, CheckHi: checkHi,
		VectorISA: atperf.VectorISA(),
	}); err != nil {
		log.Printf("Failed to log result: %v", err)
	}
}
