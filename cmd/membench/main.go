// Command membench runs the streaming and data-layout workloads: the
// triad bandwidth kernel, the softmax-scale pipeline, and the AoS vs SoA
// particle position update. It reports bandwidth and checksums and writes
// a JSON session log.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	atperf "github.com/OliverGrainge/Arm-Total-Performance"
)

func main() {
	var (
		triadN    = flag.Int("triad-n", 1<<23, "triad vector length")
		softmaxN  = flag.Int("softmax-n", 1<<22, "softmax vector length")
		particles = flag.Int("particles", 1<<20, "particle count")
		iters     = flag.Int("iters", 200, "iterations per workload")
		logDir    = flag.String("logdir", "benchmark_logs", "directory for JSON session logs")
	)
	flag.Parse()

	fmt.Println("=== Memory bandwidth & layout workloads ===")
	fmt.Printf("Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("CPU: %d cores, %s\n\n", runtime.NumCPU(), atperf.CPUInfo())

	logger, err := atperf.NewBenchLogger(*logDir, "membench")
	if err != nil {
		log.Fatalf("Failed to open benchmark log: %v", err)
	}

	runTriad(logger, *triadN, *iters)
	runSoftmax(logger, *softmaxN, *iters)
	runParticles(logger, *particles, *iters)

	fmt.Printf("\nSession log: %s\n", logger.SessionFile())
}

func runTriad(logger *atperf.BenchLogger, n, iters int) {
	const alpha = 0.75
	a := make([]float32, n)
	b := make([]float32, n)
	out := make([]float32, n)
	for i := range a {
		a[i] = float32(i%1024) * 0.001
		b[i] = float32((i*3)%2048) * 0.0005
	}

	start := time.Now()
	for iter := 0; iter < iters; iter++ {
		if err := atperf.Triad(out, a, b, alpha); err != nil {
			log.Fatalf("triad failed: %v", err)
		}
	}
	ms := float64(time.Since(start).Nanoseconds()) / 1e6

	// Two reads and one write of n floats per iteration.
	bytes := float64(n) * 4 * 3 * float64(iters)
	gbps := bytes / (ms * 1e6)
	sample := n
	if sample > 1024 {
		sample = 1024
	}
	check := atperf.Checksum(out[:sample])

	fmt.Printf("triad      N=%d iters=%d\n", n, iters)
	fmt.Printf("  Time:      %.2f ms\n", ms)
	fmt.Printf("  Bandwidth: %.2f GB/s\n", gbps)
	fmt.Printf("  Checksum:  %.6f\n", check)

	logResult(logger, atperf.BenchResult{
		Name: "triad", N: n, Reps: iters, Millis: ms, GBPerSec: gbps, Checksum: check,
	})
}

func runSoftmax(logger *atperf.BenchLogger, n, iters int) {
	in := make([]float32, n)
	scale := make([]float32, n)
	out := make([]float32, n)
	for i := range in {
		in[i] = float32(i%1009)*0.001 - 0.5
		scale[i] = 1.0 + float32(i%7)*0.1
	}

	start := time.Now()
	for iter := 0; iter < iters; iter++ {
		if err := atperf.SoftmaxScale(out, in, scale); err != nil {
			log.Fatalf("softmax failed: %v", err)
		}
	}
	ms := float64(time.Since(start).Nanoseconds()) / 1e6
	check := atperf.Checksum(out)

	fmt.Printf("softmax    N=%d iters=%d\n", n, iters)
	fmt.Printf("  Time:     %.2f ms\n", ms)
	fmt.Printf("  Checksum: %.6f\n", check)

	logResult(logger, atperf.BenchResult{
		Name: "softmax", N: n, Reps: iters, Millis: ms, Checksum: check,
	})
}

func runParticles(logger *atperf.BenchLogger, n, iters int) {
	const dt = 0.001

	aos := make([]atperf.Particle, n)
	soa := atperf.NewParticlesSoA(n)
	for i := 0; i < n; i++ {
		aos[i] = atperf.Particle{
			X: float32(i) * 0.1, Y: float32(i) * 0.2, Z: float32(i) * 0.3,
			VX: 1.0, VY: 2.0, VZ: 3.0,
			Mass: 1.0, Charge: 0.5, Temp: 300.0,
			Pressure: 101325.0, Dens: 1.0,
		}
		soa.X[i], soa.Y[i], soa.Z[i] = float32(i)*0.1, float32(i)*0.2, float32(i)*0.3
		soa.VX[i], soa.VY[i], soa.VZ[i] = 1.0, 2.0, 3.0
		soa.Mass[i], soa.Charge[i], soa.Temp[i] = 1.0, 0.5, 300.0
		soa.Pressure[i], soa.Dens[i] = 101325.0, 1.0
	}

	start := time.Now()
	for iter := 0; iter < iters; iter++ {
		atperf.UpdatePositionsAoS(aos, dt)
	}
	aosMs := float64(time.Since(start).Nanoseconds()) / 1e6
	aosCheck := atperf.PositionChecksumAoS(aos)

	start = time.Now()
	for iter := 0; iter < iters; iter++ {
		atperf.UpdatePositionsSoA(soa, dt)
	}
	soaMs := float64(time.Since(start).Nanoseconds()) / 1e6
	soaCheck := atperf.PositionChecksumSoA(soa)

	fmt.Printf("particles  N=%d iters=%d\n", n, iters)
	fmt.Printf("  AoS: %.2f ms, checksum %.6f\n", aosMs, aosCheck)
	fmt.Printf("  SoA: %.2f ms, checksum %.6f\n", soaMs, soaCheck)

	logResult(logger, atperf.BenchResult{
		Name: "particles_aos", N: n, Reps: iters, Millis: aosMs, Checksum: aosCheck,
	})
	logResult(logger, atperf.BenchResult{
		Name: "particles_soa", N: n, Reps: iters, Millis: soaMs, Checksum: soaCheck,
	})
}

func logResult(logger *atperf.BenchLogger, r atperf.BenchResult) {
	r.VectorISA = atperf.VectorISA()
	if err := logger.Log(r); err != nil {
		log.Printf("Failed to log result: %v", err)
	}
}
