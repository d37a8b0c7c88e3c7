package atperf

import (
	"fmt"
	"testing"
)

// reportGFLOPS attaches the achieved arithmetic rate to a benchmark: a
// dense multiply performs 2*M*K*N flops per run.
func reportGFLOPS(b *testing.B, m, k, n int) {
	flops := 2.0 * float64(m) * float64(k) * float64(n) * float64(b.N)
	b.ReportMetric(flops/b.Elapsed().Seconds()/1e9, "GFLOPS")
}

func benchMatmul(b *testing.B, run func(a, bb, c []float32, m, k, n int) error) {
	sizes := []int{64, 128, 256, 512}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("N_%d", size), func(b *testing.B) {
			a := GenerateFloat32Range(size*size, 50, -1, 1)
			bb := GenerateFloat32Range(size*size, 51, -1, 1)
			c := make([]float32, size*size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := run(a, bb, c, size, size, size); err != nil {
					b.Fatal(err)
				}
			}
			reportGFLOPS(b, size, size, size)
		})
	}
}

func BenchmarkMultiplyNaive(b *testing.B) {
	benchMatmul(b, MultiplyNaive)
}

func BenchmarkMultiplyReordered(b *testing.B) {
	benchMatmul(b, MultiplyReordered)
}

func BenchmarkMultiplyTiled1D(b *testing.B) {
	benchMatmul(b, func(a, bb, c []float32, m, k, n int) error {
		return MultiplyTiled1D(a, bb, c, m, k, n, DefaultTileSize)
	})
}

func BenchmarkMultiplyTiled(b *testing.B) {
	benchMatmul(b, func(a, bb, c []float32, m, k, n int) error {
		return MultiplyTiled(a, bb, c, m, k, n, TiledBlockSize)
	})
}

func BenchmarkMultiplyPacked(b *testing.B) {
	benchMatmul(b, func(a, bb, c []float32, m, k, n int) error {
		return Multiply(a, bb, c, m, k, n, DefaultTileSize)
	})
}

// Tile-size sweep for the packed kernel at a fixed problem size.
func BenchmarkMultiplyTileSweep(b *testing.B) {
	const size = 256
	a := GenerateFloat32Range(size*size, 52, -1, 1)
	bb := GenerateFloat32Range(size*size, 53, -1, 1)
	c := make([]float32, size*size)

	for _, tile := range []int{16, 32, 64, 128} {
		b.Run(fmt.Sprintf("tile_%d", tile), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := Multiply(a, bb, c, size, size, size, tile); err != nil {
					b.Fatal(err)
				}
			}
			reportGFLOPS(b, size, size, size)
		})
	}
}

func BenchmarkTriad(b *testing.B) {
	sizes := []int{1 << 10, 1 << 16, 1 << 20, 1 << 23}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("N_%d", n), func(b *testing.B) {
			x := GenerateFloat32Range(n, 54, -1, 1)
			y := GenerateFloat32Range(n, 55, -1, 1)
			out := make([]float32, n)

			b.SetBytes(int64(n) * 4 * 3) // two reads, one write
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := Triad(out, x, y, 0.75); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSoftmaxScale(b *testing.B) {
	const n = 1 << 18
	in := GenerateFloat32Range(n, 56, -0.5, 0.5)
	scale := GenerateFloat32Range(n, 57, 1, 2)
	out := make([]float32, n)

	b.SetBytes(int64(n) * 4 * 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := SoftmaxScale(out, in, scale); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpdatePositions(b *testing.B) {
	const n = 1 << 18
	const dt = 0.001

	b.Run("AoS", func(b *testing.B) {
		particles := make([]Particle, n)
		for i := range particles {
			particles[i].VX, particles[i].VY, particles[i].VZ = 1, 2, 3
		}
		b.SetBytes(int64(n) * 64) // one cache line per particle
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			UpdatePositionsAoS(particles, dt)
		}
	})

	b.Run("SoA", func(b *testing.B) {
		soa := NewParticlesSoA(n)
		for i := 0; i < n; i++ {
			soa.VX[i], soa.VY[i], soa.VZ[i] = 1, 2, 3
		}
		b.SetBytes(int64(n) * 24) // six hot floats per particle
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			UpdatePositionsSoA(soa, dt)
		}
	})
}
