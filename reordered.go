package atperf

import (
	"github.com/ajroetker/go-highway/hwy"
)

// MultiplyReordered computes C = A * B with the ikj loop nest: the inner
// loop walks a row of B and a row of C with stride 1, so every loaded
// cache line is fully consumed. The row update c[j] += a_ik * b[j] is a
// vector multiply-add over full vector widths with a scalar tail.
//
// Same shape and aliasing preconditions as Multiply.
func MultiplyReordered(a, b, c []float32, m, k, n int) error {
	if err := validateOperands("MultiplyReordered", a, b, c, m, k, n); err != nil {
		return err
	}
	zeroFloat32(c[:m*n])
	lanes := hwy.MaxLanes[float32]()
	for i := 0; i < m; i++ {
		cRow := c[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			aik := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			va := hwy.Set(aik)
			var j int
			for j = 0; j+lanes <= n; j += lanes {
				vc := hwy.MulAdd(va, hwy.Load(bRow[j:]), hwy.Load(cRow[j:]))
				hwy.Store(vc, cRow[j:])
			}
			for ; j < n; j++ {
				cRow[j] += aik * bRow[j]
			}
		}
	}
	return nil
}
