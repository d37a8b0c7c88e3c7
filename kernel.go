package atperf

import (
	"github.com/ajroetker/go-highway/hwy"
)

// microKernel4x4 accumulates one microBlockRows x microBlockCols block of c
// over a single reduction range.
//
// a is the left operand with row stride lda; rows i..i+3 restricted to
// [k0, k0+klen) are consumed. panel holds the packed right-operand values
// for this column group: klen consecutive 4-wide vectors, read strictly
// sequentially. c is the output with row stride ldc; the block starts at
// column j of rows i..i+3.
//
// The four accumulators stay in vector registers for the whole reduction
// range. c is loaded once before the loop and stored once after, so a
// later reduction tile accumulates onto the partial sum left by the
// previous one (the driver zeroes c up front).
func microKernel4x4(a []float32, lda, i, k0, klen int, panel []float32, c []float32, ldc, j int) {
	c0 := hwy.Load(c[(i+0)*ldc+j : (i+0)*ldc+j+microBlockCols])
	c1 := hwy.Load(c[(i+1)*ldc+j : (i+1)*ldc+j+microBlockCols])
	c2 := hwy.Load(c[(i+2)*ldc+j : (i+2)*ldc+j+microBlockCols])
	c3 := hwy.Load(c[(i+3)*ldc+j : (i+3)*ldc+j+microBlockCols])

	for p := 0; p < klen; p++ {
		vb := hwy.Load(panel[p*microBlockCols : (p+1)*microBlockCols])
		k := k0 + p
		c0 = hwy.MulAdd(hwy.Set(a[(i+0)*lda+k]), vb, c0)
		c1 = hwy.MulAdd(hwy.Set(a[(i+1)*lda+k]), vb, c1)
		c2 = hwy.MulAdd(hwy.Set(a[(i+2)*lda+k]), vb, c2)
		c3 = hwy.MulAdd(hwy.Set(a[(i+3)*lda+k]), vb, c3)
	}

	hwy.Store(c0, c[(i+0)*ldc+j:(i+0)*ldc+j+microBlockCols])
	hwy.Store(c1, c[(i+1)*ldc+j:(i+1)*ldc+j+microBlockCols])
	hwy.Store(c2, c[(i+2)*ldc+j:(i+2)*ldc+j+microBlockCols])
	hwy.Store(c3, c[(i+3)*ldc+j:(i+3)*ldc+j+microBlockCols])
}

// microKernelScalar is the remainder path: the same accumulation as
// microKernel4x4 carried out per element (a 1x1 register block), reading b
// directly in its strided layout. It handles any row or column group
// narrower than the register block, including degenerate 1-row or
// 1-column problems.
func microKernelScalar(a []float32, lda int, b []float32, ldb int, c []float32, ldc int, ir, jr, kr TileRange) {
	for i := ir.Start; i < ir.End; i++ {
		for j := jr.Start; j < jr.End; j++ {
			sum := c[i*ldc+j]
			for k := kr.Start; k < kr.End; k++ {
				sum += a[i*lda+k] * b[k*ldb+j]
			}
			c[i*ldc+j] = sum
		}
	}
}
