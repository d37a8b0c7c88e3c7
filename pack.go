package atperf

import (
	"github.com/ajroetker/go-highway/hwy"
)

// packRHS copies the kr x jr sub-rectangle of b (row stride n) into the
// micro-panel layout consumed by the 4x4 micro-kernel: for each group of
// microBlockCols contiguous columns, all reduction rows in kr are stored
// back-to-back. A reduction sweep over a fixed column group then reads dst
// sequentially, where the same sweep over b strides by n floats per step —
// one cache-line fetch per single useful 4-wide access when n is large.
//
// Only full microBlockCols-wide groups are packed. A trailing narrower
// column group is not packed; the driver routes it through the scalar
// fallback. dst is caller-owned and overwritten, no allocation happens
// here. Returns the number of floats written.
func packRHS(b []float32, n int, kr, jr TileRange, dst []float32) int {
	di := 0
	for j := jr.Start; j+microBlockCols <= jr.End; j += microBlockCols {
		for k := kr.Start; k < kr.End; k++ {
			src := b[k*n+j : k*n+j+microBlockCols]
			hwy.Store(hwy.Load(src), dst[di:di+microBlockCols])
			di += microBlockCols
		}
	}
	return di
}
