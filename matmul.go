package atperf

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
)

// validateOperands checks the shared matrix-multiply preconditions before
// any element is touched: positive dimensions, non-nil buffers, and
// buffers large enough for the stated shapes.
func validateOperands(op string, a, b, c []float32, m, k, n int) error {
	if m <= 0 || k <= 0 || n <= 0 {
		return NewInvalidArgError(op,
			fmt.Sprintf("dimensions must be positive, got m=%d k=%d n=%d", m, k, n))
	}
	if a == nil || b == nil || c == nil {
		return NewInvalidArgError(op, "nil operand buffer")
	}
	if len(a) < m*k {
		return NewInvalidArgError(op,
			fmt.Sprintf("A buffer too small: have %d, need %d", len(a), m*k))
	}
	if len(b) < k*n {
		return NewInvalidArgError(op,
			fmt.Sprintf("B buffer too small: have %d, need %d", len(b), k*n))
	}
	if len(c) < m*n {
		return NewInvalidArgError(op,
			fmt.Sprintf("C buffer too small: have %d, need %d", len(c), m*n))
	}
	return nil
}

// zeroFloat32 clears dst using full-width vector stores with a scalar tail.
func zeroFloat32(dst []float32) {
	vZero := hwy.Zero[float32]()
	lanes := vZero.NumLanes()
	var i int
	for i = 0; i+lanes <= len(dst); i += lanes {
		hwy.Store(vZero, dst[i:])
	}
	for ; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Multiply computes C = A * B with cache tiling, B-panel packing, and the
// 4x4 register-blocked micro-kernel.
//
//   - a is M x K, b is K x N, c is M x N, all row-major with row stride
//     equal to the column count
//   - tile is the blocking granularity and must be a positive multiple of
//     the micro-block width (4); DefaultTileSize sizes three tiles to L1d
//
// C is zeroed first and fully overwritten. The loop nest runs row-tile,
// column-tile, reduction-tile, outermost first; within a (row, column)
// tile the reduction tiles accumulate in ascending order. This summation
// order is fixed, so results are bit-reproducible across runs. Rows or
// columns not covered by a full 4x4 micro-block take the scalar fallback.
//
// The operand slices must not overlap in memory. For best throughput
// allocate the buffers on a 64-byte boundary; misalignment degrades speed
// only, never correctness.
//
// One tile x tile scratch panel is allocated per call and discarded at
// return; to share a panel across concurrent calls each caller needs its
// own, which a per-call allocation guarantees.
func Multiply(a, b, c []float32, m, k, n, tile int) error {
	const op = "Multiply"
	if err := validateOperands(op, a, b, c, m, k, n); err != nil {
		return err
	}
	if tile <= 0 || tile%microBlockCols != 0 {
		return NewInvalidArgError(op,
			fmt.Sprintf("tile size must be a positive multiple of %d, got %d", microBlockCols, tile))
	}

	zeroFloat32(c[:m*n])
	panel := make([]float32, tile*tile)

	jTiles := Tiles(n, tile)
	kTiles := Tiles(k, tile)

	for _, ir := range Tiles(m, tile) {
		// Rows of this tile covered by full micro-blocks.
		iVecEnd := ir.Start + (ir.Len()/microBlockRows)*microBlockRows

		for _, jr := range jTiles {
			jVecEnd := jr.Start + (jr.Len()/microBlockCols)*microBlockCols

			for _, kr := range kTiles {
				packRHS(b, n, kr, jr, panel)
				klen := kr.Len()

				for i := ir.Start; i < iVecEnd; i += microBlockRows {
					po := 0
					for j := jr.Start; j < jVecEnd; j += microBlockCols {
						microKernel4x4(a, k, i, kr.Start, klen,
							panel[po:po+klen*microBlockCols], c, n, j)
						po += klen * microBlockCols
					}
				}

				// Column group narrower than the register block.
				if jVecEnd < jr.End {
					microKernelScalar(a, k, b, n, c, n,
						TileRange{ir.Start, iVecEnd}, TileRange{jVecEnd, jr.End}, kr)
				}
				// Rows left over after the last full micro-block.
				if iVecEnd < ir.End {
					microKernelScalar(a, k, b, n, c, n,
						TileRange{iVecEnd, ir.End}, jr, kr)
				}
			}
		}
	}
	return nil
}
