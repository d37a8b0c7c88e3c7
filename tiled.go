package atperf

// MultiplyTiled1D computes C = A * B with only the reduction dimension
// blocked (k-strips). Within a strip the ikj order gives stride-1 access
// on B and C, and the strip of B stays resident across all output rows.
// For tile=64 and n=4096 the strip is 1MB: it fits in L2 but not L1d, so
// L2 misses drop while L1 misses stay elevated.
//
// tile must be positive. Same shape and aliasing preconditions as Multiply.
func MultiplyTiled1D(a, b, c []float32, m, k, n, tile int) error {
	const op = "MultiplyTiled1D"
	if err := validateTiled(op, a, b, c, m, k, n, tile); err != nil {
		return err
	}
	zeroFloat32(c[:m*n])
	for _, kr := range Tiles(k, tile) {
		for i := 0; i < m; i++ {
			for p := kr.Start; p < kr.End; p++ {
				aik := a[i*k+p]
				for j := 0; j < n; j++ {
					c[i*n+j] += aik * b[p*n+j]
				}
			}
		}
	}
	return nil
}

// MultiplyTiled computes C = A * B with all three loop dimensions blocked
// so the A, B, and C sub-blocks are reused while cache resident. With
// TiledBlockSize=128 three tiles occupy 192KB: resident in L2, not L1d —
// the workload shifts from LLC-miss-dominated to L1-miss-dominated. The
// inner kernel is the scalar ikj update; Multiply adds packing and the
// register-blocked micro-kernel on top of this blocking scheme.
//
// tile must be positive. Same shape and aliasing preconditions as Multiply.
func MultiplyTiled(a, b, c []float32, m, k, n, tile int) error {
	const op = "MultiplyTiled"
	if err := validateTiled(op, a, b, c, m, k, n, tile); err != nil {
		return err
	}
	zeroFloat32(c[:m*n])
	jTiles := Tiles(n, tile)
	kTiles := Tiles(k, tile)
	for _, ir := range Tiles(m, tile) {
		for _, jr := range jTiles {
			for _, kr := range kTiles {
				for i := ir.Start; i < ir.End; i++ {
					for p := kr.Start; p < kr.End; p++ {
						aik := a[i*k+p]
						for j := jr.Start; j < jr.End; j++ {
							c[i*n+j] += aik * b[p*n+j]
						}
					}
				}
			}
		}
	}
	return nil
}

func validateTiled(op string, a, b, c []float32, m, k, n, tile int) error {
	if err := validateOperands(op, a, b, c, m, k, n); err != nil {
		return err
	}
	if tile <= 0 {
		return NewInvalidArgError(op, "tile size must be positive")
	}
	return nil
}
