package atperf

// MultiplyNaive computes C = A * B with the textbook ijk loop nest. The
// inner loop reads B[k*n+j] with stride n, jumping a full row per step;
// for large n each stride crosses cache lines and the whole of B streams
// through the cache once per output row. It exists as the baseline of the
// optimization ladder, not for use.
//
// Same shape and aliasing preconditions as Multiply.
func MultiplyNaive(a, b, c []float32, m, k, n int) error {
	if err := validateOperands("MultiplyNaive", a, b, c, m, k, n); err != nil {
		return err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j] // B access strides by n
			}
			c[i*n+j] = sum
		}
	}
	return nil
}
