// Package atperf reference implementations for verification
package atperf

import (
	"math"
)

// Reference contains simple, obviously-correct implementations of every
// kernel in the package. Tests verify the optimized paths against these.
type Reference struct{}

// MatMul computes C = A * B with the plain triple loop: unblocked,
// unpacked, unvectorized. The canonical result all multiply variants are
// compared against.
func (Reference) MatMul(a, b, c []float32, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// Triad computes out[i] = a[i] + alpha*b[i].
func (Reference) Triad(out, a, b []float32, alpha float32) {
	for i := range out {
		out[i] = a[i] + alpha*b[i]
	}
}

// SoftmaxScale computes out[i] = softmax(in)[i] * scale[i] with the
// max-subtraction trick for numerical stability.
func (Reference) SoftmaxScale(out, in, scale []float32) {
	maxVal := in[0]
	for _, v := range in[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	var sum float32
	for i, v := range in {
		out[i] = float32(math.Exp(float64(v - maxVal)))
		sum += out[i]
	}
	invSum := 1.0 / sum
	for i := range out {
		out[i] *= invSum * scale[i]
	}
}
