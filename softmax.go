package atperf

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// SoftmaxScale computes out[i] = softmax(in)[i] * scale[i].
//
// The work is split into three single-responsibility passes, each taking
// at most one writable slice, mirroring the narrow-aliasing-surface
// decomposition of the tutorial's aligned variant: max (stability), exp
// with running sum, then normalise-and-scale. The exp pass stays scalar
// (math.Exp does not vectorize); the normalise pass runs at vector width.
//
// out, in, and scale must not overlap in memory and must all have
// len(out) elements.
func SoftmaxScale(out, in, scale []float32) error {
	const op = "SoftmaxScale"
	if len(out) == 0 {
		return NewInvalidArgError(op, "empty output buffer")
	}
	if len(in) < len(out) || len(scale) < len(out) {
		return NewInvalidArgError(op, "input buffers shorter than output")
	}
	n := len(out)
	maxVal := passMax(in[:n])
	sum := passExp(out, in[:n], maxVal)
	passNormalize(out, scale[:n], 1.0/sum)
	return nil
}

func passMax(in []float32) float32 {
	m := in[0]
	for _, v := range in[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// passExp writes out[i] = exp(in[i] - maxVal) and returns the sum.
func passExp(out, in []float32, maxVal float32) float32 {
	var sum float32
	for i, v := range in {
		out[i] = float32(math.Exp(float64(v - maxVal)))
		sum += out[i]
	}
	return sum
}

// passNormalize computes out[i] *= invSum * scale[i] at vector width.
func passNormalize(out, scale []float32, invSum float32) {
	lanes := hwy.MaxLanes[float32]()
	vInv := hwy.Set(invSum)
	n := len(out)
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		v := hwy.Mul(hwy.Load(out[i:]), hwy.Mul(vInv, hwy.Load(scale[i:])))
		hwy.Store(v, out[i:])
	}
	for ; i < n; i++ {
		out[i] *= invSum * scale[i]
	}
}
