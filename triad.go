package atperf

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Triad computes the STREAM-style update out[i] = a[i] + alpha*b[i] over
// full vector widths with a scalar tail. Three streams, two reads and one
// write per element: the kernel is purely bandwidth bound.
//
// out, a, and b must not overlap in memory and must all have len(out)
// elements. Allocating the buffers on a 64-byte boundary helps throughput
// but is never required for correctness.
func Triad(out, a, b []float32, alpha float32) error {
	const op = "Triad"
	if len(a) < len(out) || len(b) < len(out) {
		return NewInvalidArgError(op, "input buffers shorter than output")
	}
	lanes := hwy.MaxLanes[float32]()
	vAlpha := hwy.Set(alpha)
	n := len(out)
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		v := hwy.MulAdd(vAlpha, hwy.Load(b[i:]), hwy.Load(a[i:]))
		hwy.Store(v, out[i:])
	}
	for ; i < n; i++ {
		out[i] = a[i] + alpha*b[i]
	}
	return nil
}
