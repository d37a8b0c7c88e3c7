package atperf

import (
	"fmt"
	"math"
	"testing"
)

func TestMultiplyMatchesReference(t *testing.T) {
	sizes := []struct {
		m, k, n int
		tile    int
	}{
		{16, 16, 16, 8},
		{64, 64, 64, DefaultTileSize},
		{128, 128, 128, DefaultTileSize},
		{127, 129, 131, DefaultTileSize}, // nothing divides evenly
		{6, 10, 7, 4},                    // remainders in every dimension
		{100, 40, 60, 16},
		{1, 1, 1, 4}, // degenerate: scalar fallback only
		{1, 64, 64, DefaultTileSize},
		{64, 1, 64, DefaultTileSize},
		{64, 64, 1, DefaultTileSize},
		{5, 5, 5, 4},
	}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%dx%d_tile%d", size.m, size.k, size.n, size.tile), func(t *testing.T) {
			a := GenerateFloat32Range(size.m*size.k, 1, -1, 1)
			b := GenerateFloat32Range(size.k*size.n, 2, -1, 1)
			c := make([]float32, size.m*size.n)
			cRef := make([]float32, size.m*size.n)

			if err := Multiply(a, b, c, size.m, size.k, size.n, size.tile); err != nil {
				t.Fatalf("Multiply failed: %v", err)
			}
			Reference{}.MatMul(a, b, cRef, size.m, size.k, size.n)

			result := VerifyFloat32Array(cRef, c, MatMulTolerance())
			if result.NumErrors > 0 {
				t.Errorf("Multiply differs from reference: %v", result)
			}
		})
	}
}

// Fixed summation order: two runs over identical inputs must agree bit
// for bit, not just within tolerance.
func TestMultiplyIdempotent(t *testing.T) {
	const m, k, n, tile = 96, 80, 112, 32
	a := GenerateFloat32Range(m*k, 3, -1, 1)
	b := GenerateFloat32Range(k*n, 4, -1, 1)
	c1 := make([]float32, m*n)
	c2 := make([]float32, m*n)

	if err := Multiply(a, b, c1, m, k, n, tile); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := Multiply(a, b, c2, m, k, n, tile); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	for i := range c1 {
		if math.Float32bits(c1[i]) != math.Float32bits(c2[i]) {
			t.Fatalf("output differs at %d: %x vs %x", i,
				math.Float32bits(c1[i]), math.Float32bits(c2[i]))
		}
	}
}

// Identity times B must reproduce B exactly: the accumulation only ever
// adds 0*x or 1*b terms, neither of which rounds.
func TestMultiplyIdentity(t *testing.T) {
	const dim = 4
	a := make([]float32, dim*dim)
	b := make([]float32, dim*dim)
	c := make([]float32, dim*dim)
	for i := 0; i < dim; i++ {
		a[i*dim+i] = 1
	}
	for i := range b {
		b[i] = float32(i)
	}

	if err := Multiply(a, b, c, dim, dim, dim, 4); err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	for i := range b {
		if c[i] != b[i] {
			t.Errorf("c[%d] = %g, want exactly %g", i, c[i], b[i])
		}
	}
}

// The tutorial harness scenario: 8x16 * 16x8 with the modulo fills, spot
// checking the first and last output elements against the triple loop.
func TestMultiplyTutorialScenario(t *testing.T) {
	const m, k, n = 8, 16, 8
	a := make([]float32, m*k)
	b := make([]float32, k*n)
	for i := range a {
		a[i] = float32((i)%97) * 0.01
	}
	for i := range b {
		b[i] = float32((i)%89) * 0.01
	}
	c := make([]float32, m*n)
	cRef := make([]float32, m*n)

	if err := Multiply(a, b, c, m, k, n, 8); err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	Reference{}.MatMul(a, b, cRef, m, k, n)

	tol := MatMulTolerance()
	if !Float32NearEqual(c[0], cRef[0], tol) {
		t.Errorf("C[0] = %g, want %g", c[0], cRef[0])
	}
	if !Float32NearEqual(c[m*n-1], cRef[m*n-1], tol) {
		t.Errorf("C[M*N-1] = %g, want %g", c[m*n-1], cRef[m*n-1])
	}
}

func TestMultiplyValidation(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	c := make([]float32, 16)

	tests := []struct {
		name string
		call func() error
	}{
		{"zero m", func() error { return Multiply(a, b, c, 0, 4, 4, 4) }},
		{"negative k", func() error { return Multiply(a, b, c, 4, -1, 4, 4) }},
		{"nil buffer", func() error { return Multiply(nil, b, c, 4, 4, 4, 4) }},
		{"short A", func() error { return Multiply(a[:8], b, c, 4, 4, 4, 4) }},
		{"short B", func() error { return Multiply(a, b[:3], c, 4, 4, 4, 4) }},
		{"short C", func() error { return Multiply(a, b, c[:1], 4, 4, 4, 4) }},
		{"zero tile", func() error { return Multiply(a, b, c, 4, 4, 4, 0) }},
		{"tile not multiple of 4", func() error { return Multiply(a, b, c, 4, 4, 4, 6) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !IsInvalidArgError(err) {
				t.Errorf("want InvalidArgument error, got %v", err)
			}
		})
	}

	// The output buffer must be untouched after a rejected call.
	c[0] = 42
	if err := Multiply(a, b, c, 4, 4, 4, 6); err == nil {
		t.Fatal("expected an error")
	}
	if c[0] != 42 {
		t.Error("output modified despite failed validation")
	}
}

// Larger tile than the problem, and tile equal to the problem.
func TestMultiplyTileClamping(t *testing.T) {
	const m, k, n = 12, 12, 12
	a := GenerateFloat32Range(m*k, 9, -1, 1)
	b := GenerateFloat32Range(k*n, 10, -1, 1)
	cRef := make([]float32, m*n)
	Reference{}.MatMul(a, b, cRef, m, k, n)

	for _, tile := range []int{4, 12, 64, 256} {
		c := make([]float32, m*n)
		if err := Multiply(a, b, c, m, k, n, tile); err != nil {
			t.Fatalf("tile=%d: %v", tile, err)
		}
		result := VerifyFloat32Array(cRef, c, MatMulTolerance())
		if result.NumErrors > 0 {
			t.Errorf("tile=%d: %v", tile, result)
		}
	}
}
