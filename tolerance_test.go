package atperf

import (
	"testing"
)

func TestFloat32NearEqual(t *testing.T) {
	tol := DefaultTolerance()

	tests := []struct {
		name string
		a, b float32
		want bool
	}{
		{"exact", 1.5, 1.5, true},
		{"signed zero", 0, float32(0) * -1, true},
		{"within abs tol", 1e-7, 2e-7, true},
		{"within rel tol", 1000, 1000.001, true},
		{"outside rel tol", 1000, 1001, false},
		{"far apart", 1, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Float32NearEqual(tc.a, tc.b, tol); got != tc.want {
				t.Errorf("Float32NearEqual(%g, %g) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVerifyFloat32Array(t *testing.T) {
	tol := DefaultTolerance()

	expected := []float32{1, 2, 3, 4}
	actual := []float32{1, 2, 3, 4}
	if r := VerifyFloat32Array(expected, actual, tol); r.NumErrors != 0 {
		t.Errorf("identical arrays reported errors: %v", r)
	}

	actual = []float32{1, 2.5, 3, 4.5}
	r := VerifyFloat32Array(expected, actual, tol)
	if r.NumErrors != 2 {
		t.Errorf("NumErrors = %d, want 2", r.NumErrors)
	}
	if r.FirstError != 1 {
		t.Errorf("FirstError = %d, want 1", r.FirstError)
	}
	if r.MaxAbsError != 0.5 {
		t.Errorf("MaxAbsError = %g, want 0.5", r.MaxAbsError)
	}

	if r := VerifyFloat32Array(expected, actual[:2], tol); r.NumErrors != len(expected) {
		t.Errorf("length mismatch not flagged: %v", r)
	}
}
