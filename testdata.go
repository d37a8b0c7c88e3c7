package atperf

// Deterministic input generators. The modulo fills reproduce the tutorial
// harness initialisation so check values (C[0], C[M*N-1]) are comparable
// across variants and across runs.

// FillModA writes the left-operand pattern a[i] = (i mod 97) * 0.01.
func FillModA(a []float32) {
	for i := range a {
		a[i] = float32(i%97) * 0.01
	}
}

// FillModB writes the right-operand pattern b[i] = (i mod 89) * 0.01.
func FillModB(b []float32) {
	for i := range b {
		b[i] = float32(i%89) * 0.01
	}
}

// GenerateFloat32 generates deterministic float32 test data using a linear
// congruential generator, so tests reproduce across runs without seeding
// math/rand globally.
func GenerateFloat32(size int, seed uint64) []float32 {
	data := make([]float32, size)
	rng := seed
	for i := range data {
		rng = rng*1103515245 + 12345 // LCG parameters from Numerical Recipes
		data[i] = float32(rng%(1<<32)) / float32(1<<32)
	}
	return data
}

// GenerateFloat32Range generates deterministic float32 data in [min, max).
func GenerateFloat32Range(size int, seed uint64, min, max float32) []float32 {
	data := GenerateFloat32(size, seed)
	scale := max - min
	for i := range data {
		data[i] = data[i]*scale + min
	}
	return data
}

// Checksum returns the float64 sum of a buffer, the cross-variant
// validation value printed by the benchmark drivers.
func Checksum(data []float32) float64 {
	var sum float64
	for _, v := range data {
		sum += float64(v)
	}
	return sum
}
