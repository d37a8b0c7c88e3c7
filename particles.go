package atperf

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Particle is the Array-of-Structures layout: exactly 64 bytes, one full
// cache line per particle. The hot position update touches only the first
// six floats (24 bytes), so 40 of every 64 bytes fetched are wasted.
type Particle struct {
	X, Y, Z                  float32 // position, used in hot loop
	VX, VY, VZ               float32 // velocity, used in hot loop
	Mass, Charge, Temp       float32 // cold properties
	Pressure, Energy, Dens   float32
	SpinX, SpinY, SpinZ, Pad float32
}

// ParticlesSoA is the Structure-of-Arrays layout. The position update
// touches only the six hot arrays, and every byte of every fetched cache
// line is useful data. The cold properties live in separate allocations
// and never pollute the hot lines.
type ParticlesSoA struct {
	X, Y, Z    []float32
	VX, VY, VZ []float32

	Mass, Charge, Temp     []float32
	Pressure, Energy, Dens []float32
	SpinX, SpinY, SpinZ    []float32
}

// NewParticlesSoA allocates all component arrays for n particles.
func NewParticlesSoA(n int) *ParticlesSoA {
	return &ParticlesSoA{
		X: make([]float32, n), Y: make([]float32, n), Z: make([]float32, n),
		VX: make([]float32, n), VY: make([]float32, n), VZ: make([]float32, n),
		Mass: make([]float32, n), Charge: make([]float32, n), Temp: make([]float32, n),
		Pressure: make([]float32, n), Energy: make([]float32, n), Dens: make([]float32, n),
		SpinX: make([]float32, n), SpinY: make([]float32, n), SpinZ: make([]float32, n),
	}
}

// UpdatePositionsAoS advances positions by velocity*dt over the AoS layout.
func UpdatePositionsAoS(p []Particle, dt float32) {
	for i := range p {
		p[i].X += p[i].VX * dt
		p[i].Y += p[i].VY * dt
		p[i].Z += p[i].VZ * dt
	}
}

// UpdatePositionsSoA advances positions by velocity*dt over the SoA layout,
// one vectorized triad per component array.
func UpdatePositionsSoA(p *ParticlesSoA, dt float32) {
	axpyInPlace(p.X, p.VX, dt)
	axpyInPlace(p.Y, p.VY, dt)
	axpyInPlace(p.Z, p.VZ, dt)
}

// axpyInPlace computes dst[i] += src[i] * alpha at vector width.
func axpyInPlace(dst, src []float32, alpha float32) {
	lanes := hwy.MaxLanes[float32]()
	vAlpha := hwy.Set(alpha)
	n := len(dst)
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		v := hwy.MulAdd(vAlpha, hwy.Load(src[i:]), hwy.Load(dst[i:]))
		hwy.Store(v, dst[i:])
	}
	for ; i < n; i++ {
		dst[i] += src[i] * alpha
	}
}

// PositionChecksumAoS sums x+y+z over all particles. The AoS and SoA
// variants must produce matching checksums for the same inputs.
func PositionChecksumAoS(p []Particle) float64 {
	var sum float64
	for i := range p {
		sum += float64(p[i].X) + float64(p[i].Y) + float64(p[i].Z)
	}
	return sum
}

// PositionChecksumSoA sums x+y+z over all particles.
func PositionChecksumSoA(p *ParticlesSoA) float64 {
	var sum float64
	for i := range p.X {
		sum += float64(p.X[i]) + float64(p.Y[i]) + float64(p.Z[i])
	}
	return sum
}
