package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// A Sampler is not safe for concurrent use; every worker task owns its own.
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sampler Sampler) Vec3 {
	u1, u2 := sampler.Get2D()
	z := 1.0 - 2.0*u1 // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * u2
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SampleInUnitDisk generates a random point in the unit disk of the XY plane
// by rejection sampling from the enclosing square.
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for {
		u1, u2 := sampler.Get2D()
		p := NewVec3(2*u1-1, 2*u2-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
