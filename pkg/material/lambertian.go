package material

import (
	"github.com/df07/go-spheretracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Fraction of light reflected per channel
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The ray is aimed at a random point on the unit sphere tangent to the
// surface at the hit point, which gives a cosine-weighted distribution.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.SampleOnUnitSphere(sampler))
	scatterDirection := target.Subtract(hit.Point)

	// Catch the sample that exactly cancels the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
