package material

import (
	"math"

	"github.com/df07/go-spheretracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract.
// The choice between the two is made per ray, weighted by Schlick's Fresnel estimate.
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	unitDirection := rayIn.Direction.Normalize()
	outwardNormal, niOverNt, exiting := orientNormal(rayIn, hit, d.RefractiveIndex)

	var cosine float64
	if exiting {
		// Exiting: cosine of the transmitted angle on the outside
		c := unitDirection.Dot(hit.Normal)
		cosine = math.Sqrt(math.Max(0, 1.0-d.RefractiveIndex*d.RefractiveIndex*(1.0-c*c)))
	} else {
		cosine = -unitDirection.Dot(hit.Normal)
	}

	direction := Reflect(unitDirection, hit.Normal)
	if refracted, ok := Refract(unitDirection, outwardNormal, niOverNt); ok {
		if sampler.Get1D() > Reflectance(cosine, d.RefractiveIndex) {
			direction = refracted
		}
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// ClearDielectric is a dielectric without Fresnel reflection: it refracts
// whenever Snell's law allows it and reflects only on total internal
// reflection. It never consults the sampler.
type ClearDielectric struct {
	RefractiveIndex float64
}

// NewClearDielectric creates a new Fresnel-free dielectric material
func NewClearDielectric(refractiveIndex float64) *ClearDielectric {
	return &ClearDielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface
func (d *ClearDielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	unitDirection := rayIn.Direction.Normalize()
	outwardNormal, niOverNt, _ := orientNormal(rayIn, hit, d.RefractiveIndex)

	direction, ok := Refract(unitDirection, outwardNormal, niOverNt)
	if !ok {
		direction = Reflect(unitDirection, hit.Normal)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
	}, true
}

// orientNormal returns the normal facing the incoming ray and the ratio of
// refractive indices across the boundary. A ray travelling along the
// outward normal is leaving the medium.
func orientNormal(rayIn core.Ray, hit core.HitRecord, refractiveIndex float64) (core.Vec3, float64, bool) {
	if rayIn.Direction.Dot(hit.Normal) > 0 {
		return hit.Normal.Negate(), refractiveIndex, true
	}
	return hit.Normal, 1.0 / refractiveIndex, false
}

// Refract bends v through a surface with normal n using Snell's law.
// It returns false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}

	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
