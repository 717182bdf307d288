package core

// HitRecord contains information about a ray-object intersection.
// It is only valid for the scatter call that immediately follows the hit.
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Outward surface normal, not flipped toward the ray
	Material Material // Material of the hit object
}

// Shape is implemented by anything a ray can intersect
type Shape interface {
	// Hit returns the nearest intersection strictly inside (tMin, tMax)
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material interface for objects that can scatter rays.
// Returning false means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}
