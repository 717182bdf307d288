package integrator

import (
	"math"

	"github.com/df07/go-spheretracer/pkg/core"
)

// PathTracingIntegrator implements recursive unidirectional path tracing.
// Each call traces a single path; variance drops only by averaging samples.
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, sampler, 0)
}

// rayColor follows the path one bounce at a time. Once the bounce limit is
// spent the ray is treated as if it escaped to the sky.
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Vec3 {
	if depth >= pt.config.MaxDepth {
		return pt.config.Background.Color(ray)
	}

	hit, isHit := world.Hit(ray, pt.config.TMin, math.Inf(1))
	if !isHit {
		return pt.config.Background.Color(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColor(scatter.Scattered, world, sampler, depth+1))
}
