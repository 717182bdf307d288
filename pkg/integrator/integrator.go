package integrator

import (
	"github.com/df07/go-spheretracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray from world.
	// The sampler must not be shared with other goroutines.
	RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3
}

// Background is a vertical sky gradient seen by rays that escape the scene
type Background struct {
	Bottom core.Vec3 // Color looking straight down
	Top    core.Vec3 // Color looking straight up
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for a ray direction
func (b Background) Color(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Mix(b.Bottom, b.Top, t)
}

// Config contains the integrator settings
type Config struct {
	MaxDepth   int        // Maximum number of scatter events per path
	TMin       float64    // Minimum hit distance, avoids self-intersection acne
	Background Background // Sky seen by escaping rays
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   50,
		TMin:       0.001,
		Background: DefaultBackground(),
	}
}
