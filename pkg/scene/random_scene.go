package scene

import (
	"math/rand"

	"github.com/df07/go-spheretracer/pkg/core"
	"github.com/df07/go-spheretracer/pkg/geometry"
	"github.com/df07/go-spheretracer/pkg/material"
	"github.com/df07/go-spheretracer/pkg/renderer"
)

// NewRandomScene creates a field of small random spheres around three large
// ones. The layout depends only on overrides.Seed.
func NewRandomScene(overrides Overrides) *Scene {
	s := newScene("random", renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   3.0 / 2.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}, overrides)

	random := rand.New(rand.NewSource(overrides.Seed))
	s.World.Add(NewGroundSphere(core.NewVec3(0, -1000, 0), 1000, core.NewVec3(0.5, 0.5, 0.5), overrides))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choice := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case choice < 0.8:
				albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64()).
					MultiplyVec(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
				mat = material.NewLambertian(albedo)
			case choice < 0.95:
				albedo := core.NewVec3(0.5*(1+random.Float64()), 0.5*(1+random.Float64()), 0.5*(1+random.Float64()))
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.World.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
