package scene

import (
	"github.com/df07/go-spheretracer/pkg/core"
	"github.com/df07/go-spheretracer/pkg/geometry"
	"github.com/df07/go-spheretracer/pkg/material"
	"github.com/df07/go-spheretracer/pkg/renderer"
)

// NewThreeSpheresScene creates a diffuse, a glass and a metal sphere in a
// row on a large ground sphere
func NewThreeSpheresScene(overrides Overrides) *Scene {
	s := newScene("three-spheres", renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	}, overrides)

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1.5), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1.5), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1.5), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)),
		NewGroundSphere(core.NewVec3(0, -100.5, -1.5), 100, core.NewVec3(0.8, 0.8, 0.0), overrides),
	)

	return s
}

// NewSingleSphereScene creates one diffuse sphere straight ahead of the
// camera with nothing else in view
func NewSingleSphereScene(overrides Overrides) *Scene {
	s := newScene("single", renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 1.0,
	}, overrides)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	return s
}
