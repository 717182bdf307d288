package scene

import (
	"github.com/df07/go-spheretracer/pkg/core"
	"github.com/df07/go-spheretracer/pkg/geometry"
	"github.com/df07/go-spheretracer/pkg/material"
	"github.com/df07/go-spheretracer/pkg/renderer"
)

// NewHollowGlassScene creates metal and glass spheres around a hollow glass
// shell with a blue sphere inside, viewed through a shallow depth of field
func NewHollowGlassScene(overrides Overrides) *Scene {
	s := newScene("hollow-glass", renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Focus on the look-at point
	}, overrides)

	groundAlbedo := core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6)
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)
	clearGlass := material.NewClearDielectric(1.5)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, clearGlass)

	// A negative radius flips the normals, turning the inner sphere into
	// the inside surface of the shell
	hollowGlassOuter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass)
	hollowGlassInner := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, materialGlass)
	hollowGlassCenter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	ground := NewGroundSphere(core.NewVec3(0, -1000, -1), 1000, groundAlbedo, overrides)

	s.World.Add(sphereCenter, sphereLeft, sphereRight, ground,
		solidGlassSphere, hollowGlassOuter, hollowGlassInner, hollowGlassCenter)

	return s
}
