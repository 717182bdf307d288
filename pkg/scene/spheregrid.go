package scene

import (
	"math"

	"github.com/df07/go-spheretracer/pkg/core"
	"github.com/df07/go-spheretracer/pkg/geometry"
	"github.com/df07/go-spheretracer/pkg/material"
	"github.com/df07/go-spheretracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS
	lCone := l + 0.3963377774*a + 0.2158037573*b
	mCone := l - 0.1055613458*a - 0.0638541728*b
	sCone := l - 0.0894841775*a - 1.2914855480*b

	lCone = lCone * lCone * lCone
	mCone = mCone * mCone * mCone
	sCone = sCone * sCone * sCone

	// LMS -> linear RGB
	rgb := core.NewVec3(
		+4.0767416621*lCone-3.3077115913*mCone+0.2309699292*sCone,
		-1.2684380046*lCone+2.6097574011*mCone-0.3413193965*sCone,
		-0.0041960863*lCone-0.7034186147*mCone+1.7076147010*sCone,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a grid of metal spheres whose hue varies along
// x and whose chroma varies along z
func NewSphereGridScene(overrides Overrides) *Scene {
	s := newScene("sphere-grid", renderer.CameraConfig{
		Center:        core.NewVec3(4.5, 6, 18),    // Position camera farther back and slightly lower
		LookAt:        core.NewVec3(4.5, 0.8, 4.5), // Look at center of grid, slightly lower
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.02,
		FocusDistance: 0.0,
	}, overrides)

	s.World.Add(NewGroundSphere(core.NewVec3(4.5, -1000, 4.5), 1000, core.NewVec3(0.5, 0.5, 0.5), overrides))

	gridSize := 10
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Min(0.35, spacing*0.35)

	baseLightness := 0.65
	minChroma := 0.05 // Near gray
	maxChroma := 0.25 // Vivid

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5 // Center around x=4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5 // Center around z=4.5
			position := core.NewVec3(x, sphereRadius, z)   // Resting on the ground

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)
			s.World.Add(geometry.NewSphere(position, sphereRadius, metal))
		}
	}

	return s
}
