package scene

import (
	"github.com/df07/go-spheretracer/pkg/core"
	"github.com/df07/go-spheretracer/pkg/geometry"
	"github.com/df07/go-spheretracer/pkg/integrator"
	"github.com/df07/go-spheretracer/pkg/material"
	"github.com/df07/go-spheretracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *World
	CameraConfig renderer.CameraConfig
	Background   integrator.Background
}

// Overrides adjusts a preset without editing it
type Overrides struct {
	Camera       renderer.CameraConfig // Non-zero fields replace the preset camera
	GroundAlbedo *core.Vec3            // Replaces the ground sphere's color when set
	Seed         int64                 // Layout seed for presets with random placement
}

// NewCamera builds the scene camera for an image with the given aspect ratio
func (s *Scene) NewCamera(aspectRatio float64) (*renderer.Camera, error) {
	config := s.CameraConfig
	config.AspectRatio = aspectRatio
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return renderer.NewCamera(config), nil
}

// IntegratorConfig returns the default integrator settings with the scene background
func (s *Scene) IntegratorConfig() integrator.Config {
	config := integrator.DefaultConfig()
	config.Background = s.Background
	return config
}

// newScene applies overrides to a preset camera
func newScene(name string, camera renderer.CameraConfig, overrides Overrides) *Scene {
	return &Scene{
		Name:         name,
		World:        NewWorld(),
		CameraConfig: renderer.MergeCameraConfig(camera, overrides.Camera),
		Background:   integrator.DefaultBackground(),
	}
}

// NewGroundSphere creates the large diffuse sphere presets use as ground.
// The preset albedo is used unless overrides carry one.
func NewGroundSphere(center core.Vec3, radius float64, albedo core.Vec3, overrides Overrides) *geometry.Sphere {
	if overrides.GroundAlbedo != nil {
		albedo = *overrides.GroundAlbedo
	}
	return geometry.NewSphere(center, radius, material.NewLambertian(albedo))
}
