package renderer

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-spheretracer/pkg/core"
)

func pinholeConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
	}
}

func TestCamera_PinholeRays(t *testing.T) {
	camera := NewCamera(pinholeConfig())

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"top edge", 0.5, 1, core.NewVec3(0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A pinhole camera must not need a sampler
			ray := camera.GetRay(tt.s, tt.t, nil)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected origin at camera center, got %v", ray.Origin)
			}
			if !ray.Direction.ApproxEquals(tt.direction, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_OrthonormalBasis(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(3, 2, 1),
		LookAt:      core.NewVec3(-1, 0.5, -4),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
	}
	camera := NewCamera(config)

	for name, v := range map[string]core.Vec3{"u": camera.u, "v": camera.v, "w": camera.w} {
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Errorf("Expected %s to be unit length, got %f", name, v.Length())
		}
	}
	if math.Abs(camera.u.Dot(camera.v)) > 1e-12 ||
		math.Abs(camera.v.Dot(camera.w)) > 1e-12 ||
		math.Abs(camera.u.Dot(camera.w)) > 1e-12 {
		t.Errorf("Expected orthogonal basis, got u=%v v=%v w=%v", camera.u, camera.v, camera.w)
	}

	expectedForward := config.LookAt.Subtract(config.Center).Normalize()
	if !camera.Forward().ApproxEquals(expectedForward, 1e-12) {
		t.Errorf("Expected forward %v, got %v", expectedForward, camera.Forward())
	}

	// Image-plane up should lean towards world up
	if camera.v.Y <= 0 {
		t.Errorf("Expected camera up to have positive Y, got %v", camera.v)
	}
}

func TestCamera_AutoFocusDistance(t *testing.T) {
	config := pinholeConfig()
	config.LookAt = core.NewVec3(0, 0, -3)
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5, nil)
	if !ray.Direction.ApproxEquals(core.NewVec3(0, 0, -3), 1e-9) {
		t.Errorf("Expected image plane at look-at distance, got direction %v", ray.Direction)
	}

	// The camera keeps the configuration it was given, not the resolved distance
	if got := camera.Config(); got != config {
		t.Errorf("Expected config %+v, got %+v", config, got)
	}
}

func TestCamera_DepthOfField(t *testing.T) {
	config := pinholeConfig()
	config.Aperture = 0.5
	config.FocusDistance = 2.0
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	focusPoint := core.NewVec3(0, 0, -2)
	sawOffset := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		// Lens samples stay on the lens disk, perpendicular to the view axis
		if ray.Origin.Z != 0 {
			t.Fatalf("Expected lens sample in the z=0 plane, got %v", ray.Origin)
		}
		if ray.Origin.Length() >= 0.25 {
			t.Fatalf("Expected lens offset within radius 0.25, got %f", ray.Origin.Length())
		}
		if ray.Origin.Length() > 1e-6 {
			sawOffset = true
		}

		// Every ray still passes through the focus point
		if got := ray.At(1); !got.ApproxEquals(focusPoint, 1e-9) {
			t.Fatalf("Expected ray to reach focus point %v, got %v", focusPoint, got)
		}
	}

	if !sawOffset {
		t.Error("Expected aperture to jitter ray origins")
	}
}

func TestCameraConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *CameraConfig)
		valid  bool
	}{
		{"pinhole", func(c *CameraConfig) {}, true},
		{"with lens", func(c *CameraConfig) { c.Aperture = 0.1; c.FocusDistance = 3 }, true},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }, false},
		{"straight angle fov", func(c *CameraConfig) { c.VFov = 180 }, false},
		{"zero aspect", func(c *CameraConfig) { c.AspectRatio = 0 }, false},
		{"negative aperture", func(c *CameraConfig) { c.Aperture = -1 }, false},
		{"negative focus", func(c *CameraConfig) { c.FocusDistance = -1 }, false},
		{"look at self", func(c *CameraConfig) { c.LookAt = c.Center }, false},
		{"up along view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := pinholeConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := pinholeConfig()
	base.Aperture = 0.1

	merged := MergeCameraConfig(base, CameraConfig{
		VFov:        30,
		AspectRatio: 1.5,
	})

	if merged.VFov != 30 || merged.AspectRatio != 1.5 {
		t.Errorf("Expected overrides to apply, got %+v", merged)
	}
	if merged.Center != base.Center || merged.LookAt != base.LookAt || merged.Up != base.Up {
		t.Errorf("Expected unset vectors to keep base values, got %+v", merged)
	}
	if merged.Aperture != 0.1 {
		t.Errorf("Expected aperture 0.1 to be kept, got %f", merged.Aperture)
	}
}
