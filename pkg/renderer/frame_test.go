package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-spheretracer/pkg/core"
)

func TestFrame_ToRGBA(t *testing.T) {
	frame := NewFrame(2, 2)
	frame.set(0, 0, core.NewVec3(1, 0, 0))
	frame.set(1, 0, core.NewVec3(0, 1, 0))
	frame.set(0, 1, core.NewVec3(0.5, 0.5, 0.5))
	frame.set(1, 1, core.NewVec3(2, -1, 0)) // Out of range values clamp

	img := frame.ToRGBA()

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{1, 0, color.RGBA{0, 255, 0, 255}},
		{0, 1, color.RGBA{127, 127, 127, 255}},
		{1, 1, color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.expected {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestFrame_RowMajor(t *testing.T) {
	frame := NewFrame(3, 2)
	frame.set(2, 1, core.NewVec3(1, 1, 1))

	if frame.Pixels[5] != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected pixel (2,1) at index 5, got %v", frame.Pixels)
	}
	if frame.At(2, 1) != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected At(2,1) to read back the pixel")
	}
}

func TestFrame_AverageLuminance(t *testing.T) {
	// Red, green, blue and black average to (0.2126 + 0.7152 + 0.0722) / 4
	frame := NewFrame(2, 2)
	frame.set(0, 0, core.NewVec3(1, 0, 0))
	frame.set(1, 0, core.NewVec3(0, 1, 0))
	frame.set(0, 1, core.NewVec3(0, 0, 1))

	avgLum := frame.AverageLuminance()
	if math.Abs(avgLum-0.25) > 1e-4 {
		t.Errorf("Expected average luminance 0.25, got %f", avgLum)
	}

	white := NewFrame(1, 1)
	white.set(0, 0, core.NewVec3(1, 1, 1))
	if math.Abs(white.AverageLuminance()-1.0) > 1e-4 {
		t.Errorf("Expected white luminance 1.0, got %f", white.AverageLuminance())
	}
}
