package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-spheretracer/pkg/core"
)

// Frame is a rendered image in linear row-major order, top row first.
// Pixel values are gamma corrected and clamped to [0,1].
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel at column x, row y (row 0 is the top of the image)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// set is only called by the tile owning (x, y)
func (f *Frame) set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// ToRGBA converts the frame into an 8-bit image
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, toRGBA(f.At(x, y)))
		}
	}
	return img
}

// AverageLuminance returns the mean Rec. 709 luminance of the frame
func (f *Frame) AverageLuminance() float64 {
	if len(f.Pixels) == 0 {
		return 0
	}

	var total float64
	for _, p := range f.Pixels {
		total += 0.2126*p.X + 0.7152*p.Y + 0.0722*p.Z
	}
	return total / float64(len(f.Pixels))
}

func toRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255.99 * c.X),
		G: uint8(255.99 * c.Y),
		B: uint8(255.99 * c.Z),
		A: 255,
	}
}
