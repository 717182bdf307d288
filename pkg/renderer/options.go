package renderer

import (
	"fmt"
	"runtime"
)

// Options controls the image size and how work is spread across workers
type Options struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Jittered camera rays averaged per pixel
	TileSize        int   // Edge length of a square work unit in pixels
	NumWorkers      int   // Parallel workers, 0 = use CPU count
	Seed            int64 // Base seed, combined with the tile ID per tile
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:           300,
		Height:          150,
		SamplesPerPixel: 100,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate checks that a render with these options can run
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidOptions, o.SamplesPerPixel)
	}
	if o.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidOptions, o.TileSize)
	}
	if o.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count %d is negative", ErrInvalidOptions, o.NumWorkers)
	}
	return nil
}

// AspectRatio returns width over height
func (o Options) AspectRatio() float64 {
	return float64(o.Width) / float64(o.Height)
}

// workerCount resolves the auto worker setting
func (o Options) workerCount() int {
	if o.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return o.NumWorkers
}
