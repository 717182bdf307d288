package renderer

import (
	"time"

	"github.com/df07/go-spheretracer/pkg/core"
	"github.com/df07/go-spheretracer/pkg/integrator"
)

// TileRenderer renders the pixels of individual tiles using an integrator
type TileRenderer struct {
	world           core.Shape
	camera          *Camera
	integrator      integrator.Integrator
	width, height   int
	samplesPerPixel int
}

// NewTileRenderer creates a tile renderer for a width x height image
func NewTileRenderer(world core.Shape, camera *Camera, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		world:           world,
		camera:          camera,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTile renders every pixel inside the tile bounds into frame.
// Only pixels inside the bounds are written, so tiles may render concurrently.
func (tr *TileRenderer) RenderTile(tile *Tile, frame *Frame) TileStats {
	start := time.Now()
	sampler := core.NewRandomSampler(tile.Random)

	stats := TileStats{}
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			frame.set(x, y, tr.samplePixel(x, y, sampler))
			stats.Pixels++
			stats.Samples += tr.samplesPerPixel
		}
	}

	stats.Elapsed = time.Since(start)
	return stats
}

// samplePixel averages jittered samples for the pixel at column x, row y
// and applies gamma 2.0
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}

	// Image rows run top to bottom, camera t runs bottom to top
	row := tr.height - 1 - y
	for sample := 0; sample < tr.samplesPerPixel; sample++ {
		s := (float64(x) + sampler.Get1D()) / float64(tr.width)
		t := (float64(row) + sampler.Get1D()) / float64(tr.height)

		ray := tr.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.world, sampler))
	}

	colorVec := colorAccum.Multiply(1.0 / float64(tr.samplesPerPixel))
	return colorVec.Sqrt().Clamp(0.0, 1.0)
}
