package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-spheretracer/pkg/core"
	"github.com/df07/go-spheretracer/pkg/integrator"
	"github.com/df07/go-spheretracer/pkg/log"
)

// Raytracer drives a full render: it splits the image into tiles, hands
// them to a worker pool and assembles the frame
type Raytracer struct {
	world      core.Shape
	camera     *Camera
	integrator integrator.Integrator
	options    Options
	logger     log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world core.Shape, camera *Camera, integratorInst integrator.Integrator, options Options) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		options:    options,
		logger:     log.New("renderer"),
	}
}

// SetLogger replaces the default renderer logger
func (rt *Raytracer) SetLogger(logger log.Logger) {
	rt.logger = logger
}

// Options returns the render options
func (rt *Raytracer) Options() Options {
	return rt.options
}

// Render renders the whole frame. Output depends only on the scene and the
// options, never on the worker count or scheduling. If ctx is cancelled the
// render stops between tiles and returns ErrInterrupted.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	if err := rt.options.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	opts := rt.options
	numWorkers := opts.workerCount()

	frame := NewFrame(opts.Width, opts.Height)
	tiles := NewTileGrid(opts.Width, opts.Height, opts.TileSize, opts.Seed)
	tileRenderer := NewTileRenderer(rt.world, rt.camera, rt.integrator, opts.Width, opts.Height, opts.SamplesPerPixel)
	pool := NewWorkerPool(ctx, tileRenderer, frame, numWorkers, len(tiles))

	rt.logger.Infof("rendering %dx%d at %d spp: %d tiles on %d workers",
		opts.Width, opts.Height, opts.SamplesPerPixel, len(tiles), pool.NumWorkers())

	pool.Start()
	defer pool.Stop()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	// Every task reports exactly once, rendered or skipped
	stats := newRenderStats(numWorkers, len(tiles))
	var renderErr error
	completed := 0
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			return nil, stats, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}

		stats.addTile(result.WorkerID, result.Stats)
		completed++
		rt.logger.Debugf("tile %d done by worker %d (%d/%d) in %v",
			result.TaskID, result.WorkerID, completed, len(tiles), result.Stats.Elapsed)
	}
	stats.finalize(time.Since(start))

	if renderErr != nil {
		rt.logger.Warningf("render interrupted after %d/%d tiles", completed, len(tiles))
		return nil, stats, fmt.Errorf("%w: %w", ErrInterrupted, renderErr)
	}

	rt.logger.Infof("rendered %d pixels (%d samples) in %v", stats.TotalPixels, stats.TotalSamples, stats.RenderTime)
	return frame, stats, nil
}
