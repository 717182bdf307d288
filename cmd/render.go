package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-spheretracer/pkg/integrator"
	"github.com/df07/go-spheretracer/pkg/renderer"
	"github.com/df07/go-spheretracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFlags are the flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: scene.DefaultSceneName,
		Usage: "scene preset to render (see list-scenes)",
	},
	cli.IntFlag{
		Name:  "width",
		Value: renderer.DefaultOptions().Width,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: renderer.DefaultOptions().Height,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: renderer.DefaultOptions().SamplesPerPixel,
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Value: integrator.DefaultConfig().MaxDepth,
		Usage: "maximum number of bounces per path",
	},
	cli.IntFlag{
		Name:  "workers",
		Value: 0,
		Usage: "number of render workers (0 = one per CPU)",
	},
	cli.IntFlag{
		Name:  "tile-size",
		Value: renderer.DefaultOptions().TileSize,
		Usage: "edge length of a render tile in pixels",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: renderer.DefaultOptions().Seed,
		Usage: "random seed for sampling and random scene layouts",
	},
	cli.Float64Flag{
		Name:  "aperture",
		Usage: "override the scene camera aperture (0 keeps the preset)",
	},
	cli.StringFlag{
		Name:  "ground-color",
		Usage: "override the ground albedo: color name, #rrggbb or r,g,b",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the rendered frame",
	},
}

// RenderFrame renders a still frame and writes it as a PNG.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		TileSize:        ctx.Int("tile-size"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	depth := ctx.Int("depth")
	if depth < 0 {
		return fmt.Errorf("depth %d must not be negative", depth)
	}

	sc, err := buildScene(ctx, opts.Seed)
	if err != nil {
		return err
	}

	camera, err := sc.NewCamera(opts.AspectRatio())
	if err != nil {
		return err
	}

	integratorConfig := sc.IntegratorConfig()
	integratorConfig.MaxDepth = depth
	pathTracer := integrator.NewPathTracingIntegrator(integratorConfig)
	rt := renderer.NewRaytracer(sc.World, camera, pathTracer, opts)

	cameraConfig := camera.Config()
	logger.Infof("camera at %v looking at %v (vfov %.1f, aperture %.2f), max depth %d",
		cameraConfig.Center, cameraConfig.LookAt, cameraConfig.VFov, cameraConfig.Aperture, pathTracer.Config().MaxDepth)

	// Ctrl+C stops the render between tiles
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderOpts := rt.Options()
	logger.Noticef("rendering scene %q at %dx%d, %d spp, seed %d",
		sc.Name, renderOpts.Width, renderOpts.Height, renderOpts.SamplesPerPixel, renderOpts.Seed)
	frame, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	start := time.Now()
	if err := writePNG(imgFile, frame); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %v (average luminance %.3f)", imgFile, time.Since(start), frame.AverageLuminance())

	logger.Noticef("frame statistics\n%s", formatFrameStats(stats))
	return nil
}

// buildScene creates the requested preset and applies the flag overrides.
func buildScene(ctx *cli.Context, seed int64) (*scene.Scene, error) {
	overrides := scene.Overrides{
		Camera: renderer.CameraConfig{Aperture: ctx.Float64("aperture")},
		Seed:   seed,
	}

	if value := ctx.String("ground-color"); value != "" {
		albedo, err := scene.ParseColor(value)
		if err != nil {
			return nil, err
		}
		overrides.GroundAlbedo = &albedo
	}

	return scene.New(ctx.String("scene"), overrides)
}

func writePNG(path string, frame *renderer.Frame) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, frame.ToRGBA()); err != nil {
		return fmt.Errorf("encoding png file: %w", err)
	}
	return f.Close()
}

func formatFrameStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Samples", "Busy time", "Utilization"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.WorkerID),
			fmt.Sprintf("%d", stat.Tiles),
			fmt.Sprintf("%d", stat.Pixels),
			fmt.Sprintf("%d", stat.Samples),
			stat.BusyTime.Round(time.Millisecond).String(),
			fmt.Sprintf("%02.1f %%", 100*stat.Utilization(stats.RenderTime)),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.TotalTiles),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		stats.RenderTime.Round(time.Millisecond).String(),
		"",
	})

	table.Render()
	return buf.String()
}
