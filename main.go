package main

import (
	"os"

	"github.com/df07/go-spheretracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// Free up -v for verbose logging
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "spheretracer"
	app.Usage = "render scenes of spheres using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene preset to a PNG file. Every pixel averages --spp
jittered camera rays; each path bounces at most --depth times before it
is shaded with the sky gradient.

Output is deterministic for a given --seed and tile size, regardless of
the number of workers.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list available scene presets",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		cmd.Fatal(err)
	}
}
