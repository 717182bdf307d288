package cmd

import (
	"os"

	"github.com/df07/go-spheretracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("spheretracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Fatal logs err and exits with a non-zero status.
func Fatal(err error) {
	logger.Error(err)
	os.Exit(1)
}
