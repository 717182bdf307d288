package cmd

import (
	"bytes"

	"github.com/df07/go-spheretracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the available scene presets.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	logger.Noticef("available scenes\n%s", formatSceneList(scene.List()))
	return nil
}

func formatSceneList(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
	return buf.String()
}
