package scene

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene preset
type SceneInfo struct {
	Name        string
	Description string
}

type preset struct {
	info  SceneInfo
	build func(Overrides) *Scene
}

var presets = map[string]preset{
	"three-spheres": {
		info:  SceneInfo{Name: "three-spheres", Description: "diffuse, glass and metal spheres on a yellow ground"},
		build: NewThreeSpheresScene,
	},
	"hollow-glass": {
		info:  SceneInfo{Name: "hollow-glass", Description: "metal spheres around a hollow glass shell, shallow depth of field"},
		build: NewHollowGlassScene,
	},
	"sphere-grid": {
		info:  SceneInfo{Name: "sphere-grid", Description: "10x10 grid of colored metal spheres"},
		build: NewSphereGridScene,
	},
	"random": {
		info:  SceneInfo{Name: "random", Description: "field of small random spheres, layout chosen by seed"},
		build: NewRandomScene,
	},
	"single": {
		info:  SceneInfo{Name: "single", Description: "one gray diffuse sphere"},
		build: NewSingleSphereScene,
	},
}

// DefaultSceneName is rendered when no scene is requested
const DefaultSceneName = "three-spheres"

// Names returns the preset names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the preset descriptions sorted by name
func List() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, presets[name].info)
	}
	return scenes
}

// New builds the named preset
func New(name string, overrides Overrides) (*Scene, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return p.build(overrides), nil
}
