package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/df07/go-spheretracer/pkg/core"
	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("scene: invalid color")

// ParseColor parses an albedo given as an SVG color name ("darkolivegreen"),
// a hex triplet ("#336699") or three comma separated floats in [0,1]
// ("0.8,0.8,0").
func ParseColor(value string) (core.Vec3, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.HasPrefix(value, "#"):
		return parseHexColor(value)
	case strings.Contains(value, ","):
		return parseTripletColor(value)
	}

	named, ok := colornames.Map[value]
	if !ok {
		return core.Vec3{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, value)
	}
	return core.NewVec3(float64(named.R)/255, float64(named.G)/255, float64(named.B)/255), nil
}

func parseHexColor(value string) (core.Vec3, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 {
		return core.Vec3{}, fmt.Errorf("%w: hex color %q must have 6 digits", ErrInvalidColor, value)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return core.Vec3{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
	}
	return core.NewVec3(
		float64((rgb>>16)&0xff)/255,
		float64((rgb>>8)&0xff)/255,
		float64(rgb&0xff)/255,
	), nil
}

func parseTripletColor(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: %q needs exactly three components", ErrInvalidColor, value)
	}

	var c [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, value, err)
		}
		if f < 0 || f > 1 {
			return core.Vec3{}, fmt.Errorf("%w: component %g outside [0,1]", ErrInvalidColor, f)
		}
		c[i] = f
	}
	return core.NewVec3(c[0], c[1], c[2]), nil
}
