package scene

import (
	"github.com/df07/go-spheretracer/pkg/core"
)

// World is an unordered collection of shapes. It is itself a shape, so
// worlds can be nested.
type World struct {
	Shapes []core.Shape
}

// NewWorld creates a world containing the given shapes
func NewWorld(shapes ...core.Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...core.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Len returns the number of top-level shapes
func (w *World) Len() int {
	return len(w.Shapes)
}

// Hit returns the closest intersection among all shapes.
// The search interval shrinks to each new closest hit so a farther
// shape can never override a nearer one.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
