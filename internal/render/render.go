// Package render drives one frame of wireframe drawing: it checks the shading resource,
// opens the host line context, emits every shape and closes the context.
package render

import (
	"errors"
	"image/color"

	"wireframe/internal/camera"
	"wireframe/internal/emit"
	"wireframe/internal/logger"
	"wireframe/internal/primitives"
)

// ErrMissingMaterial is returned when a frame is drawn without a bound material.
// The frame emits nothing; the next frame tries again.
var ErrMissingMaterial = errors.New("render: missing material")

// Material is the shading resource lines are drawn with.
type Material struct {
	Name  string
	Color color.RGBA
}

// DefaultMaterial is plain white lines.
func DefaultMaterial() *Material {
	return &Material{Name: "default", Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
}

// Target is the host's line-list drawing context. Begin binds the material and opens
// the context; Line is only called between Begin and End.
type Target interface {
	emit.LineSink
	Begin(mat *Material)
	End()
}

// Pass draws shapes through Camera. Log may be nil.
// The only state kept between frames is whether the last frame lacked a material, so a
// missing material is logged once rather than every frame.
type Pass struct {
	Camera camera.Camera
	Log    *logger.Logger

	missing bool
}

// NewPass returns a Pass using cam and logging to log.
func NewPass(cam camera.Camera, log *logger.Logger) *Pass {
	return &Pass{Camera: cam, Log: log}
}

// Draw emits every shape to target in order and returns the number of lines drawn.
// With a nil material nothing touches the target and ErrMissingMaterial is returned.
func (p *Pass) Draw(target Target, mat *Material, shapes []primitives.Shape) (int, error) {
	if mat == nil {
		if !p.missing && p.Log != nil {
			p.Log.Log("You need to add a material: geometry skipped until one is set")
		}
		p.missing = true
		return 0, ErrMissingMaterial
	}
	if p.missing && p.Log != nil {
		p.Log.Log("material set: drawing resumed")
	}
	p.missing = false
	target.Begin(mat)
	defer target.End()

	lines := 0
	for _, s := range shapes {
		lines += emit.Emit(target, p.Camera, primitives.Generate(s))
	}
	return lines, nil
}
