package camera

import "wireframe/internal/geom"

// Camera supplies the perspective divisor: the scale a point at the given depth is multiplied by.
// Implementations are expected to return a positive scale that shrinks as the depth moves away
// from the camera. Nothing here clips or guards the result.
type Camera interface {
	Perspective(depth float32) float32
}

// PerspectiveFunc adapts a plain function to Camera.
type PerspectiveFunc func(depth float32) float32

// Perspective calls f(depth).
func (f PerspectiveFunc) Perspective(depth float32) float32 {
	return f(depth)
}

// Default camera placement: five units in front of the origin looking down +Z.
const (
	DefaultPosition    = -5
	DefaultFocalLength = 5
)

// PerspectiveCamera is a pinhole camera on the Z axis. Scale is FocalLength / (depth - Position),
// so a point one focal length in front of the camera keeps its size.
// Depth equal to Position yields ±Inf; points behind the camera flip sign. Callers keep geometry in front.
type PerspectiveCamera struct {
	Position    float32
	FocalLength float32
}

// NewPerspective returns a camera at DefaultPosition with DefaultFocalLength.
func NewPerspective() *PerspectiveCamera {
	return &PerspectiveCamera{Position: DefaultPosition, FocalLength: DefaultFocalLength}
}

// Perspective returns FocalLength / (depth - Position).
func (c *PerspectiveCamera) Perspective(depth float32) float32 {
	return c.FocalLength / (depth - c.Position)
}

// Project maps p to screen space: (x*s, y*s) with s = cam.Perspective(p.Z).
func Project(cam Camera, p geom.Point3) geom.Point2 {
	s := cam.Perspective(p.Z)
	return geom.Point2{X: p.X * s, Y: p.Y * s}
}
