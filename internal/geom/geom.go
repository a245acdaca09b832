package geom

import "github.com/chewxy/math32"

// Point2 is a projected screen-space point. Values are copied freely; there is no identity.
type Point2 struct {
	X, Y float32
}

// Point3 is a point in world space. Z is the depth handed to the camera's perspective divisor.
type Point3 struct {
	X, Y, Z float32
}

// P2 returns Point2{x, y}.
func P2(x, y float32) Point2 {
	return Point2{X: x, Y: y}
}

// P3 returns Point3{x, y, z}.
func P3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Scale returns p with every component multiplied by s.
func (p Point3) Scale(s float32) Point3 {
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point3) Distance(q Point3) float32 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Add returns p + q.
func (p Point2) Add(q Point2) Point2 {
	return Point2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both components multiplied by s.
func (p Point2) Scale(s float32) Point2 {
	return Point2{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point2) Distance(q Point2) float32 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math32.Sqrt(dx*dx + dy*dy)
}
