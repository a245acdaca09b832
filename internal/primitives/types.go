package primitives

import (
	"fmt"
	"strings"

	"wireframe/internal/geom"
)

// Kind selects which generator builds a Shape.
type Kind int

const (
	Cube Kind = iota
	Pyramid
	Cylinder
	RectColumn
	Sphere
)

var kindNames = map[Kind]string{
	Cube:       "cube",
	Pyramid:    "pyramid",
	Cylinder:   "cylinder",
	RectColumn: "column",
	Sphere:     "sphere",
}

// Kinds lists every shape kind in declaration order.
func Kinds() []Kind {
	return []Kind{Cube, Pyramid, Cylinder, RectColumn, Sphere}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a name such as "cube" or "RectColumn" to its Kind. Matching is case-insensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cube":
		return Cube, nil
	case "pyramid":
		return Pyramid, nil
	case "cylinder":
		return Cylinder, nil
	case "column", "rectcolumn", "rect_column":
		return RectColumn, nil
	case "sphere":
		return Sphere, nil
	}
	return 0, fmt.Errorf("unknown shape type %q", name)
}

// Shape describes one primitive. Each kind reads only its own fields:
//
//	Cube:       Center, Size
//	Pyramid:    Center, Size, Height (0 means Size)
//	RectColumn: Center, Width, Height, Depth
//	Cylinder:   Center, Radius, Height, Segments
//	Sphere:     Center, Radius, Segments, Rings (0 means Segments)
//
// Zero or negative lengths are not rejected; they give degenerate geometry.
type Shape struct {
	Kind     Kind
	Center   geom.Point3
	Size     float32
	Width    float32
	Height   float32
	Depth    float32
	Radius   float32
	Segments int
	Rings    int
}

// Edge is a pair of indices into a Wireframe's vertex set.
type Edge struct {
	A, B int
}

// Wireframe is the vertex set and ordered edge list of one primitive.
type Wireframe struct {
	Vertices []geom.Point3
	Edges    []Edge
}

// Segment returns the endpoints of edge i.
func (w Wireframe) Segment(i int) (geom.Point3, geom.Point3) {
	e := w.Edges[i]
	return w.Vertices[e.A], w.Vertices[e.B]
}
