package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wireframe/internal/geom"
	"wireframe/internal/primitives"
)

// ScenePath is the scene file, relative to the process working directory.
const ScenePath = "config/scene.yaml"

// DefaultSegments is the subdivision used for curved shapes when the file does not set one.
const DefaultSegments = 12

// ShapeDef is the YAML form of one shape (e.g. an entry under shapes: in config/scene.yaml).
// Only the fields that the shape's type reads are meaningful.
type ShapeDef struct {
	Type     string     `yaml:"type"`
	Enabled  bool       `yaml:"enabled"`
	Center   [3]float32 `yaml:"center,flow"`
	Size     float32    `yaml:"size,omitempty"`
	Width    float32    `yaml:"width,omitempty"`
	Height   float32    `yaml:"height,omitempty"`
	Depth    float32    `yaml:"depth,omitempty"`
	Radius   float32    `yaml:"radius,omitempty"`
	Segments int        `yaml:"segments,omitempty"`
	Rings    int        `yaml:"rings,omitempty"`
}

// Scene is the set of shapes drawn every frame. Scale multiplies every length
// (size, extents, radius) but not positions.
type Scene struct {
	Scale  float32    `yaml:"scale"`
	Shapes []ShapeDef `yaml:"shapes"`
}

// Default returns the built-in layout: pyramid left, column in the middle, cylinder right,
// sphere behind, cube above, all enabled, scale 1.
func Default() *Scene {
	return &Scene{
		Scale: 1,
		Shapes: []ShapeDef{
			{Type: "cube", Enabled: true, Center: [3]float32{0, 2.5, 3}, Size: 0.5},
			{Type: "pyramid", Enabled: true, Center: [3]float32{-4, 0, 3}, Size: 0.5, Height: 1},
			{Type: "column", Enabled: true, Center: [3]float32{0, 0, 3}, Width: 1, Height: 2, Depth: 1},
			{Type: "cylinder", Enabled: true, Center: [3]float32{4, 0, 3}, Radius: 0.5, Height: 2, Segments: DefaultSegments},
			{Type: "sphere", Enabled: true, Center: [3]float32{0, 0, 7}, Radius: 0.75, Segments: DefaultSegments},
		},
	}
}

// Parse decodes a scene from YAML and checks every shape type. A missing scale means 1.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{Scale: 1}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	for i, d := range s.Shapes {
		kind, err := primitives.ParseKind(d.Type)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		if (kind == primitives.Cylinder || kind == primitives.Sphere) && d.Segments == 0 {
			s.Shapes[i].Segments = DefaultSegments
		}
	}
	return s, nil
}

// Load reads the scene at path. A missing file yields Default() without creating one.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("load scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return s, nil
}

// Save writes the scene to path, creating the parent directory if needed.
func (s *Scene) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Shape converts d to a primitive descriptor with lengths multiplied by scale.
// Types are checked by Parse; an unknown type falls back to Cube.
func (d ShapeDef) Shape(scale float32) primitives.Shape {
	kind, _ := primitives.ParseKind(d.Type)
	return primitives.Shape{
		Kind:     kind,
		Center:   geom.P3(d.Center[0], d.Center[1], d.Center[2]),
		Size:     d.Size * scale,
		Width:    d.Width * scale,
		Height:   d.Height * scale,
		Depth:    d.Depth * scale,
		Radius:   d.Radius * scale,
		Segments: d.Segments,
		Rings:    d.Rings,
	}
}

// Enabled returns the enabled shapes in file order, scaled by s.Scale.
func (s *Scene) Enabled() []primitives.Shape {
	out := make([]primitives.Shape, 0, len(s.Shapes))
	for _, d := range s.Shapes {
		if d.Enabled {
			out = append(out, d.Shape(s.Scale))
		}
	}
	return out
}

// Select enables every shape of the given kind and disables the rest.
// Returns false and changes nothing if the scene has no shape of that kind.
func (s *Scene) Select(kind primitives.Kind) bool {
	found := false
	for _, d := range s.Shapes {
		if k, err := primitives.ParseKind(d.Type); err == nil && k == kind {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i := range s.Shapes {
		k, err := primitives.ParseKind(s.Shapes[i].Type)
		s.Shapes[i].Enabled = err == nil && k == kind
	}
	return true
}

// EnableAll enables every shape.
func (s *Scene) EnableAll() {
	for i := range s.Shapes {
		s.Shapes[i].Enabled = true
	}
}

// SetSegments sets the subdivision of every cylinder and sphere. Rings follow segments.
func (s *Scene) SetSegments(n int) {
	for i := range s.Shapes {
		k, err := primitives.ParseKind(s.Shapes[i].Type)
		if err != nil {
			continue
		}
		if k == primitives.Cylinder || k == primitives.Sphere {
			s.Shapes[i].Segments = n
			s.Shapes[i].Rings = 0
		}
	}
}

// SetScale sets the global length multiplier.
func (s *Scene) SetScale(f float32) {
	s.Scale = f
}
