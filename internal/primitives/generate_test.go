package primitives

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/internal/geom"
)

const tol = 1e-5

func TestFixedEdgeCounts(t *testing.T) {
	centers := []geom.Point3{geom.P3(0, 0, 0), geom.P3(-4, 2, 9)}
	sizes := []float32{0, 0.5, 1, 7, -2}
	for _, c := range centers {
		for _, s := range sizes {
			assert.Len(t, GenerateCube(c, s).Edges, 12)
			assert.Len(t, GenerateRectColumn(c, s, 2*s, 3*s).Edges, 12)
			assert.Len(t, GeneratePyramid(c, s, s).Edges, 8)
		}
	}
}

func TestCubeFaces(t *testing.T) {
	w := GenerateCube(geom.P3(0, 0, 3), 2)
	require.Len(t, w.Vertices, 8)
	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(4), w.Vertices[i].Z, "front face depth")
		assert.Equal(t, float32(2), w.Vertices[i+4].Z, "back face depth")
		assert.Equal(t, w.Vertices[i].X, w.Vertices[i+4].X)
		assert.Equal(t, w.Vertices[i].Y, w.Vertices[i+4].Y)
	}
	assert.Equal(t, geom.P3(2, 2, 4), w.Vertices[0])
	assert.Equal(t, geom.P3(-2, 2, 4), w.Vertices[1])
	assert.Equal(t, geom.P3(-2, -2, 4), w.Vertices[2])
	assert.Equal(t, geom.P3(2, -2, 4), w.Vertices[3])
}

func TestCubeDegenerate(t *testing.T) {
	w := GenerateCube(geom.P3(0, 0, 0), 0)
	require.Len(t, w.Vertices, 8)
	require.Len(t, w.Edges, 12)
	for _, v := range w.Vertices {
		assert.Equal(t, w.Vertices[0], v)
	}
	for i := range w.Edges {
		a, b := w.Segment(i)
		assert.Zero(t, a.Distance(b))
	}
}

func TestBoxEdgesAreAxisAligned(t *testing.T) {
	// every edge of a box changes exactly one coordinate
	w := GenerateRectColumn(geom.P3(1, 2, 3), 2, 4, 6)
	for i := range w.Edges {
		a, b := w.Segment(i)
		changed := 0
		if a.X != b.X {
			changed++
		}
		if a.Y != b.Y {
			changed++
		}
		if a.Z != b.Z {
			changed++
		}
		assert.Equal(t, 1, changed, "edge %d: %v-%v", i, a, b)
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(0), w.Vertices[i].Y)
		assert.Equal(t, float32(4), w.Vertices[i+4].Y)
	}
}

func TestPyramid(t *testing.T) {
	w := GeneratePyramid(geom.P3(0, 0, 3), 1, 2)
	require.Len(t, w.Vertices, 5)
	assert.Equal(t, geom.P3(0, 2, 3), w.Vertices[4])
	for i := 0; i < 4; i++ {
		a, b := w.Segment(i)
		assert.InDelta(t, 2, a.Distance(b), tol, "base edge %d", i)
		assert.Equal(t, 4, w.Edges[i+4].B)
	}
}

func TestPyramidHeightDefaultsToSize(t *testing.T) {
	w := Generate(Shape{Kind: Pyramid, Size: 1.5})
	assert.Equal(t, geom.P3(0, 1.5, 0), w.Vertices[4])
}

func TestCylinderExample(t *testing.T) {
	w := GenerateCylinder(geom.P3(0, 0, 0), 1, 2, 4)
	require.Len(t, w.Vertices, 8)
	require.Len(t, w.Edges, 12)

	want := []geom.Point3{{X: 1}, {Z: 1}, {X: -1}, {Z: -1}}
	for i, p := range want {
		b, top := w.Vertices[i], w.Vertices[4+i]
		assert.InDelta(t, p.X, b.X, tol)
		assert.InDelta(t, p.Z, b.Z, tol)
		assert.Equal(t, float32(-1), b.Y)
		assert.InDelta(t, p.X, top.X, tol)
		assert.InDelta(t, p.Z, top.Z, tol)
		assert.Equal(t, float32(1), top.Y)
	}

	verticals := 0
	for i := range w.Edges {
		a, b := w.Segment(i)
		if a.X == b.X && a.Z == b.Z {
			verticals++
			assert.InDelta(t, 2, a.Distance(b), tol)
		}
	}
	assert.Equal(t, 4, verticals)
}

func TestSphere(t *testing.T) {
	c := geom.P3(1, -1, 4)
	w := GenerateSphere(c, 2, 8, 6)
	assert.Len(t, w.Vertices, 7*8)
	assert.Len(t, w.Edges, 2*6*8)
	for _, v := range w.Vertices {
		assert.InDelta(t, 2, v.Distance(c), 1e-4)
	}
	assert.InDelta(t, c.Y+2, w.Vertices[0].Y, tol)
	assert.InDelta(t, c.Y-2, w.Vertices[len(w.Vertices)-1].Y, 1e-4)
	for _, e := range w.Edges {
		assert.Less(t, e.A, len(w.Vertices))
		assert.Less(t, e.B, len(w.Vertices))
	}
}

func TestSphereRingsDefaultToSegments(t *testing.T) {
	w := Generate(Shape{Kind: Sphere, Radius: 1, Segments: 5})
	assert.Len(t, w.Edges, 2*5*5)
}

func TestSegmentsClamped(t *testing.T) {
	for _, n := range []int{-4, 0, 1, 2} {
		assert.Len(t, GenerateCylinder(geom.Point3{}, 1, 1, n).Edges, 3*MinSegments)
		assert.Len(t, GenerateSphere(geom.Point3{}, 1, n, n).Edges, 2*MinSegments*MinSegments)
	}
}

func TestRefinementIsMonotonic(t *testing.T) {
	prevCyl, prevSph := 0, 0
	prevChord := math32.Inf(1)
	for n := MinSegments; n <= 32; n++ {
		cyl := GenerateCylinder(geom.Point3{}, 1, 2, n)
		sph := GenerateSphere(geom.Point3{}, 1, n, 0)
		assert.Greater(t, len(cyl.Edges), prevCyl)
		assert.Greater(t, len(sph.Edges), prevSph)
		prevCyl, prevSph = len(cyl.Edges), len(sph.Edges)

		a, b := cyl.Segment(0)
		chord := a.Distance(b)
		assert.LessOrEqual(t, chord, prevChord+tol)
		prevChord = chord
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	shapes := []Shape{
		{Kind: Cube, Center: geom.P3(1, 1, 3), Size: 1},
		{Kind: Pyramid, Center: geom.P3(0, 0, 3), Size: 1, Height: 2},
		{Kind: RectColumn, Center: geom.P3(0, 0, 3), Width: 1, Height: 2, Depth: 1},
		{Kind: Cylinder, Center: geom.P3(0, 0, 3), Radius: 1, Height: 2, Segments: 12},
		{Kind: Sphere, Center: geom.P3(0, 0, 3), Radius: 1, Segments: 12},
	}
	for _, s := range shapes {
		first := Generate(s)
		first.Edges[0] = Edge{99, 99}
		assert.Equal(t, Generate(s), Generate(s), s.Kind.String())
		assert.NotEqual(t, Edge{99, 99}, Generate(s).Edges[0], "edge table shared between calls")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	k, err := ParseKind(" RectColumn ")
	require.NoError(t, err)
	assert.Equal(t, RectColumn, k)

	_, err = ParseKind("torus")
	assert.Error(t, err)
}
