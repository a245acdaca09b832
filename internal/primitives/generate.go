package primitives

import (
	"github.com/chewxy/math32"

	"wireframe/internal/geom"
)

// MinSegments is the lowest subdivision used for cylinders and spheres. Smaller counts are clamped up.
const MinSegments = 3

// boxEdges connects 8 corners laid out as ring 0-3 and ring 4-7, with corner i of the
// first ring facing corner i+4 of the second. Shared by cube and column.
var boxEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// pyramidEdges: base ring, then each base corner to the apex (vertex 4).
var pyramidEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{0, 4}, {1, 4}, {2, 4}, {3, 4},
}

// cubeFace is the unit square shared by the front and back faces.
var cubeFace = [4]geom.Point2{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}

// Generate builds the wireframe for s. Unknown kinds yield an empty wireframe.
func Generate(s Shape) Wireframe {
	switch s.Kind {
	case Cube:
		return GenerateCube(s.Center, s.Size)
	case Pyramid:
		h := s.Height
		if h == 0 {
			h = s.Size
		}
		return GeneratePyramid(s.Center, s.Size, h)
	case RectColumn:
		return GenerateRectColumn(s.Center, s.Width, s.Height, s.Depth)
	case Cylinder:
		return GenerateCylinder(s.Center, s.Radius, s.Height, s.Segments)
	case Sphere:
		return GenerateSphere(s.Center, s.Radius, s.Segments, s.Rings)
	}
	return Wireframe{}
}

// cloneEdges copies a fixed table so callers never share it.
func cloneEdges(table []Edge) []Edge {
	return append([]Edge(nil), table...)
}

// clampSegments raises n to MinSegments.
func clampSegments(n int) int {
	if n < MinSegments {
		return MinSegments
	}
	return n
}

// GenerateCube returns the cube as two squares at depths center.Z ± size/2.
// Corners are center.XY + offset*size for the offsets (1,1),(-1,1),(-1,-1),(1,-1).
// Vertices 0-3 are the front face (nearer depth + size/2), 4-7 the back face.
func GenerateCube(center geom.Point3, size float32) Wireframe {
	front := center.Z + size*0.5
	back := center.Z - size*0.5
	verts := make([]geom.Point3, 0, 8)
	for _, z := range [2]float32{front, back} {
		for _, c := range cubeFace {
			verts = append(verts, geom.Point3{X: center.X + c.X*size, Y: center.Y + c.Y*size, Z: z})
		}
	}
	return Wireframe{Vertices: verts, Edges: cloneEdges(boxEdges)}
}

// GeneratePyramid returns a square-based pyramid: base corners at center ± (size, 0, size),
// apex at center + (0, height, 0).
func GeneratePyramid(center geom.Point3, size, height float32) Wireframe {
	verts := []geom.Point3{
		center.Add(geom.P3(-size, 0, -size)),
		center.Add(geom.P3(size, 0, -size)),
		center.Add(geom.P3(size, 0, size)),
		center.Add(geom.P3(-size, 0, size)),
		center.Add(geom.P3(0, height, 0)),
	}
	return Wireframe{Vertices: verts, Edges: cloneEdges(pyramidEdges)}
}

// GenerateRectColumn returns an axis-aligned box of the given extents around center.
// Vertices 0-3 are the bottom ring, 4-7 the top ring, both starting at (-x,-z) and turning through +x.
func GenerateRectColumn(center geom.Point3, width, height, depth float32) Wireframe {
	w, h, d := width*0.5, height*0.5, depth*0.5
	ring := [4][2]float32{{-w, -d}, {w, -d}, {w, d}, {-w, d}}
	verts := make([]geom.Point3, 0, 8)
	for _, y := range [2]float32{-h, h} {
		for _, c := range ring {
			verts = append(verts, center.Add(geom.P3(c[0], y, c[1])))
		}
	}
	return Wireframe{Vertices: verts, Edges: cloneEdges(boxEdges)}
}

// GenerateCylinder returns two rings of segments points joined by verticals.
// Vertices 0..n-1 are the bottom ring at y = center.Y - height/2, n..2n-1 the top ring.
// For each i the edges are bottom ring, top ring, vertical, in that order.
func GenerateCylinder(center geom.Point3, radius, height float32, segments int) Wireframe {
	n := clampSegments(segments)
	verts := make([]geom.Point3, 2*n)
	for i := 0; i < n; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(n)
		bottom := center.Add(geom.P3(math32.Cos(angle)*radius, -height*0.5, math32.Sin(angle)*radius))
		verts[i] = bottom
		verts[n+i] = bottom.Add(geom.P3(0, height, 0))
	}
	edges := make([]Edge, 0, 3*n)
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		edges = append(edges,
			Edge{i, next},
			Edge{n + i, n + next},
			Edge{i, n + i},
		)
	}
	return Wireframe{Vertices: verts, Edges: edges}
}

// GenerateSphere returns a latitude/longitude lattice. Latitude bands run from the +Y pole (lat 0)
// to the -Y pole (lat rings); rings == 0 uses segments. Vertex (lat, lon) is at index lat*segments+lon.
// Every band above the last contributes, per longitude, one edge along its ring and one edge down
// to the next band, so the lattice has 2*rings*segments edges.
func GenerateSphere(center geom.Point3, radius float32, segments, rings int) Wireframe {
	n := clampSegments(segments)
	if rings == 0 {
		rings = n
	}
	rings = clampSegments(rings)

	verts := make([]geom.Point3, 0, (rings+1)*n)
	for lat := 0; lat <= rings; lat++ {
		phi := math32.Pi * float32(lat) / float32(rings)
		y, r := math32.Cos(phi), math32.Sin(phi)
		for lon := 0; lon < n; lon++ {
			lambda := 2 * math32.Pi * float32(lon) / float32(n)
			dir := geom.P3(math32.Cos(lambda)*r, y, math32.Sin(lambda)*r)
			verts = append(verts, center.Add(dir.Scale(radius)))
		}
	}

	edges := make([]Edge, 0, 2*rings*n)
	for lat := 0; lat < rings; lat++ {
		for lon := 0; lon < n; lon++ {
			i := lat*n + lon
			edges = append(edges,
				Edge{i, lat*n + (lon+1)%n},
				Edge{i, i + n},
			)
		}
	}
	return Wireframe{Vertices: verts, Edges: edges}
}
