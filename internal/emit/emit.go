package emit

import (
	"wireframe/internal/camera"
	"wireframe/internal/geom"
	"wireframe/internal/primitives"
)

// LineSink receives projected line segments. The host line-list context must already be open.
type LineSink interface {
	Line(a, b geom.Point2)
}

// Emit projects both endpoints of every edge of w through cam and passes them to sink
// in edge-list order. Zero-length edges are emitted like any other. Returns the number of lines.
func Emit(sink LineSink, cam camera.Camera, w primitives.Wireframe) int {
	for _, e := range w.Edges {
		a := camera.Project(cam, w.Vertices[e.A])
		b := camera.Project(cam, w.Vertices[e.B])
		sink.Line(a, b)
	}
	return len(w.Edges)
}

// Segment is one emitted line.
type Segment struct {
	A, B geom.Point2
}

// LineList is a LineSink that records every segment it receives.
type LineList struct {
	Segments []Segment
}

// Line appends the segment a-b.
func (l *LineList) Line(a, b geom.Point2) {
	l.Segments = append(l.Segments, Segment{A: a, B: b})
}

// Len returns the number of recorded segments.
func (l *LineList) Len() int {
	return len(l.Segments)
}

// Reset drops recorded segments, keeping capacity for the next frame.
func (l *LineList) Reset() {
	l.Segments = l.Segments[:0]
}
