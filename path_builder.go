package ink

import "fmt"

// kappa is the control-point offset factor that makes a cubic Bezier
// approximate a quarter circle: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498

// PathBuilder incrementally constructs a Path. Segment operations
// require an open subpath: LineTo, QuadTo, CubicTo, and Close return
// ErrIllegalPathState when called before any MoveTo, and Close also
// requires at least one segment in the current subpath. After a Close,
// the next segment operation implicitly opens a new subpath at the
// closed subpath's start point.
//
// Build consumes the accumulated elements and resets the builder, so
// one builder may produce any number of independent paths.
type PathBuilder struct {
	elements []PathElement
	start    Point // start of current subpath
	current  Point
	started  bool // a MoveTo has opened a subpath
	closed   bool // current subpath was closed
	segments int  // segment count in current subpath
}

// NewPathBuilder creates an empty path builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// MoveTo starts a new subpath at (x, y). It is legal in every state.
func (b *PathBuilder) MoveTo(x, y float64) {
	p := Point{X: x, Y: y}
	b.elements = append(b.elements, MoveTo{Point: p})
	b.start = p
	b.current = p
	b.started = true
	b.closed = false
	b.segments = 0
}

// beginSegment validates that a segment may be appended, reopening a
// subpath at the closed start point when the previous one was closed.
func (b *PathBuilder) beginSegment(op string) error {
	if !b.started {
		return fmt.Errorf("%s before MoveTo: %w", op, ErrIllegalPathState)
	}
	if b.closed {
		b.elements = append(b.elements, MoveTo{Point: b.start})
		b.current = b.start
		b.closed = false
		b.segments = 0
	}
	return nil
}

// LineTo appends a line segment to (x, y).
func (b *PathBuilder) LineTo(x, y float64) error {
	if err := b.beginSegment("LineTo"); err != nil {
		return err
	}
	b.current = Point{X: x, Y: y}
	b.elements = append(b.elements, LineTo{Point: b.current})
	b.segments++
	return nil
}

// QuadTo appends a quadratic Bezier segment with control point
// (cx, cy) ending at (x, y).
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) error {
	if err := b.beginSegment("QuadTo"); err != nil {
		return err
	}
	b.current = Point{X: x, Y: y}
	b.elements = append(b.elements, QuadTo{
		Control: Point{X: cx, Y: cy},
		Point:   b.current,
	})
	b.segments++
	return nil
}

// CubicTo appends a cubic Bezier segment with control points
// (c1x, c1y) and (c2x, c2y) ending at (x, y).
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) error {
	if err := b.beginSegment("CubicTo"); err != nil {
		return err
	}
	b.current = Point{X: x, Y: y}
	b.elements = append(b.elements, CubicTo{
		Control1: Point{X: c1x, Y: c1y},
		Control2: Point{X: c2x, Y: c2y},
		Point:    b.current,
	})
	b.segments++
	return nil
}

// Close closes the current subpath back to its start point. It requires
// an open subpath with at least one segment.
func (b *PathBuilder) Close() error {
	if !b.started || b.closed || b.segments == 0 {
		return fmt.Errorf("Close without an open subpath: %w", ErrIllegalPathState)
	}
	b.elements = append(b.elements, Close{})
	b.current = b.start
	b.closed = true
	return nil
}

// Build consumes the builder's elements into an immutable Path and
// resets the builder to its initial state. Calling Build again without
// further operations yields an empty path.
func (b *PathBuilder) Build() *Path {
	p := &Path{elements: b.elements}
	*b = PathBuilder{}
	return p
}

// AddRect appends a closed rectangle subpath with corners
// (left, top) and (right, bottom).
func (b *PathBuilder) AddRect(left, top, right, bottom float64) {
	b.MoveTo(left, top)
	b.elements = append(b.elements,
		LineTo{Point: Point{X: right, Y: top}},
		LineTo{Point: Point{X: right, Y: bottom}},
		LineTo{Point: Point{X: left, Y: bottom}},
		Close{},
	)
	b.current = b.start
	b.closed = true
	b.segments = 3
}

// AddOval appends a closed oval subpath inscribed in the rectangle
// (left, top, right, bottom), built from four cubic quarter arcs.
func (b *PathBuilder) AddOval(left, top, right, bottom float64) {
	cx := (left + right) / 2
	cy := (top + bottom) / 2
	rx := (right - left) / 2
	ry := (bottom - top) / 2
	ox := rx * kappa
	oy := ry * kappa

	b.MoveTo(right, cy)
	b.elements = append(b.elements,
		CubicTo{
			Control1: Point{X: right, Y: cy + oy},
			Control2: Point{X: cx + ox, Y: bottom},
			Point:    Point{X: cx, Y: bottom},
		},
		CubicTo{
			Control1: Point{X: cx - ox, Y: bottom},
			Control2: Point{X: left, Y: cy + oy},
			Point:    Point{X: left, Y: cy},
		},
		CubicTo{
			Control1: Point{X: left, Y: cy - oy},
			Control2: Point{X: cx - ox, Y: top},
			Point:    Point{X: cx, Y: top},
		},
		CubicTo{
			Control1: Point{X: cx + ox, Y: top},
			Control2: Point{X: right, Y: cy - oy},
			Point:    Point{X: right, Y: cy},
		},
		Close{},
	)
	b.current = b.start
	b.closed = true
	b.segments = 4
}

// AddCircle appends a closed circle subpath centered at (cx, cy) with
// radius r.
func (b *PathBuilder) AddCircle(cx, cy, r float64) {
	b.AddOval(cx-r, cy-r, cx+r, cy+r)
}

// AddRoundRect appends a closed rounded rectangle subpath. The corner
// radii rx and ry are clamped to half the rectangle's width and height;
// a non-positive radius degrades to a plain rectangle.
func (b *PathBuilder) AddRoundRect(left, top, right, bottom, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		b.AddRect(left, top, right, bottom)
		return
	}
	if w := (right - left) / 2; rx > w {
		rx = w
	}
	if h := (bottom - top) / 2; ry > h {
		ry = h
	}
	ox := rx * kappa
	oy := ry * kappa

	b.MoveTo(left+rx, top)
	b.elements = append(b.elements,
		LineTo{Point: Point{X: right - rx, Y: top}},
		CubicTo{
			Control1: Point{X: right - rx + ox, Y: top},
			Control2: Point{X: right, Y: top + ry - oy},
			Point:    Point{X: right, Y: top + ry},
		},
		LineTo{Point: Point{X: right, Y: bottom - ry}},
		CubicTo{
			Control1: Point{X: right, Y: bottom - ry + oy},
			Control2: Point{X: right - rx + ox, Y: bottom},
			Point:    Point{X: right - rx, Y: bottom},
		},
		LineTo{Point: Point{X: left + rx, Y: bottom}},
		CubicTo{
			Control1: Point{X: left + rx - ox, Y: bottom},
			Control2: Point{X: left, Y: bottom - ry + oy},
			Point:    Point{X: left, Y: bottom - ry},
		},
		LineTo{Point: Point{X: left, Y: top + ry}},
		CubicTo{
			Control1: Point{X: left, Y: top + ry - oy},
			Control2: Point{X: left + rx - ox, Y: top},
			Point:    Point{X: left + rx, Y: top},
		},
		Close{},
	)
	b.current = b.start
	b.closed = true
	b.segments = 8
}

// AddPolygon appends a closed polygon subpath through the given points.
// Fewer than three points is a no-op.
func (b *PathBuilder) AddPolygon(points []Point) {
	if len(points) < 3 {
		return
	}
	b.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		b.elements = append(b.elements, LineTo{Point: p})
	}
	b.elements = append(b.elements, Close{})
	b.current = b.start
	b.closed = true
	b.segments = len(points) - 1
}
