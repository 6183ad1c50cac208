package ink

import (
	"sync"

	ipath "github.com/softraster/ink/internal/path"
)

// PathElement represents one element of a path. The concrete types are
// MoveTo, LineTo, QuadTo, CubicTo, and Close; the interface is sealed.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line to Point.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve to Point.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath back to its starting point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an immutable sequence of path elements produced by a
// PathBuilder. A Path never changes after construction, so it may be
// drawn and queried freely, including from multiple goroutines.
type Path struct {
	elements []PathElement

	boundsOnce sync.Once
	bounds     Rect

	tightOnce sync.Once
	tight     Rect
}

// Elements returns a copy of the path's elements.
func (p *Path) Elements() []PathElement {
	out := make([]PathElement, len(p.elements))
	copy(out, p.elements)
	return out
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Bounds returns the smallest axis-aligned rectangle containing every
// vertex and curve control point of the path. Control points of a curve
// may lie outside the curve itself, so this is a conservative hull; use
// TightBounds for the exact extent. An empty path has a zero Rect.
func (p *Path) Bounds() Rect {
	p.boundsOnce.Do(func() {
		first := true
		add := func(pt Point) {
			if first {
				p.bounds = Rect{Min: pt, Max: pt}
				first = false
				return
			}
			p.bounds = p.bounds.expand(pt)
		}
		for _, elem := range p.elements {
			switch e := elem.(type) {
			case MoveTo:
				add(e.Point)
			case LineTo:
				add(e.Point)
			case QuadTo:
				add(e.Control)
				add(e.Point)
			case CubicTo:
				add(e.Control1)
				add(e.Control2)
				add(e.Point)
			}
		}
	})
	return p.bounds
}

// TightBounds returns the exact axis-aligned bounding box of the path,
// evaluating curve extrema instead of using control-point hulls.
// An empty path has a zero Rect.
func (p *Path) TightBounds() Rect {
	p.tightOnce.Do(func() {
		var current, start Point
		first := true
		add := func(r Rect) {
			if first {
				p.tight = r
				first = false
				return
			}
			p.tight = p.tight.Union(r)
		}
		for _, elem := range p.elements {
			switch e := elem.(type) {
			case MoveTo:
				current = e.Point
				start = e.Point
			case LineTo:
				add(NewRect(current, e.Point))
				current = e.Point
			case QuadTo:
				add(QuadBez{P0: current, P1: e.Control, P2: e.Point}.BoundingBox())
				current = e.Point
			case CubicTo:
				add(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox())
				current = e.Point
			case Close:
				current = start
			}
		}
	})
	return p.tight
}

// Contains reports whether the point (x, y) is inside the path under
// the nonzero winding rule. The query runs over the same flattened,
// implicitly closed edges the rasterizer fills, so Contains and
// rendered coverage agree at pixel centers. An empty path contains
// nothing.
func (p *Path) Contains(x, y float64) bool {
	if p.IsEmpty() {
		return false
	}
	b := p.Bounds()
	if x < b.Min.X || x > b.Max.X || y < b.Min.Y || y > b.Max.Y {
		return false
	}
	return windingAt(ipath.CollectEdges(p.toInternal()), x, y) != 0
}

// windingAt computes the nonzero winding number of (x, y) with respect
// to a set of directed edges by casting a ray toward +x.
func windingAt(edges []ipath.Edge, x, y float64) int {
	winding := 0
	for _, e := range edges {
		if e.P0.Y <= y {
			// Upward crossing counts +1 when the point is left of the edge.
			if e.P1.Y > y && isLeft(e.P0, e.P1, x, y) > 0 {
				winding++
			}
		} else {
			// Downward crossing counts -1 when the point is right of the edge.
			if e.P1.Y <= y && isLeft(e.P0, e.P1, x, y) < 0 {
				winding--
			}
		}
	}
	return winding
}

// isLeft returns > 0 if (x, y) is left of the directed line a->b,
// < 0 if right, and 0 if on the line.
func isLeft(a, b ipath.Point, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	elements := make([]PathElement, len(p.elements))
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			elements[i] = MoveTo{Point: m.TransformPoint(e.Point)}
		case LineTo:
			elements[i] = LineTo{Point: m.TransformPoint(e.Point)}
		case QuadTo:
			elements[i] = QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			}
		case CubicTo:
			elements[i] = CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			}
		case Close:
			elements[i] = Close{}
		}
	}
	return &Path{elements: elements}
}

// toInternal converts the path to the internal element representation
// shared by the rasterizer, stroker, and containment query.
func (p *Path) toInternal() []ipath.PathElement {
	out := make([]ipath.PathElement, len(p.elements))
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out[i] = ipath.MoveTo{Point: ipath.Point(e.Point)}
		case LineTo:
			out[i] = ipath.LineTo{Point: ipath.Point(e.Point)}
		case QuadTo:
			out[i] = ipath.QuadTo{
				Control: ipath.Point(e.Control),
				Point:   ipath.Point(e.Point),
			}
		case CubicTo:
			out[i] = ipath.CubicTo{
				Control1: ipath.Point(e.Control1),
				Control2: ipath.Point(e.Control2),
				Point:    ipath.Point(e.Point),
			}
		case Close:
			out[i] = ipath.Close{}
		}
	}
	return out
}
