// Package stroke converts stroked outlines into fill geometry.
//
// The expansion follows the kurbo/tiny-skia approach: a forward path
// offset to one side of the centerline, a backward path offset to the
// other side appended in reverse, joins connecting the segments, and
// caps closing the ends. The result is a plain fill path that goes
// through the same rasterization as any other fill.
package stroke

import (
	"math"

	ipath "github.com/softraster/ink/internal/path"
)

// Cap specifies the shape of stroke endpoints.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half circle.
	CapRound
	// CapSquare ends the stroke with a half square extending past the endpoint.
	CapSquare
)

// Join specifies the shape of corners between stroke segments.
type Join int

const (
	// JoinMiter extends the outer edges to a sharp corner, subject to MiterLimit.
	JoinMiter Join = iota
	// JoinRound rounds the corner with an arc.
	JoinRound
	// JoinBevel cuts the corner with a straight edge.
	JoinBevel
)

// Style describes stroke geometry.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Expander converts stroked paths into fill outlines. An Expander may
// be reused; each Expand call is independent.
type Expander struct {
	style     Style
	tolerance float64

	forward  *outline
	backward *outline
	output   *outline

	startPt   ipath.Point
	startTan  ipath.Point
	startNorm ipath.Point
	lastPt    ipath.Point
	lastTan   ipath.Point
	lastNorm  ipath.Point

	// Joins with a smaller relative turn than this are connected with
	// plain lines instead of join geometry.
	joinThresh float64

	flat []ipath.Point // scratch for curve flattening
}

// NewExpander creates an expander for the given style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4
	}
	return &Expander{
		style:     style,
		tolerance: ipath.Tolerance,
	}
}

// SetTolerance overrides the curve flattening tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand converts a stroked path into fill geometry.
func (e *Expander) Expand(elements []ipath.PathElement) []ipath.PathElement {
	e.reset()

	for _, el := range elements {
		switch elem := el.(type) {
		case ipath.MoveTo:
			e.finishOpen()
			e.startPt = elem.Point
			e.lastPt = elem.Point

		case ipath.LineTo:
			if elem.Point != e.lastPt {
				tangent := elem.Point.Sub(e.lastPt)
				e.join(tangent)
				e.lastTan = tangent
				e.line(tangent, elem.Point)
			}

		case ipath.QuadTo:
			if elem.Control != e.lastPt || elem.Point != e.lastPt {
				e.flat = ipath.FlattenQuad(e.lastPt, elem.Control, elem.Point, e.tolerance, e.flat[:0])
				e.polyline(e.flat)
			}

		case ipath.CubicTo:
			if elem.Control1 != e.lastPt || elem.Control2 != e.lastPt || elem.Point != e.lastPt {
				e.flat = ipath.FlattenCubic(e.lastPt, elem.Control1, elem.Control2, elem.Point, e.tolerance, e.flat[:0])
				e.polyline(e.flat)
			}

		case ipath.Close:
			if e.lastPt != e.startPt {
				tangent := e.startPt.Sub(e.lastPt)
				e.join(tangent)
				e.lastTan = tangent
				e.line(tangent, e.startPt)
			}
			e.finishClosed()
		}
	}

	e.finishOpen()
	return e.output.elements
}

func (e *Expander) reset() {
	e.forward = newOutline()
	e.backward = newOutline()
	e.output = newOutline()
	e.startPt = ipath.Point{}
	e.startTan = ipath.Point{}
	e.startNorm = ipath.Point{}
	e.lastPt = ipath.Point{}
	e.lastTan = ipath.Point{}
	e.lastNorm = ipath.Point{}
	e.joinThresh = 2 * e.tolerance / e.style.Width
}

// polyline strokes a flattened curve segment by segment.
func (e *Expander) polyline(points []ipath.Point) {
	for _, p := range points {
		tangent := p.Sub(e.lastPt)
		if tangent.Dot(tangent) > 1e-10 {
			e.join(tangent)
			e.lastTan = tangent
			e.line(tangent, p)
		}
	}
}

// join connects the previous segment to one starting with tangent tan0.
func (e *Expander) join(tan0 ipath.Point) {
	scale := 0.5 * e.style.Width / tan0.Length()
	norm := tan0.Perp().Mul(scale)
	p0 := e.lastPt

	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan0
		e.startNorm = norm
		return
	}

	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly straight: connect with plain lines to keep both offset
	// paths continuous.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case JoinBevel:
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
	case JoinMiter:
		e.miterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case JoinRound:
		e.roundJoinAt(p0, norm, cross, dot)
	}
}

// miterJoin extends the outer offset edges to their intersection when
// the miter limit allows, then bevels.
func (e *Expander) miterJoin(p0, norm, ab, cd ipath.Point, cross, dot, hypot float64) {
	limitSq := e.style.MiterLimit * e.style.MiterLimit
	if 2*hypot < (hypot+dot)*limitSq {
		lastScale := 0.5 * e.style.Width / ab.Length()
		lastNorm := ab.Perp().Mul(lastScale)

		if cross > 0 {
			fpLast := p0.Add(lastNorm.Neg())
			fpThis := p0.Add(norm.Neg())
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			e.forward.lineTo(fpThis.Add(cd.Mul(-h)))
			e.backward.lineTo(p0)
		} else if cross < 0 {
			fpLast := p0.Add(lastNorm)
			fpThis := p0.Add(norm)
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			e.backward.lineTo(fpThis.Add(cd.Mul(-h)))
			e.forward.lineTo(p0)
		}
	}
	e.forward.lineTo(p0.Add(norm.Neg()))
	e.backward.lineTo(p0.Add(norm))
}

// roundJoinAt rounds the outer side of the corner with an arc.
func (e *Expander) roundJoinAt(p0, norm ipath.Point, cross, dot float64) {
	lastScale := 0.5 * e.style.Width / e.lastTan.Length()
	lastNorm := e.lastTan.Perp().Mul(lastScale)

	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.lineTo(p0.Add(norm))
		e.arc(e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.arc(e.backward, p0, lastNorm.Neg(), -angle)
	}
}

// line extends both offset paths along a straight segment.
func (e *Expander) line(tangent ipath.Point, p1 ipath.Point) {
	scale := 0.5 * e.style.Width / tangent.Length()
	norm := tangent.Perp().Mul(scale)

	e.forward.lineTo(p1.Add(norm.Neg()))
	e.backward.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finishOpen completes an open subpath: forward path, end cap,
// reversed backward path, start cap.
func (e *Expander) finishOpen() {
	if e.forward.isEmpty() {
		return
	}

	e.output.appendOutline(e.forward)

	if !e.backward.isEmpty() {
		e.cap(e.lastPt, e.lastNorm.Neg(), false)
	}

	e.appendReversed(e.backward)
	e.cap(e.startPt, e.startNorm, true)

	e.forward = newOutline()
	e.backward = newOutline()
}

// finishClosed completes a closed subpath as two rings: the forward
// offset closed on itself and the reversed backward offset closed on
// itself, leaving a hole for the interior under nonzero winding.
func (e *Expander) finishClosed() {
	if e.forward.isEmpty() {
		return
	}

	e.join(e.startTan)

	e.output.appendOutline(e.forward)
	e.output.close()

	if n := len(e.backward.elements); n > 0 {
		e.output.moveTo(endPoint(e.backward.elements[n-1]))
	}
	e.appendReversed(e.backward)
	e.output.close()

	e.forward = newOutline()
	e.backward = newOutline()
}

// cap closes one end of an open stroke.
func (e *Expander) cap(center ipath.Point, norm ipath.Point, closePath bool) {
	switch e.style.Cap {
	case CapButt:
		if closePath {
			e.output.close()
		} else {
			e.output.lineTo(center.Add(norm.Neg()))
		}

	case CapRound:
		e.arc(e.output, center, norm, math.Pi)
		if closePath {
			e.output.close()
		}

	case CapSquare:
		p1 := capCorner(center, norm, 1, 1)
		p2 := capCorner(center, norm, -1, 1)
		e.output.lineTo(p1)
		e.output.lineTo(p2)
		if closePath {
			e.output.close()
		} else {
			e.output.lineTo(capCorner(center, norm, -1, 0))
		}
	}
}

// arc appends a circular arc of the given sweep starting at
// center+norm, as cubic segments of at most a quarter turn each.
func (e *Expander) arc(out *outline, center ipath.Point, norm ipath.Point, angle float64) {
	segments := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}

	step := angle / float64(segments)
	current := math.Atan2(norm.Y, norm.X)
	radius := norm.Length()

	for i := 0; i < segments; i++ {
		arcSegment(out, center, radius, current, current+step)
		current += step
	}
}

// arcSegment appends one cubic Bezier approximating the arc from
// angle a0 to a1 (at most a quarter turn).
func arcSegment(out *outline, center ipath.Point, radius, a0, a1 float64) {
	da := a1 - a0
	alpha := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := ipath.Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p2 := ipath.Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}
	c1 := ipath.Point{X: p1.X - alpha*radius*sin0, Y: p1.Y + alpha*radius*cos0}
	c2 := ipath.Point{X: p2.X + alpha*radius*sin1, Y: p2.Y - alpha*radius*cos1}

	out.cubicTo(c1, c2, p2)
}

// capCorner maps a unit-square corner through the cap frame
// [norm.X, norm.Y; -norm.Y, norm.X] anchored at center.
func capCorner(center ipath.Point, norm ipath.Point, x, y float64) ipath.Point {
	return ipath.Point{
		X: norm.X*x - norm.Y*y + center.X,
		Y: norm.Y*x + norm.X*y + center.Y,
	}
}

// appendReversed appends an outline's segments to the output in
// reverse order, flipping curve control points.
func (e *Expander) appendReversed(o *outline) {
	elems := o.elements
	for i := len(elems) - 1; i >= 1; i-- {
		end := endPoint(elems[i-1])
		switch el := elems[i].(type) {
		case ipath.LineTo:
			e.output.lineTo(end)
		case ipath.QuadTo:
			e.output.quadTo(el.Control, end)
		case ipath.CubicTo:
			e.output.cubicTo(el.Control2, el.Control1, end)
		}
	}
}

// endPoint returns the endpoint of a path element.
func endPoint(el ipath.PathElement) ipath.Point {
	switch e := el.(type) {
	case ipath.MoveTo:
		return e.Point
	case ipath.LineTo:
		return e.Point
	case ipath.QuadTo:
		return e.Point
	case ipath.CubicTo:
		return e.Point
	default:
		return ipath.Point{}
	}
}

// outline accumulates path elements during expansion.
type outline struct {
	elements []ipath.PathElement
}

func newOutline() *outline {
	return &outline{elements: make([]ipath.PathElement, 0, 64)}
}

func (o *outline) isEmpty() bool {
	return len(o.elements) == 0
}

func (o *outline) moveTo(p ipath.Point) {
	o.elements = append(o.elements, ipath.MoveTo{Point: p})
}

func (o *outline) lineTo(p ipath.Point) {
	o.elements = append(o.elements, ipath.LineTo{Point: p})
}

func (o *outline) quadTo(c, p ipath.Point) {
	o.elements = append(o.elements, ipath.QuadTo{Control: c, Point: p})
}

func (o *outline) cubicTo(c1, c2, p ipath.Point) {
	o.elements = append(o.elements, ipath.CubicTo{Control1: c1, Control2: c2, Point: p})
}

func (o *outline) close() {
	o.elements = append(o.elements, ipath.Close{})
}

func (o *outline) appendOutline(other *outline) {
	o.elements = append(o.elements, other.elements...)
}
