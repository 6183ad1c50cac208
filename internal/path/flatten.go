package path

import "math"

// Tolerance is the maximum perpendicular distance between a curve and
// its flattened approximation, in pixels. Every consumer of flattened
// geometry (fill, stroke, containment) uses this one constant.
const Tolerance = 0.1

// FlattenQuad appends the points of a flattened quadratic Bezier curve
// to pts, excluding the start point p0, and returns the extended slice.
func FlattenQuad(p0, p1, p2 Point, tolerance float64, pts []Point) []Point {
	// Flat enough when the control point is within tolerance of the chord.
	if distanceToLine(p1, p0, p2) < tolerance {
		return append(pts, p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	pts = FlattenQuad(p0, q0, mid, tolerance, pts)
	return FlattenQuad(mid, q1, p2, tolerance, pts)
}

// FlattenCubic appends the points of a flattened cubic Bezier curve
// to pts, excluding the start point p0, and returns the extended slice.
func FlattenCubic(p0, p1, p2, p3 Point, tolerance float64, pts []Point) []Point {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		return append(pts, p3)
	}

	// De Casteljau subdivision at t=0.5.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)

	pts = FlattenCubic(p0, q0, r0, mid, tolerance, pts)
	return FlattenCubic(mid, r1, q2, p3, tolerance, pts)
}

// distanceToLine returns the perpendicular distance from p to the
// segment (a, b), falling back to endpoint distance beyond the ends.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
