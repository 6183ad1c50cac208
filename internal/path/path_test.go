package path

import (
	"math"
	"testing"
)

// TestFlattenQuadEndpoints tests that flattening starts after p0 and
// ends exactly at p2.
func TestFlattenQuadEndpoints(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 50, Y: 100}
	p2 := Point{X: 100, Y: 0}

	pts := FlattenQuad(p0, p1, p2, Tolerance, nil)
	if len(pts) == 0 {
		t.Fatal("FlattenQuad returned no points")
	}
	if pts[len(pts)-1] != p2 {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], p2)
	}
}

// TestFlattenQuadTolerance tests that the whole curve stays within
// Tolerance of the flattened polyline, the deviation the tolerance
// actually bounds.
func TestFlattenQuadTolerance(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 50, Y: 100}
	p2 := Point{X: 100, Y: 0}

	eval := func(tv float64) Point {
		mt := 1 - tv
		return Point{
			X: mt*mt*p0.X + 2*mt*tv*p1.X + tv*tv*p2.X,
			Y: mt*mt*p0.Y + 2*mt*tv*p1.Y + tv*tv*p2.Y,
		}
	}

	poly := append([]Point{p0}, FlattenQuad(p0, p1, p2, Tolerance, nil)...)
	for i := 0; i <= 2000; i++ {
		pt := eval(float64(i) / 2000)
		best := math.MaxFloat64
		for j := 1; j < len(poly); j++ {
			best = math.Min(best, distanceToLine(pt, poly[j-1], poly[j]))
		}
		if best > Tolerance {
			t.Fatalf("curve point %v is %v from the polyline, want <= %v", pt, best, Tolerance)
		}
	}
}

// TestFlattenCubicLine tests that a degenerate cubic on a straight line
// flattens to a single segment.
func TestFlattenCubicLine(t *testing.T) {
	pts := FlattenCubic(
		Point{X: 0, Y: 0}, Point{X: 10, Y: 0},
		Point{X: 20, Y: 0}, Point{X: 30, Y: 0},
		Tolerance, nil,
	)
	if len(pts) != 1 || pts[0] != (Point{X: 30, Y: 0}) {
		t.Errorf("pts = %v, want [(30, 0)]", pts)
	}
}

// TestCollectEdgesImplicitClose tests that an unclosed subpath is
// closed back to its start.
func TestCollectEdgesImplicitClose(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
	}
	edges := CollectEdges(elements)

	if len(edges) != 3 {
		t.Fatalf("len(edges) = %d, want 3", len(edges))
	}
	last := edges[len(edges)-1]
	if last.P1 != (Point{X: 0, Y: 0}) {
		t.Errorf("closing edge ends at %v, want subpath start", last.P1)
	}
}

// TestCollectEdgesSubpaths tests that separate subpaths are never
// connected to each other.
func TestCollectEdgesSubpaths(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 0, Y: 10}},
		MoveTo{Point: Point{X: 100, Y: 100}},
		LineTo{Point: Point{X: 110, Y: 100}},
		LineTo{Point: Point{X: 100, Y: 110}},
		Close{},
	}
	edges := CollectEdges(elements)

	if len(edges) != 6 {
		t.Fatalf("len(edges) = %d, want 6", len(edges))
	}
	for _, e := range edges {
		near := e.P0.X < 50
		if (e.P1.X < 50) != near {
			t.Errorf("edge %v connects separate subpaths", e)
		}
	}
}

// TestCollectEdgesDropsZeroLength tests that duplicate consecutive
// points produce no edges.
func TestCollectEdgesDropsZeroLength(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point: Point{X: 5, Y: 5}},
		LineTo{Point: Point{X: 5, Y: 5}},
		LineTo{Point: Point{X: 9, Y: 5}},
		Close{},
	}
	edges := CollectEdges(elements)
	for _, e := range edges {
		if e.P0 == e.P1 {
			t.Errorf("zero-length edge %v", e)
		}
	}
	if len(edges) != 2 {
		t.Errorf("len(edges) = %d, want 2", len(edges))
	}
}

// TestCollectEdgesCurves tests that curves flatten into connected
// chains ending at the curve endpoint.
func TestCollectEdgesCurves(t *testing.T) {
	end := Point{X: 100, Y: 0}
	elements := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{Control: Point{X: 50, Y: 80}, Point: end},
		Close{},
	}
	edges := CollectEdges(elements)
	if len(edges) < 3 {
		t.Fatalf("len(edges) = %d, want several flattened segments", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i].P0 != edges[i-1].P1 {
			t.Errorf("edge %d starts at %v, previous ends at %v", i, edges[i].P0, edges[i-1].P1)
		}
	}
	if edges[len(edges)-1].P1 != (Point{X: 0, Y: 0}) {
		t.Errorf("chain ends at %v, want closed to start", edges[len(edges)-1].P1)
	}
}

// TestPointOps tests the vector helpers used by the stroker.
func TestPointOps(t *testing.T) {
	v := Point{X: 3, Y: 4}

	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := v.Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Normalize().Length() = %v, want 1", got)
	}
	if got := (Point{}).Normalize(); got != (Point{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
	if got := v.Perp(); got != (Point{X: -4, Y: 3}) {
		t.Errorf("Perp() = %v, want (-4, 3)", got)
	}
	if got := v.Cross(Point{X: 1, Y: 0}); got != -4 {
		t.Errorf("Cross() = %v, want -4", got)
	}
}
