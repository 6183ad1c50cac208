package raster

import (
	"testing"

	ipath "github.com/softraster/ink/internal/path"
)

// gridBlitter accumulates coverage per pixel and records any span
// outside its bounds.
type gridBlitter struct {
	w, h    int
	cov     []int
	outside bool
}

func newGridBlitter(w, h int) *gridBlitter {
	return &gridBlitter{w: w, h: h, cov: make([]int, w*h)}
}

func (g *gridBlitter) BlitSpan(x, y, width int, alpha uint8) {
	if x < 0 || y < 0 || y >= g.h || x+width > g.w {
		g.outside = true
		return
	}
	for i := 0; i < width; i++ {
		g.cov[y*g.w+x+i] += int(alpha)
	}
}

func (g *gridBlitter) at(x, y int) int {
	return g.cov[y*g.w+x]
}

// rectEdges returns the four edges of an axis-aligned rectangle.
func rectEdges(l, t, r, b float64) []ipath.Edge {
	return []ipath.Edge{
		{P0: ipath.Point{X: l, Y: t}, P1: ipath.Point{X: r, Y: t}},
		{P0: ipath.Point{X: r, Y: t}, P1: ipath.Point{X: r, Y: b}},
		{P0: ipath.Point{X: r, Y: b}, P1: ipath.Point{X: l, Y: b}},
		{P0: ipath.Point{X: l, Y: b}, P1: ipath.Point{X: l, Y: t}},
	}
}

// TestFillAlignedRect tests binary coverage of a pixel-aligned rectangle.
func TestFillAlignedRect(t *testing.T) {
	g := newGridBlitter(10, 8)
	New(10, 8).Fill(rectEdges(2, 2, 8, 6), FillRuleNonZero, g)

	if g.outside {
		t.Error("span emitted outside the clip")
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			want := 0
			if x >= 2 && x < 8 && y >= 2 && y < 6 {
				want = 255
			}
			if got := g.at(x, y); got != want {
				t.Fatalf("coverage(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

// TestFillPixelCenterRule tests that hard fill covers a pixel exactly
// when the pixel center is inside the span.
func TestFillPixelCenterRule(t *testing.T) {
	g := newGridBlitter(10, 4)
	New(10, 4).Fill(rectEdges(2.5, 1, 5.5, 2), FillRuleNonZero, g)

	// Centers 2.5, 3.5, 4.5 lie in [2.5, 5.5); 5.5 does not.
	for x := 0; x < 10; x++ {
		want := 0
		if x >= 2 && x < 5 {
			want = 255
		}
		if got := g.at(x, 1); got != want {
			t.Errorf("coverage(%d, 1) = %d, want %d", x, got, want)
		}
	}
}

// TestFillSubPixelEdges tests the center rule on edges that fall just
// past a pixel center by less than 1/64 px: the crossing position must
// not be rounded before the half-open comparison.
func TestFillSubPixelEdges(t *testing.T) {
	g := newGridBlitter(10, 4)
	New(10, 4).Fill(rectEdges(2.505, 1, 6.505, 3), FillRuleNonZero, g)

	// Center 2.5 is left of 2.505; center 6.5 is inside [2.505, 6.505).
	for x := 0; x < 10; x++ {
		want := 0
		if x >= 3 && x <= 6 {
			want = 255
		}
		if got := g.at(x, 1); got != want {
			t.Errorf("coverage(%d, 1) = %d, want %d", x, got, want)
		}
	}
}

// TestFillClipsToSurface tests that geometry larger than the surface
// emits only in-bounds spans.
func TestFillClipsToSurface(t *testing.T) {
	g := newGridBlitter(4, 4)
	New(4, 4).Fill(rectEdges(-10, -10, 20, 20), FillRuleNonZero, g)

	if g.outside {
		t.Fatal("span emitted outside the clip")
	}
	for i, c := range g.cov {
		if c != 255 {
			t.Fatalf("coverage[%d] = %d, want 255", i, c)
		}
	}
}

// TestFillWindingRules tests nonzero versus even-odd on two nested
// same-direction squares.
func TestFillWindingRules(t *testing.T) {
	edges := append(rectEdges(0, 0, 12, 12), rectEdges(4, 4, 8, 8)...)

	t.Run("nonzero fills the overlap", func(t *testing.T) {
		g := newGridBlitter(12, 12)
		New(12, 12).Fill(edges, FillRuleNonZero, g)
		if got := g.at(6, 6); got != 255 {
			t.Errorf("coverage(6, 6) = %d, want 255", got)
		}
	})

	t.Run("even-odd leaves a hole", func(t *testing.T) {
		g := newGridBlitter(12, 12)
		New(12, 12).Fill(edges, FillRuleEvenOdd, g)
		if got := g.at(6, 6); got != 0 {
			t.Errorf("coverage(6, 6) = %d, want 0", got)
		}
		if got := g.at(2, 2); got != 255 {
			t.Errorf("coverage(2, 2) = %d, want 255", got)
		}
	})
}

// TestFillAAInteriorExact tests that a pixel-aligned AA fill yields
// exactly 255 in every covered pixel.
func TestFillAAInteriorExact(t *testing.T) {
	g := newGridBlitter(10, 8)
	New(10, 8).FillAA(rectEdges(2, 2, 8, 6), FillRuleNonZero, g)

	if g.outside {
		t.Error("span emitted outside the clip")
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 8; x++ {
			if got := g.at(x, y); got != 255 {
				t.Fatalf("coverage(%d, %d) = %d, want 255", x, y, got)
			}
		}
	}
	if got := g.at(1, 3); got != 0 {
		t.Errorf("coverage(1, 3) = %d, want 0", got)
	}
}

// TestFillAAPartialCoverage tests that a half-covered pixel column gets
// roughly half alpha.
func TestFillAAPartialCoverage(t *testing.T) {
	g := newGridBlitter(8, 4)
	New(8, 4).FillAA(rectEdges(1, 1, 4.5, 3), FillRuleNonZero, g)

	got := g.at(4, 1)
	if got < 112 || got > 144 {
		t.Errorf("coverage(4, 1) = %d, want about 128", got)
	}
	if full := g.at(2, 1); full != 255 {
		t.Errorf("coverage(2, 1) = %d, want 255", full)
	}
}

// TestFillAAClippedOut tests that geometry fully outside the surface
// emits nothing.
func TestFillAAClippedOut(t *testing.T) {
	g := newGridBlitter(4, 4)
	New(4, 4).FillAA(rectEdges(10, 10, 20, 20), FillRuleNonZero, g)

	for i, c := range g.cov {
		if c != 0 {
			t.Fatalf("coverage[%d] = %d, want 0", i, c)
		}
	}
}

// TestFillHorizontalOnly tests that purely horizontal geometry produces
// no spans.
func TestFillHorizontalOnly(t *testing.T) {
	edges := []ipath.Edge{
		{P0: ipath.Point{X: 0, Y: 2}, P1: ipath.Point{X: 10, Y: 2}},
		{P0: ipath.Point{X: 10, Y: 2}, P1: ipath.Point{X: 0, Y: 2}},
	}
	g := newGridBlitter(10, 4)
	New(10, 4).Fill(edges, FillRuleNonZero, g)
	for i, c := range g.cov {
		if c != 0 {
			t.Fatalf("coverage[%d] = %d, want 0", i, c)
		}
	}
}

// TestCatchOverflow tests the 256-to-255 accumulation clamp.
func TestCatchOverflow(t *testing.T) {
	tests := []struct {
		in   uint16
		want uint8
	}{
		{0, 0}, {1, 1}, {64, 64}, {255, 255}, {256, 255}, {300, 255},
	}
	for _, tt := range tests {
		if got := catchOverflow(tt.in); got != tt.want {
			t.Errorf("catchOverflow(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestAlphaRunsAccumulate tests that four supersampled rows sum to
// exactly 255 in a fully covered pixel.
func TestAlphaRunsAccumulate(t *testing.T) {
	ar := newAlphaRuns(8)
	// Per-row caps for supersampled rows 0-3 of one pixel row.
	for _, maxValue := range []uint8{64, 64, 64, 63} {
		ar.add(2, 0, 3, 0, maxValue, 0)
	}

	if ar.isEmpty() {
		t.Fatal("isEmpty() = true after accumulation")
	}
	if got := ar.alpha[2]; got != 255 {
		t.Errorf("alpha[2] = %d, want 255", got)
	}
	if got := ar.alpha[0]; got != 0 {
		t.Errorf("alpha[0] = %d, want 0", got)
	}
}
