// Package raster converts flattened path edges into pixel coverage.
// It never touches pixel memory: coverage leaves the package as
// horizontal spans through the Blitter interface, and the caller
// decides how spans become pixels.
//
// The anti-aliased fill uses 4x4 supersampling with run-length-encoded
// coverage accumulation, following tiny-skia's path_aa.rs
// (Android/Skia heritage).
package raster

import (
	"math"

	ipath "github.com/softraster/ink/internal/path"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Blitter receives horizontal coverage spans in pixel coordinates.
// Spans are non-overlapping within a row, emitted left to right, and
// always lie inside the rasterizer's clip rectangle.
type Blitter interface {
	BlitSpan(x, y, width int, alpha uint8)
}

// Rasterizer scan-converts edge lists clipped to a fixed rectangle
// (0, 0, width, height). A Rasterizer may be reused across fills; it
// is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	aet    activeEdgeTable
	scan   []scanEdge // scratch, reused between fills
}

// New creates a rasterizer clipped to the given dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height}
}

// Fill scan-converts edges without anti-aliasing. A pixel is covered
// exactly when its center lies inside the edge set under the fill
// rule, so every emitted span has alpha 255 and coverage is binary.
func (r *Rasterizer) Fill(edges []ipath.Edge, rule FillRule, blit Blitter) {
	scan := r.buildScanEdges(edges)
	if len(scan) == 0 {
		return
	}

	yMin, yMax := scanEdgeYRange(scan, r.height)
	for y := yMin; y < yMax; y++ {
		scanY := float64(y) + 0.5
		r.gatherActive(scan, scanY)
		if len(r.aet.edges) == 0 {
			continue
		}
		r.aet.sort()

		emit := func(x1, x2 float64) {
			// A pixel is inside when its center x+0.5 is in [x1, x2).
			start := int(math.Ceil(x1 - 0.5))
			end := int(math.Ceil(x2 - 0.5))
			if start < 0 {
				start = 0
			}
			if end > r.width {
				end = r.width
			}
			if start < end {
				blit.BlitSpan(start, y, end-start, 255)
			}
		}
		r.walkSpans(rule, emit)
	}
}

// walkSpans traverses the sorted active edge table and calls emit for
// every interior span under the given fill rule.
func (r *Rasterizer) walkSpans(rule FillRule, emit func(x1, x2 float64)) {
	edges := r.aet.edges
	if rule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, e := range edges {
			if winding == 0 {
				x1 = e.x
			}
			winding += e.dir
			if winding == 0 {
				emit(x1, e.x)
			}
		}
		return
	}
	for i := 0; i+1 < len(edges); i += 2 {
		emit(edges[i].x, edges[i+1].x)
	}
}

// buildScanEdges prepares the reusable scan edge list, dropping
// horizontal edges.
func (r *Rasterizer) buildScanEdges(edges []ipath.Edge) []scanEdge {
	scan := r.scan[:0]
	for _, e := range edges {
		if se, ok := newScanEdge(e); ok {
			scan = append(scan, se)
		}
	}
	r.scan = scan
	return scan
}

// gatherActive fills the active edge table with edges crossing scanY.
func (r *Rasterizer) gatherActive(scan []scanEdge, scanY float64) {
	r.aet.reset()
	for i := range scan {
		e := &scan[i]
		if e.top <= scanY && scanY < e.bottom {
			r.aet.add(e.xAt(scanY), e.dir)
		}
	}
}

// scanEdgeYRange returns the pixel row range [yMin, yMax) touched by
// the edges, clipped to [0, height).
func scanEdgeYRange(scan []scanEdge, height int) (int, int) {
	top := math.MaxFloat64
	bottom := -math.MaxFloat64
	for i := range scan {
		top = math.Min(top, scan[i].top)
		bottom = math.Max(bottom, scan[i].bottom)
	}

	yMin := int(math.Floor(top))
	yMax := int(math.Ceil(bottom))
	if yMin < 0 {
		yMin = 0
	}
	if yMax > height {
		yMax = height
	}
	return yMin, yMax
}
