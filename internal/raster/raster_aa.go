package raster

import (
	"math"

	ipath "github.com/softraster/ink/internal/path"
)

// FillAA scan-converts edges with 4x4 supersampled anti-aliasing.
// Coverage per pixel is accumulated over four supersampled rows and
// emitted once per pixel row; a fully interior pixel receives exactly
// alpha 255.
func (r *Rasterizer) FillAA(edges []ipath.Edge, rule FillRule, blit Blitter) {
	scan := r.buildScanEdges(edges)
	if len(scan) == 0 {
		return
	}

	left, top, right, bottom := scanEdgeBounds(scan, r.width, r.height)
	sb := newSuperBlitter(blit, left, top, right, bottom)
	if sb == nil {
		return // clipped out
	}

	superLeft := left << SupersampleShift
	superRight := right << SupersampleShift

	for superY := top << SupersampleShift; superY < bottom<<SupersampleShift; superY++ {
		scanY := (float64(superY) + 0.5) / SupersampleScale
		r.gatherActive(scan, scanY)
		if len(r.aet.edges) == 0 {
			continue
		}
		r.aet.sort()

		r.walkSpans(rule, func(x1, x2 float64) {
			// A subpixel is inside when its center (sx+0.5)/4 is in
			// [x1, x2), the same rule the hard fill uses per pixel.
			sx1 := int(math.Ceil(x1*SupersampleScale - 0.5))
			sx2 := int(math.Ceil(x2*SupersampleScale - 0.5))
			if sx1 < superLeft {
				sx1 = superLeft
			}
			if sx2 > superRight {
				sx2 = superRight
			}
			if sx1 < sx2 {
				sb.blitH(sx1, superY, sx2-sx1)
			}
		})
	}

	sb.flush()
}

// scanEdgeBounds returns the pixel-space bounding box of the edges,
// clipped to the rasterizer's dimensions.
func scanEdgeBounds(scan []scanEdge, width, height int) (left, top, right, bottom int) {
	xMin := math.MaxFloat64
	xMax := -math.MaxFloat64
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for i := range scan {
		e := &scan[i]
		xBot := e.xAt(e.bottom)
		xMin = math.Min(xMin, math.Min(e.x0, xBot))
		xMax = math.Max(xMax, math.Max(e.x0, xBot))
		yMin = math.Min(yMin, e.top)
		yMax = math.Max(yMax, e.bottom)
	}

	left = int(math.Floor(xMin))
	right = int(math.Ceil(xMax))
	top = int(math.Floor(yMin))
	bottom = int(math.Ceil(yMax))

	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > width {
		right = width
	}
	if bottom > height {
		bottom = height
	}
	return left, top, right, bottom
}
