package raster

import (
	ipath "github.com/softraster/ink/internal/path"
)

// minEdgeDY is the smallest vertical extent an edge must have to
// participate in scan conversion. Horizontal edges never cross a
// scanline and carry no winding.
const minEdgeDY = 0.001

// scanEdge is a non-horizontal line segment prepared for scanline
// traversal: oriented top-down, with its winding direction taken from
// the original orientation.
type scanEdge struct {
	top, bottom float64 // y extent, top < bottom
	x0          float64 // x at top
	dxdy        float64 // slope
	dir         int     // +1 downward, -1 upward in the source path
}

// newScanEdge prepares an edge for scanning. It returns false for
// (nearly) horizontal edges, which are skipped.
func newScanEdge(e ipath.Edge) (scanEdge, bool) {
	p0, p1 := e.P0, e.P1
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	dy := p1.Y - p0.Y
	if dy < minEdgeDY {
		return scanEdge{}, false
	}
	return scanEdge{
		top:    p0.Y,
		bottom: p1.Y,
		x0:     p0.X,
		dxdy:   (p1.X - p0.X) / dy,
		dir:    dir,
	}, true
}

// xAt returns the edge's x coordinate at the given y.
func (e *scanEdge) xAt(y float64) float64 {
	return e.x0 + (y-e.top)*e.dxdy
}

// activeEdge is an edge crossing the current scanline. The crossing
// position stays in float64: any quantization here would make span
// boundaries disagree with exact point containment queries.
type activeEdge struct {
	x   float64
	dir int
}

// activeEdgeTable holds the edges crossing one scanline, sorted by x.
type activeEdgeTable struct {
	edges []activeEdge
}

func (aet *activeEdgeTable) reset() {
	aet.edges = aet.edges[:0]
}

func (aet *activeEdgeTable) add(x float64, dir int) {
	aet.edges = append(aet.edges, activeEdge{x: x, dir: dir})
}

// sort orders edges by x. Insertion sort: crossing counts per scanline
// are small and nearly sorted between adjacent scanlines.
func (aet *activeEdgeTable) sort() {
	edges := aet.edges
	for i := 1; i < len(edges); i++ {
		key := edges[i]
		j := i - 1
		for j >= 0 && edges[j].x > key.x {
			edges[j+1] = edges[j]
			j--
		}
		edges[j+1] = key
	}
}
