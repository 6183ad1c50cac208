package raster

// SupersampleShift controls supersampling level: 2 means 4x4.
const SupersampleShift = 2

// SupersampleScale is the number of subpixels per pixel.
const SupersampleScale = 1 << SupersampleShift

// SupersampleMask extracts subpixel coordinates.
const SupersampleMask = SupersampleScale - 1

// superBlitter accumulates supersampled coverage row by row and
// forwards finished pixel rows as spans to the target Blitter.
type superBlitter struct {
	blit Blitter
	runs *alphaRuns

	left      int // left edge of the region, pixel space
	superLeft int // left edge, supersampled space
	width     int // region width, pixel space
	top       int // top boundary, pixel space

	currIY  int // current pixel row
	currY   int // current supersampled row
	offsetX int // search hint for alphaRuns.add
}

// newSuperBlitter prepares accumulation for the clipped region
// [left, right) x [top, bottom) in pixel space. Returns nil when the
// region is empty.
func newSuperBlitter(blit Blitter, left, top, right, bottom int) *superBlitter {
	width := right - left
	if width <= 0 || top >= bottom {
		return nil
	}
	return &superBlitter{
		blit:      blit,
		runs:      newAlphaRuns(width),
		left:      left,
		superLeft: left << SupersampleShift,
		width:     width,
		top:       top,
		currIY:    top - 1,
		currY:     (top << SupersampleShift) - 1,
	}
}

// blitH accumulates one span on a supersampled row. x is an absolute
// supersampled coordinate; y is the supersampled row index.
func (sb *superBlitter) blitH(x, y, width int) {
	if width <= 0 {
		return
	}

	iy := y >> SupersampleShift

	if x < sb.superLeft {
		diff := sb.superLeft - x
		if diff >= width {
			return
		}
		width -= diff
		x = sb.superLeft
	}
	x -= sb.superLeft

	// New supersampled row restarts the run search hint.
	if sb.currY != y {
		sb.offsetX = 0
		sb.currY = y
	}

	// New pixel row: flush the finished one first.
	if iy != sb.currIY {
		sb.flush()
		sb.currIY = iy
	}

	start := x
	stop := x + width

	// Partial coverage of the first and last pixel on this row.
	fb := start & SupersampleMask
	fe := stop & SupersampleMask
	n := (stop >> SupersampleShift) - (start >> SupersampleShift) - 1

	if n < 0 {
		// Span starts and stops inside one pixel.
		fb = fe - fb
		n = 0
		fe = 0
	} else {
		if fb == 0 {
			n++
		} else {
			fb = SupersampleScale - fb
		}
	}

	// Per-row cap on middle-pixel coverage. Three rows contribute 64
	// and the fourth 63, so a fully covered pixel sums to exactly 255.
	maxValue := uint8((1 << (8 - SupersampleShift)) - (((y & SupersampleMask) + 1) >> SupersampleShift))

	sb.offsetX = sb.runs.add(
		start>>SupersampleShift,
		partialAlpha(fb),
		n,
		partialAlpha(fe),
		maxValue,
		sb.offsetX,
	)
}

// flush emits the accumulated pixel row as coverage spans.
func (sb *superBlitter) flush() {
	if sb.currIY < sb.top || sb.runs.isEmpty() {
		return
	}

	i := 0
	for sb.runs.runs[i] > 0 {
		runLen := int(sb.runs.runs[i])
		if a := sb.runs.alpha[i]; a > 0 {
			sb.blit.BlitSpan(sb.left+i, sb.currIY, runLen, a)
		}
		i += runLen
		if i >= len(sb.runs.runs) {
			break
		}
	}

	sb.runs.reset(sb.width)
	sb.offsetX = 0
	sb.currIY = sb.top - 1
}

// partialAlpha converts subpixel coverage (0-4) to an alpha
// contribution (0-64); accumulation clamps the 256 case to 255.
func partialAlpha(coverage int) uint8 {
	return uint8(coverage << (8 - 2*SupersampleShift))
}
