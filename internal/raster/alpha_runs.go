package raster

// alphaRuns stores run-length-encoded coverage values for one pixel
// row. Supersampled rows accumulate into the same buffer, so a fully
// covered pixel reaches exactly 255 after all rows of its pixel line.
// Based on tiny-skia's alpha_runs.rs (Android/Skia heritage).
type alphaRuns struct {
	// runs holds the length of each run; a zero length terminates.
	runs []uint16
	// alpha holds the coverage value of each run.
	alpha []uint8
}

func newAlphaRuns(width int) *alphaRuns {
	if width <= 0 {
		width = 1
	}
	ar := &alphaRuns{
		runs:  make([]uint16, width+1),
		alpha: make([]uint8, width+1),
	}
	ar.reset(width)
	return ar
}

// catchOverflow maps accumulated coverage 0-256 onto 0-255.
func catchOverflow(alpha uint16) uint8 {
	if alpha > 256 {
		alpha = 256
	}
	// alpha - (alpha >> 8) maps 256 to 255 and is identity below.
	return uint8(alpha - (alpha >> 8))
}

// isEmpty reports whether the row holds no coverage at all.
func (ar *alphaRuns) isEmpty() bool {
	if ar.runs[0] == 0 {
		return true
	}
	return ar.alpha[0] == 0 && ar.runs[ar.runs[0]] == 0
}

// reset reinitializes the buffer to a single zero-coverage run.
func (ar *alphaRuns) reset(width int) {
	if width <= 0 {
		width = 1
	}
	if width > 65535 {
		width = 65535
	}
	ar.runs[0] = uint16(width)
	ar.runs[width] = 0
	ar.alpha[0] = 0
}

// add accumulates one supersampled span into the row:
// a partial-coverage first pixel, middleCount pixels at maxValue, and
// a partial-coverage last pixel. offsetX is a search hint carried
// between calls on the same row; the new hint is returned.
func (ar *alphaRuns) add(x int, startAlpha uint8, middleCount int, stopAlpha uint8, maxValue uint8, offsetX int) int {
	if x < 0 {
		return offsetX
	}

	runsOffset := offsetX
	alphaOffset := offsetX
	lastAlphaOffset := offsetX
	x -= offsetX

	if startAlpha != 0 {
		ar.breakRun(runsOffset, x, 1)
		ar.alpha[alphaOffset+x] = catchOverflow(uint16(ar.alpha[alphaOffset+x]) + uint16(startAlpha))

		runsOffset += x + 1
		alphaOffset += x + 1
		x = 0
	}

	if middleCount > 0 {
		ar.breakRun(runsOffset, x, middleCount)
		alphaOffset += x
		runsOffset += x
		x = 0

		for middleCount > 0 {
			ar.alpha[alphaOffset] = catchOverflow(uint16(ar.alpha[alphaOffset]) + uint16(maxValue))

			n := int(ar.runs[runsOffset])
			if n <= 0 {
				break
			}
			if n > middleCount {
				n = middleCount
			}
			alphaOffset += n
			runsOffset += n
			middleCount -= n
		}

		lastAlphaOffset = alphaOffset
	}

	if stopAlpha != 0 {
		ar.breakRun(runsOffset, x, 1)
		alphaOffset += x
		ar.alpha[alphaOffset] = catchOverflow(uint16(ar.alpha[alphaOffset]) + uint16(stopAlpha))
		lastAlphaOffset = alphaOffset
	}

	return lastAlphaOffset
}

// breakRun splits runs at positions x and x+count so add can write
// coverage into exactly that sub-range.
func (ar *alphaRuns) breakRun(runsOffset, x, count int) {
	if count <= 0 {
		return
	}

	origX := x

	ro := runsOffset
	ao := runsOffset
	for x > 0 {
		n := int(ar.runs[ro])
		if n <= 0 {
			return
		}
		if x < n {
			ar.alpha[ao+x] = ar.alpha[ao]
			ar.runs[ro] = uint16(x)
			ar.runs[ro+x] = uint16(n - x)
			break
		}
		ro += n
		ao += n
		x -= n
	}

	ro = runsOffset + origX
	ao = runsOffset + origX
	x = count

	for {
		n := int(ar.runs[ro])
		if n <= 0 {
			break
		}
		if x < n {
			ar.alpha[ao+x] = ar.alpha[ao]
			ar.runs[ro] = uint16(x)
			ar.runs[ro+x] = uint16(n - x)
			break
		}
		x -= n
		if x == 0 {
			break
		}
		ro += n
		ao += n
	}
}
