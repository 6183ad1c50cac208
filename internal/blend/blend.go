// Package blend composites colored coverage spans into RGBA8 pixel
// memory. Storage is straight (non-premultiplied) alpha; blending runs
// through a premultiplied intermediate in float64 and quantizes the
// result with round-half-up.
package blend

// SourceOver composites a straight-alpha source color over the pixel
// at pix[off:off+4] under the source-over rule. Source channels sr,
// sg, sb, sa are in [0, 1]; cov is the rasterizer's coverage for this
// pixel (0-255) and scales the source alpha.
func SourceOver(pix []uint8, off int, sr, sg, sb, sa float64, cov uint8) {
	if cov == 0 {
		return
	}

	srcA := sa * float64(cov) / 255
	if srcA <= 0 {
		return
	}

	dstA := float64(pix[off+3]) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA <= 0 {
		pix[off] = 0
		pix[off+1] = 0
		pix[off+2] = 0
		pix[off+3] = 0
		return
	}

	// Premultiplied accumulation, un-premultiplied on store.
	dstR := float64(pix[off]) / 255
	dstG := float64(pix[off+1]) / 255
	dstB := float64(pix[off+2]) / 255

	outR := (sr*srcA + dstR*dstA*invSrcA) / outA
	outG := (sg*srcA + dstG*dstA*invSrcA) / outA
	outB := (sb*srcA + dstB*dstA*invSrcA) / outA

	pix[off] = uint8(outR*255 + 0.5)
	pix[off+1] = uint8(outG*255 + 0.5)
	pix[off+2] = uint8(outB*255 + 0.5)
	pix[off+3] = uint8(outA*255 + 0.5)
}
