package ink

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/softraster/ink/internal/blend"
	ipath "github.com/softraster/ink/internal/path"
	"github.com/softraster/ink/internal/raster"
	"github.com/softraster/ink/internal/stroke"
)

// Surface is an RGBA8 pixel buffer with draw operations. Pixels are
// stored row-major from the top-left corner, four bytes per pixel in
// R, G, B, A order with straight (non-premultiplied) alpha.
//
// All drawing is synchronous and applied in call order with
// source-over compositing. A Surface owns its buffer exclusively and
// is not safe for concurrent use.
type Surface struct {
	width  int
	height int
	pix    []uint8
	rast   *raster.Rasterizer
}

// NewSurface creates a surface of the given size with all pixels
// transparent black. Non-positive dimensions yield
// ErrInvalidDimensions and no allocation.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
		rast:   raster.New(width, height),
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Clear overwrites every pixel with the given color. No blending is
// applied: after Clear every pixel holds exactly the color's channel
// values.
func (s *Surface) Clear(c Color) {
	r, g, b, a := c.R(), c.G(), c.B(), c.A()
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i] = r
		s.pix[i+1] = g
		s.pix[i+2] = b
		s.pix[i+3] = a
	}
}

// Pixels returns the surface's live pixel buffer of length
// width*height*4. The slice aliases the surface's storage: it remains
// valid for the surface's lifetime and reflects subsequent draws.
// Callers must not modify it while drawing; use PixelsCopy for an
// owned snapshot.
func (s *Surface) Pixels() []uint8 {
	return s.pix
}

// PixelsCopy returns an independent copy of the pixel buffer.
func (s *Surface) PixelsCopy() []uint8 {
	out := make([]uint8, len(s.pix))
	copy(out, s.pix)
	return out
}

// SetPixel writes one pixel directly, without blending. Out-of-bounds
// coordinates are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	off := (y*s.width + x) * 4
	s.pix[off] = c.R()
	s.pix[off+1] = c.G()
	s.pix[off+2] = c.B()
	s.pix[off+3] = c.A()
}

// GetPixel reads one pixel. Out-of-bounds coordinates yield
// Transparent.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	off := (y*s.width + x) * 4
	return ARGB(int(s.pix[off+3]), int(s.pix[off]), int(s.pix[off+1]), int(s.pix[off+2]))
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y).NRGBA()
}

// ToImage returns the surface contents as a new image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	copy(img.Pix, s.pix)
	return img
}

// SavePNG writes the surface contents to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, s.ToImage()); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// DrawPath renders a path with the given paint. Geometry outside the
// surface is clipped; a path entirely outside draws nothing and
// returns nil.
func (s *Surface) DrawPath(path *Path, paint *Paint) error {
	if err := paint.validate(); err != nil {
		Logger().Debug("draw rejected", "err", err)
		return err
	}
	if path == nil || path.IsEmpty() {
		return nil
	}

	elements := path.toInternal()
	if paint.Style == StyleStroke {
		s.strokeElements(elements, paint)
	} else {
		s.fillElements(elements, paint)
	}
	return nil
}

// DrawRect renders an axis-aligned rectangle with corners
// (left, top) and (right, bottom).
func (s *Surface) DrawRect(left, top, right, bottom float64, paint *Paint) error {
	b := NewPathBuilder()
	b.AddRect(left, top, right, bottom)
	return s.DrawPath(b.Build(), paint)
}

// DrawCircle renders a circle centered at (cx, cy) with radius r.
// A non-positive radius draws nothing.
func (s *Surface) DrawCircle(cx, cy, r float64, paint *Paint) error {
	if err := paint.validate(); err != nil {
		Logger().Debug("draw rejected", "err", err)
		return err
	}
	if r <= 0 {
		return nil
	}
	b := NewPathBuilder()
	b.AddCircle(cx, cy, r)
	return s.DrawPath(b.Build(), paint)
}

// DrawOval renders an oval inscribed in the rectangle
// (left, top, right, bottom).
func (s *Surface) DrawOval(left, top, right, bottom float64, paint *Paint) error {
	b := NewPathBuilder()
	b.AddOval(left, top, right, bottom)
	return s.DrawPath(b.Build(), paint)
}

// DrawLine renders a line segment from (x0, y0) to (x1, y1). A line is
// always stroked with the paint's StrokeWidth, regardless of the
// paint's Style; a non-positive width yields ErrInvalidPaint.
func (s *Surface) DrawLine(x0, y0, x1, y1 float64, paint *Paint) error {
	if paint.StrokeWidth <= 0 {
		err := fmt.Errorf("stroke width %v: %w", paint.StrokeWidth, ErrInvalidPaint)
		Logger().Debug("draw rejected", "err", err)
		return err
	}
	elements := []ipath.PathElement{
		ipath.MoveTo{Point: ipath.Point{X: x0, Y: y0}},
		ipath.LineTo{Point: ipath.Point{X: x1, Y: y1}},
	}
	s.strokeElements(elements, paint)
	return nil
}

// fillElements rasterizes fill geometry and composites the coverage.
func (s *Surface) fillElements(elements []ipath.PathElement, paint *Paint) {
	edges := ipath.CollectEdges(elements)
	if len(edges) == 0 {
		Logger().Debug("nothing to draw", "elements", len(elements))
		return
	}

	sr, sg, sb, sa := paint.Color.rgba()
	bl := &spanBlitter{
		pix:    s.pix,
		stride: s.width * 4,
		src:    paint.Color,
		sr:     sr, sg: sg, sb: sb, sa: sa,
		opaque: paint.Color.A() == 255,
	}

	if paint.AntiAlias {
		s.rast.FillAA(edges, raster.FillRuleNonZero, bl)
	} else {
		s.rast.Fill(edges, raster.FillRuleNonZero, bl)
	}
}

// strokeElements expands stroke geometry to a fill outline and fills it.
// Strokes use butt caps and miter joins with limit 4.
func (s *Surface) strokeElements(elements []ipath.PathElement, paint *Paint) {
	exp := stroke.NewExpander(stroke.Style{
		Width:      paint.StrokeWidth,
		Cap:        stroke.CapButt,
		Join:       stroke.JoinMiter,
		MiterLimit: 4,
	})
	s.fillElements(exp.Expand(elements), paint)
}

// spanBlitter composites rasterizer coverage spans into the surface
// buffer. Spans arrive already clipped to the surface.
type spanBlitter struct {
	pix            []uint8
	stride         int
	src            Color
	sr, sg, sb, sa float64
	opaque         bool
}

// BlitSpan implements raster.Blitter.
func (b *spanBlitter) BlitSpan(x, y, width int, alpha uint8) {
	off := y*b.stride + x*4

	// Full coverage with an opaque source stores the color exactly.
	if alpha == 255 && b.opaque {
		r, g, bb, a := b.src.R(), b.src.G(), b.src.B(), b.src.A()
		for i := 0; i < width; i++ {
			b.pix[off] = r
			b.pix[off+1] = g
			b.pix[off+2] = bb
			b.pix[off+3] = a
			off += 4
		}
		return
	}

	for i := 0; i < width; i++ {
		blend.SourceOver(b.pix, off, b.sr, b.sg, b.sb, b.sa, alpha)
		off += 4
	}
}
