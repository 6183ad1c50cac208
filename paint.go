package ink

import "fmt"

// Style selects how a shape's geometry is rendered.
type Style int

const (
	// StyleFill fills the interior of the shape.
	StyleFill Style = iota
	// StyleStroke outlines the shape with a stroke of Paint.StrokeWidth.
	StyleStroke
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case StyleFill:
		return "Fill"
	case StyleStroke:
		return "Stroke"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Paint describes how geometry is rendered: the source color, whether the
// shape is filled or stroked, the stroke width, and anti-aliasing.
// Paint is a plain mutable value; fields may be set directly between draw
// calls. Constraints are checked when the paint is used, not when it is set.
type Paint struct {
	// Color is the solid source color, straight alpha.
	Color Color

	// Style selects fill or stroke rendering.
	Style Style

	// StrokeWidth is the total stroke width in pixels. It is only
	// consulted when Style is StyleStroke (and by Surface.DrawLine),
	// where it must be positive.
	StrokeWidth float64

	// AntiAlias enables 4x4 supersampled edge coverage. When false,
	// every pixel receives either full or zero coverage.
	AntiAlias bool
}

// NewPaint returns a paint with the default settings: opaque black,
// fill style, stroke width 1, anti-aliasing enabled.
func NewPaint() *Paint {
	return &Paint{
		Color:       Black,
		Style:       StyleFill,
		StrokeWidth: 1,
		AntiAlias:   true,
	}
}

// Clone returns an independent copy of the paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}

// validate checks the paint's field constraints at draw time.
func (p *Paint) validate() error {
	switch p.Style {
	case StyleFill:
	case StyleStroke:
		if p.StrokeWidth <= 0 {
			return fmt.Errorf("stroke width %v: %w", p.StrokeWidth, ErrInvalidPaint)
		}
	default:
		return fmt.Errorf("unknown style %d: %w", int(p.Style), ErrInvalidPaint)
	}
	return nil
}
