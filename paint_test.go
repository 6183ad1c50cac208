package ink

import (
	"errors"
	"testing"
)

// TestNewPaint tests the NewPaint defaults.
func TestNewPaint(t *testing.T) {
	p := NewPaint()

	if p.Color != Black {
		t.Errorf("Color = %#08x, want Black", uint32(p.Color))
	}
	if p.Style != StyleFill {
		t.Errorf("Style = %v, want StyleFill", p.Style)
	}
	if p.StrokeWidth != 1.0 {
		t.Errorf("StrokeWidth = %v, want 1.0", p.StrokeWidth)
	}
	if !p.AntiAlias {
		t.Error("AntiAlias = false, want true")
	}
}

// TestPaintClone tests that Clone produces an independent copy.
func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.Color = Red
	p.StrokeWidth = 5

	clone := p.Clone()
	if clone.Color != p.Color || clone.StrokeWidth != p.StrokeWidth {
		t.Errorf("clone = %+v, want copy of %+v", clone, p)
	}

	clone.StrokeWidth = 10
	if p.StrokeWidth == clone.StrokeWidth {
		t.Error("Clone is not independent")
	}
}

// TestPaintValidate tests draw-time paint constraints.
func TestPaintValidate(t *testing.T) {
	t.Run("fill is valid", func(t *testing.T) {
		p := NewPaint()
		if err := p.validate(); err != nil {
			t.Errorf("validate() = %v, want nil", err)
		}
	})

	t.Run("stroke needs positive width", func(t *testing.T) {
		p := NewPaint()
		p.Style = StyleStroke
		p.StrokeWidth = 0
		if err := p.validate(); !errors.Is(err, ErrInvalidPaint) {
			t.Errorf("validate() = %v, want ErrInvalidPaint", err)
		}

		p.StrokeWidth = 2
		if err := p.validate(); err != nil {
			t.Errorf("validate() = %v, want nil", err)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		p := NewPaint()
		p.Style = Style(99)
		if err := p.validate(); !errors.Is(err, ErrInvalidPaint) {
			t.Errorf("validate() = %v, want ErrInvalidPaint", err)
		}
	})
}

// TestStyleString tests the Style name formatting.
func TestStyleString(t *testing.T) {
	if got := StyleFill.String(); got != "Fill" {
		t.Errorf("StyleFill.String() = %q, want Fill", got)
	}
	if got := StyleStroke.String(); got != "Stroke" {
		t.Errorf("StyleStroke.String() = %q, want Stroke", got)
	}
	if got := Style(7).String(); got != "Style(7)" {
		t.Errorf("Style(7).String() = %q, want Style(7)", got)
	}
}
