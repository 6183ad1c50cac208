package ink

import "errors"

// Package-level error values. All engine errors are synchronous and local:
// they are returned to the immediate caller and carry no retry policy.
var (
	// ErrInvalidDimensions is returned by NewSurface when width or height
	// is not strictly positive.
	ErrInvalidDimensions = errors.New("ink: invalid surface dimensions")

	// ErrIllegalPathState is returned by PathBuilder segment operations
	// that require an open subpath (LineTo, QuadTo, CubicTo before any
	// MoveTo, or Close without a segment to close).
	ErrIllegalPathState = errors.New("ink: illegal path builder state")

	// ErrInvalidPaint is returned at draw time when a Paint cannot be
	// rasterized: an unknown Style, or StrokeWidth <= 0 while stroking.
	ErrInvalidPaint = errors.New("ink: invalid paint")
)
