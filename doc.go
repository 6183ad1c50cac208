// Package ink is a CPU 2D vector-graphics rasterization engine.
//
// # Overview
//
// ink renders filled and stroked vector paths into an RGBA8 pixel
// buffer. Paths are built with a PathBuilder, rendering is controlled
// by a Paint (solid color, fill or stroke, optional anti-aliasing),
// and a Surface owns the pixels and the draw calls.
//
// # Quick Start
//
//	import "github.com/softraster/ink"
//
//	surface, err := ink.NewSurface(800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	surface.Clear(ink.White)
//
//	paint := ink.NewPaint()
//	paint.Color = ink.RGB(220, 60, 40)
//	surface.DrawCircle(400, 300, 120, paint)
//
//	surface.SavePNG("output.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, Path, PathBuilder, Paint, Color, Matrix, Point
//   - Internal: raster (scanline coverage), path (flattening), stroke
//     (stroke-to-fill expansion), blend (source-over compositing)
//
// All drawing is synchronous: every draw call completes before it
// returns, and pixels reflect all completed calls in order. A Surface
// is not safe for concurrent use; paths and colors are immutable and
// may be shared freely.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers the square [x, x+1) x [y, y+1); its center is
//     (x+0.5, y+0.5)
package ink
