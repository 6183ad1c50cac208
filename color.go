package ink

import "image/color"

// Color is a packed 32-bit color in ARGB order: 0xAARRGGBB.
// Channels are 8-bit and stored straight (non-premultiplied).
type Color uint32

// ARGB creates a color from alpha, red, green, and blue components.
// Components outside [0, 255] are clamped; construction never fails.
func ARGB(a, r, g, b int) Color {
	return Color(uint32(clampChannel(a))<<24 |
		uint32(clampChannel(r))<<16 |
		uint32(clampChannel(g))<<8 |
		uint32(clampChannel(b)))
}

// RGB creates a fully opaque color from red, green, and blue components.
// Components outside [0, 255] are clamped; construction never fails.
func RGB(r, g, b int) Color {
	return ARGB(255, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns the same color with the alpha channel replaced.
// Alpha outside [0, 255] is clamped.
func (c Color) WithAlpha(a int) Color {
	return Color(uint32(clampChannel(a))<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to the standard library's straight-alpha type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromNRGBA creates a Color from a standard library straight-alpha color.
func FromNRGBA(c color.NRGBA) Color {
	return ARGB(int(c.A), int(c.R), int(c.G), int(c.B))
}

// rgba returns the channels as straight-alpha floats in [0, 1],
// the form the blend stage works in.
func (c Color) rgba() (r, g, b, a float64) {
	return float64(c.R()) / 255,
		float64(c.G()) / 255,
		float64(c.B()) / 255,
		float64(c.A()) / 255
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an
// optional leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return ARGB(int(a), int(r), int(g), int(b))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// clampChannel restricts a channel value to [0, 255].
func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Common colors
const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Yellow      Color = 0xFFFFFF00
	Cyan        Color = 0xFF00FFFF
	Magenta     Color = 0xFFFF00FF
	Transparent Color = 0x00000000
)
