package backdrop

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. It is the working type of the
// raster path; configurations store colors as hex strings.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// HexToRGB parses a hex color string into 8-bit channels.
// Supports "RGB" and "RRGGBB", with or without a leading '#'.
// ok is false for anything else; callers treat that as black.
func HexToRGB(hex string) (r, g, b uint8, ok bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var rv, gv, bv uint32
	switch len(hex) {
	case 3:
		if !parseHex(hex[0:1], &rv) || !parseHex(hex[1:2], &gv) || !parseHex(hex[2:3], &bv) {
			return 0, 0, 0, false
		}
		rv, gv, bv = rv*17, gv*17, bv*17
	case 6:
		if !parseHex(hex[0:2], &rv) || !parseHex(hex[2:4], &gv) || !parseHex(hex[4:6], &bv) {
			return 0, 0, 0, false
		}
	default:
		return 0, 0, 0, false
	}

	return uint8(rv), uint8(gv), uint8(bv), true
}

// Hex creates a color from a hex string such as "#8B5CF6".
// Malformed input yields opaque black, matching the forgiving behavior
// of the CSS path.
func Hex(hex string) RGBA {
	r, g, b, ok := HexToRGB(hex)
	if !ok {
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// HexString formats the color as an uppercase "#RRGGBB" string.
// Alpha is dropped: configuration colors are always opaque.
func (c RGBA) HexString() string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)))
}

// parseHex accumulates a hex substring into val, reporting success.
func parseHex(s string, val *uint32) bool {
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
			return false
		}
	}
	return true
}

// Lerp performs channel-wise linear interpolation between two colors.
// Gradient wedge fills and noise synthesis both blend through here.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
// The seeded gradient generator synthesizes its palettes through HSL.
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}
