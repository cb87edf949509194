package core

import "math"

// Color is a linear RGB triple
type Color struct {
	R, G, B float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
	Gray  = Color{0.5, 0.5, 0.5}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// GrayLevel returns a color with all channels set to v
func GrayLevel(v float64) Color {
	return Color{v, v, v}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color multiplied by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Max returns the largest channel
func (c Color) Max() float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

// MaxToOne rescales all channels together so that the largest is at most 1.
// Hue is preserved, unlike per-channel clipping.
func (c Color) MaxToOne() Color {
	m := c.Max()
	if m > 1 {
		return c.Scale(1 / m)
	}
	return c
}

// RGB8 converts the color to 8-bit channels, truncating like a plain cast.
// Channels are expected to be in [0, 1] already.
func (c Color) RGB8() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// Pack returns the color as a 0x00RRGGBB word
func (c Color) Pack() uint32 {
	r, g, b := c.RGB8()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a 0x00RRGGBB word into its channels
func Unpack(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// toByte maps [0, 1] to [0, 255]. Negative and NaN inputs become 0 so that
// degenerate shading shows up as black instead of wrapping.
func toByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
