// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// color.go — RGB and HSV colour points.

package spiral

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple. Components are NOT clamped: a saturation that
// reaches 1 through rounding can leave a component a hair below 0.
type Color struct {
	R, G, B float64
}

// RGB returns the three components.
func (c Color) RGB() (r, g, b float64) {
	return c.R, c.G, c.B
}

// Colorful converts c to a go-colorful colour without clamping.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Clamped returns c with every component forced into [0,1].
func (c Color) Clamped() Color {
	return Color{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B)}
}

// Hex renders the clamped colour as "#rrggbb".
func (c Color) Hex() string {
	return c.Clamped().Colorful().Hex()
}

// RGBA implements image/color.Color on the clamped colour, alpha 1.
func (c Color) RGBA() (r, g, b, a uint32) {
	r, g, b, _ = c.Clamped().Colorful().RGBA()
	return r, g, b, 0xffff
}

// HSV is a point in the HSV cylinder: hue as a fraction of a turn in [0,1),
// saturation (the spiral radius, unclamped) and value in [0,1].
type HSV struct {
	H, S, V float64
}

// RGB converts the point with the standard HSV → RGB transform.
func (p HSV) RGB() Color {
	deg := p.H * 360
	if deg >= 360 {
		deg = math.Mod(deg, 360)
	}
	c := colorful.Hsv(deg, p.S, p.V)
	return Color{R: c.R, G: c.G, B: c.B}
}

// ToHSV converts c back into the HSV cylinder (hue as a fraction of a turn).
func (c Color) ToHSV() HSV {
	h, s, v := c.Colorful().Hsv()
	return HSV{H: h / 360, S: s, V: v}
}
