// SPDX-License-Identifier: MIT
// Package: colorspiral/swatch
//
// swatch.go — grid and disc layouts.

package swatch

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"math/cmplx"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/colorspiral/spiral"
)

var (
	// ErrNoColors indicates an empty colour list.
	ErrNoColors = errors.New("swatch: no colours to draw")

	// ErrBadSize indicates a non-positive cell, column or image size.
	ErrBadSize = errors.New("swatch: size must be positive")
)

// Defaults.
const (
	DefaultCell    = 20   // grid cell edge in px
	DefaultColumns = 25   // grid cells per row
	DefaultSize    = 595  // disc image edge in px
	discReach      = 0.45 // saturation 1 lands at this fraction of the edge
	dotRadius      = 0.025
)

// Option customizes a layout.
type Option func(*layout)

type layout struct {
	cell       int
	columns    int
	size       int
	background color.Color
}

func newLayout(opts ...Option) layout {
	l := layout{
		cell:       DefaultCell,
		columns:    DefaultColumns,
		size:       DefaultSize,
		background: color.White,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// WithCell sets the grid cell edge in pixels.
func WithCell(px int) Option {
	return func(l *layout) { l.cell = px }
}

// WithColumns sets the number of grid cells per row.
func WithColumns(n int) Option {
	return func(l *layout) { l.columns = n }
}

// WithSize sets the edge of the square disc image in pixels.
func WithSize(px int) Option {
	return func(l *layout) { l.size = px }
}

// WithBackground sets the canvas colour. Panics on nil.
func WithBackground(c color.Color) Option {
	if c == nil {
		panic("swatch: WithBackground(nil)")
	}
	return func(l *layout) { l.background = c }
}

// Grid draws colours as square cells, left to right, top to bottom.
// The image is min(n, columns)·cell wide and ⌈n/columns⌉·cell tall.
func Grid(colors []spiral.Color, opts ...Option) (image.Image, error) {
	l := newLayout(opts...)
	if len(colors) == 0 {
		return nil, fmt.Errorf("Grid: %w", ErrNoColors)
	}
	if l.cell <= 0 || l.columns <= 0 {
		return nil, fmt.Errorf("Grid: cell=%d columns=%d: %w", l.cell, l.columns, ErrBadSize)
	}

	cols := min(len(colors), l.columns)
	rows := (len(colors) + l.columns - 1) / l.columns
	dc := gg.NewContext(cols*l.cell, rows*l.cell)
	dc.SetColor(l.background)
	dc.Clear()

	edge := float64(l.cell)
	for i, c := range colors {
		x := float64(i%l.columns) * edge
		y := float64(i/l.columns) * edge
		dc.SetColor(c)
		dc.DrawRectangle(x, y, edge, edge)
		dc.Fill()
	}
	return dc.Image(), nil
}

// Disc plots each colour on the HSV disc: angle = hue, distance from the
// centre = saturation·0.45·size.
func Disc(colors []spiral.Color, opts ...Option) (image.Image, error) {
	l := newLayout(opts...)
	if len(colors) == 0 {
		return nil, fmt.Errorf("Disc: %w", ErrNoColors)
	}
	if l.size <= 0 {
		return nil, fmt.Errorf("Disc: size=%d: %w", l.size, ErrBadSize)
	}

	dc := gg.NewContext(l.size, l.size)
	dc.SetColor(l.background)
	dc.Clear()

	for _, c := range colors {
		x, y := DiscPosition(c, l.size)
		dc.SetColor(c)
		dc.DrawCircle(x, y, float64(l.size)*dotRadius)
		dc.Fill()
	}
	return dc.Image(), nil
}

// DiscPosition returns the image coordinates of c on a disc of the given
// edge. Hue grows counter-clockwise from the positive x axis.
func DiscPosition(c spiral.Color, size int) (x, y float64) {
	p := c.ToHSV()
	edge := float64(size)
	z := cmplx.Rect(p.S*edge*discReach, p.H*2*math.Pi)
	return edge/2 + real(z), edge/2 - imag(z)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Base64PNG returns img as a base64-encoded PNG.
func Base64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
