// Package swatch renders spiral colours as images.
//
// Two layouts mirror the usual ways of inspecting a categorical palette:
//
//   - Grid: one square cell per colour, row by row. Good for eyeballing how
//     distinguishable neighbouring colours are (e.g. 625 jittered colours in a
//     25×25 grid).
//   - Disc: each colour is placed back on the HSV disc at polar coordinates
//     (saturation, hue), showing the path of the spiral itself.
//
// Images are drawn with github.com/fogleman/gg and can be written as PNG or
// returned as a base64 string for embedding.
//
//	colors, _ := spiral.Colors(16, spiral.WithA(4), spiral.WithJitter(0))
//	img, err := swatch.Disc(colors, swatch.WithSize(600))
//	_ = swatch.EncodePNG(w, img)
package swatch
