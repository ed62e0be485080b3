// Package colorspiral generates visually distinguishable colours for
// categorical data — chart series, graph classes, legend entries — by
// sampling a logarithmic spiral through the HSV colour cylinder.
//
// 🚀 What is colorspiral?
//
//	A small, dependency-light toolkit that brings together:
//		• Sampling: a spiral parameter set and a lazy colour sequence
//		• Helpers: k colours at once, or a key → colour mapping
//		• Parameter files: TOML documents resolved against the defaults
//		• Rendering: PNG swatch grids and HSV-disc plots
//		• A command-line front end
//
// ✨ Why a spiral?
//
//   - Hue, saturation and brightness all change between neighbours
//   - Deterministic: no jitter (or a fixed seed) gives identical palettes
//   - Forgiving: out-of-range parameters are clamped, never rejected
//
// Everything is organized under these packages:
//
//	spiral/          — parameter set, sampling algorithm, Colors / ColorMap
//	config/          — TOML parameter files
//	swatch/          — grid and disc images (fogleman/gg)
//	cmd/colorspiral/ — CLI: text, hex or JSON output, optional PNG
//
// Quick example:
//
//	colors, err := spiral.Colors(8, spiral.WithA(4), spiral.WithJitter(0))
//
//	go get github.com/katalvlaran/colorspiral/spiral
package colorspiral
