// Package spiral samples visually distinguishable RGB colours along a
// logarithmic spiral through the HSV colour cylinder.
//
// 🚀 What is a colour spiral?
//
//	The spiral r = a·e^(b·θ) winds around the V axis of the HSV cylinder.
//	r is the distance from the axis (saturation), θ the angle swept (hue).
//	Stepping along the spiral in equal arc-length sections while moving
//	linearly from V=v_init to V=v_final gives a sequence of colours that
//	differ in hue, saturation and brightness at once. It is well suited to
//	categorical data: chart series, graph vertex classes, legend entries.
//
// ✨ Key features:
//   - clamp-on-assignment parameters: out-of-range values never fail
//   - lazy, single-pass Sequence of exactly k colours
//   - deterministic output when jitter is 0, or when a seed is supplied
//   - convenience helpers: Colors (k colours) and ColorMap (key → colour)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/colorspiral/spiral"
//
//	p := spiral.NewParams(spiral.WithA(4), spiral.WithJitter(0))
//	seq, err := p.Generate(8)
//	if err != nil {
//	  // ErrBadCount / ErrBadOffset (ErrPrecondition) or ErrZeroRate (ErrDomain)
//	}
//	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
//	  fmt.Println(c.Hex())
//	}
//
//	byClass, err := spiral.ColorMap([]string{"A", "B", "C"}, spiral.WithSeed(7))
//
// Saturation is used exactly as the spiral produces it. For parameter sets
// whose radius reaches 1 the RGB components may leave [0,1] by a rounding
// error (e.g. a blue channel of -1e-16). Use Color.Clamped when a strict
// gamut is required.
//
// Concurrency:
//
//	Params is an immutable value and may be shared freely. A Sequence is
//	NOT goroutine-safe; create one per goroutine. The default jitter source
//	is the process-wide math/rand generator.
//
// Inspired by Bang Wong, "Points of View: Color Coding",
// Nature Methods 7, 573 (2010).
package spiral
