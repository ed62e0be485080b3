// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// generate.go — sampling k points along the spiral.

package spiral

import "math"

const twoPi = 2 * math.Pi

// Generate — sample k colours along the logarithmic spiral.
//
// Description:
//
//	The arc length of the spiral is divided into k equal sections and one
//	point is taken per section, skipping the first offset·k sections so the
//	path starts away from the weakly saturated cylinder axis.
//
// Algorithm Outline (n = 1..k):
//  1. t = (1/b)·(ln(n + k·offset) − ln((1+offset)·k·a))   angle swept
//  2. h = (t mod 2π) / 2π ∈ [0,1)                           hue
//  3. s = a·e^(b·t)                                         saturation, unclamped
//  4. v = v_init + (n·(v_final−v_init)/k + U(−jitter, +jitter)), clamped into [0,1]
//  5. (h, s, v) → RGB
//
// Errors (checked before any output is produced):
//   - ErrBadCount   — k < 1.
//   - ErrBadOffset  — offset ∉ (0,1).
//   - ErrZeroRate   — b == 0.
//   - ErrZeroScale  — a == 0.
//   - ErrNonFinite  — the angle overflows for this parameter set.
//
// Options given here override the matching fields of p.
//
// Complexity: O(1) per call; O(1) per colour drawn from the Sequence.
func Generate(p Params, k int, opts ...Option) (*Sequence, error) {
	s := newSettings(p, opts...)
	p = s.params

	if k < 1 {
		return nil, spiralErrorf(MethodGenerate, ErrBadCount, "k=%d", k)
	}
	if !(s.offset > 0 && s.offset < 1) {
		return nil, spiralErrorf(MethodGenerate, ErrBadOffset, "offset=%g", s.offset)
	}
	if p.b == 0 {
		return nil, spiralErrorf(MethodGenerate, ErrZeroRate, "%s", p)
	}
	if p.a == 0 {
		return nil, spiralErrorf(MethodGenerate, ErrZeroScale, "%s", p)
	}

	seq := &Sequence{
		params: p,
		k:      k,
		offset: s.offset,
		src:    sourceOrAmbient(s.src),
		vRate:  (p.vFinal - p.vInit) / float64(k),
		logA:   math.Log(p.a),
		logRef: math.Log((1 + s.offset) * float64(k) * p.a),
	}
	// t is monotonic in n, so the end points bound every angle.
	for _, n := range [2]int{1, k} {
		t := seq.angle(n)
		if r := seq.radius(t); !isFinite(t) || !isFinite(r) {
			return nil, spiralErrorf(MethodGenerate, ErrNonFinite, "%s, n=%d", p, n)
		}
	}

	return seq, nil
}

// angle returns t for the 1-based index n.
func (s *Sequence) angle(n int) float64 {
	return (1 / s.params.b) * (math.Log(float64(n)+float64(s.k)*s.offset) - s.logRef)
}

// radius returns a·e^(b·t), folded into one exponent so a tiny a cannot
// overflow e^(b·t) before the product is taken.
func (s *Sequence) radius(t float64) float64 {
	return math.Exp(s.params.b*t + s.logA)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// point computes the HSV point for the 1-based index n, drawing jitter.
func (s *Sequence) point(n int) HSV {
	t := s.angle(n)
	return HSV{
		H: hueOf(t),
		S: s.radius(t),
		V: clampUnit(s.params.vInit + (float64(n)*s.vRate + sampleJitter(s.src, s.params.jitter))),
	}
}

// hueOf reduces the angle t into [0, 2π) and expresses it as a fraction of a turn.
func hueOf(t float64) float64 {
	h := math.Mod(t, twoPi)
	if h < 0 {
		h += twoPi
	}
	if h >= twoPi {
		h = 0
	}
	return h / twoPi
}
