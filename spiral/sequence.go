// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// sequence.go — the lazy, single-pass colour iterator returned by Generate.

package spiral

import "iter"

// Sequence yields exactly Len() colours, one per call to Next, and is then
// exhausted for good. Another pass requires another call to Generate; with
// jitter 0 (or the same seed) it reproduces the same values bit for bit.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	params Params
	k      int
	offset float64
	src    JitterSource

	vRate  float64 // (v_final − v_init) / k
	logA   float64 // ln(a)
	logRef float64 // ln((1+offset)·k·a)

	n int // last emitted 1-based index
}

// Params returns the parameter set the sequence was generated from.
func (s *Sequence) Params() Params { return s.params }

// Offset returns the starting offset along the path.
func (s *Sequence) Offset() float64 { return s.offset }

// Len is the total number of colours, k.
func (s *Sequence) Len() int { return s.k }

// Remaining is the number of colours not yet drawn.
func (s *Sequence) Remaining() int { return s.k - s.n }

// NextHSV advances and returns the next point in HSV space.
func (s *Sequence) NextHSV() (HSV, bool) {
	if s.n >= s.k {
		return HSV{}, false
	}
	s.n++
	return s.point(s.n), true
}

// Next advances and returns the next colour.
func (s *Sequence) Next() (Color, bool) {
	p, ok := s.NextHSV()
	if !ok {
		return Color{}, false
	}
	return p.RGB(), true
}

// All returns an iterator over the remaining colours with their 0-based
// position in the full sequence. Ranging over it consumes the sequence.
func (s *Sequence) All() iter.Seq2[int, Color] {
	return func(yield func(int, Color) bool) {
		for {
			i := s.n
			c, ok := s.Next()
			if !ok || !yield(i, c) {
				return
			}
		}
	}
}

// Collect drains the remaining colours into a slice.
func (s *Sequence) Collect() []Color {
	out := make([]Color, 0, s.Remaining())
	for c, ok := s.Next(); ok; c, ok = s.Next() {
		out = append(out, c)
	}
	return out
}
