// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// options.go — functional options shared by NewParams, Generate, Colors and ColorMap.
//
// Contract:
//   • Option is a single functional type; parameter options and generation
//     options mix freely and apply in order (later overrides earlier).
//   • Parameter options clamp, they never panic.
//   • WithRand panics on nil to surface programmer error early.
//   • Determinism is explicit: WithSeed or WithRand; otherwise the ambient
//     math/rand generator drives jitter.

package spiral

import "math/rand"

// DefaultOffset is the fraction of the path skipped before the first sample,
// avoiding weakly saturated colours near the cylinder axis.
const DefaultOffset = 0.1

// Option customizes a parameter set or a generating call.
type Option func(*settings)

// settings aggregates every knob consumed by Generate.
type settings struct {
	params Params
	offset float64
	src    JitterSource // nil → ambient generator
}

// newSettings starts from p and DefaultOffset and applies opts in order.
func newSettings(p Params, opts ...Option) settings {
	s := settings{params: p, offset: DefaultOffset}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithA sets a (clamped to ≥0).
func WithA(v float64) Option {
	return func(s *settings) { s.params = s.params.SetA(v) }
}

// WithB sets b (clamped to ≥0).
func WithB(v float64) Option {
	return func(s *settings) { s.params = s.params.SetB(v) }
}

// WithVInit sets the initial brightness (clamped into [0,1]).
func WithVInit(v float64) Option {
	return func(s *settings) { s.params = s.params.SetVInit(v) }
}

// WithVFinal sets the final brightness (clamped into [0,1]).
func WithVFinal(v float64) Option {
	return func(s *settings) { s.params = s.params.SetVFinal(v) }
}

// WithJitter sets the brightness jitter amplitude (clamped into [0,1]).
func WithJitter(v float64) Option {
	return func(s *settings) { s.params = s.params.SetJitter(v) }
}

// WithParams replaces the whole parameter set.
func WithParams(p Params) Option {
	return func(s *settings) { s.params = p }
}

// WithOffset sets how far along the path sampling starts.
// The value is validated by Generate, not here: it must lie in (0,1).
func WithOffset(offset float64) Option {
	return func(s *settings) { s.offset = offset }
}

// WithRand provides an explicit jitter source. Panics on nil.
// A *rand.Rand is not goroutine-safe; do not share it between sequences
// consumed concurrently.
func WithRand(src JitterSource) Option {
	if src == nil {
		panic("spiral: WithRand(nil)")
	}
	return func(s *settings) { s.src = src }
}

// WithSeed creates a deterministic jitter source from seed.
// Seed 0 selects defaultRNGSeed.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.src = rngFromSeed(seed) }
}

// WithAmbientRand drops any source set by earlier options, so jitter is
// drawn from the process-wide math/rand generator again.
func WithAmbientRand() Option {
	return func(s *settings) { s.src = nil }
}

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
