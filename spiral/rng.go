// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// rng.go — jitter sources.
//
// Goals:
//   - Injectable: callers pass any JitterSource (a *rand.Rand satisfies it).
//   - Determinism on request: same seed ⇒ identical sequences.
//   - Ambient default: without an explicit source the process-wide math/rand
//     generator is used, so jittered output differs between runs.
//   - jitter == 0 never touches the source.
package spiral

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 to WithSeed.
const defaultRNGSeed int64 = 1

// JitterSource yields pseudo-random numbers uniformly distributed in [0,1).
type JitterSource interface {
	Float64() float64
}

// ambientSource forwards to the top-level math/rand functions, which are
// safe for concurrent use.
type ambientSource struct{}

func (ambientSource) Float64() float64 { return rand.Float64() }

// sourceOrAmbient resolves a nil source to the ambient generator.
func sourceOrAmbient(src JitterSource) JitterSource {
	if src == nil {
		return ambientSource{}
	}
	return src
}

// sampleJitter draws one value uniformly from [-amp, +amp].
// amp == 0 returns exactly 0 without consuming src.
func sampleJitter(src JitterSource, amp float64) float64 {
	if amp == 0 {
		return 0
	}
	return src.Float64()*2*amp - amp
}
