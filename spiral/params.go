// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// params.go — the spiral parameter set.
//
// Contract:
//   • Params is an immutable value. Every Set* method returns a new value.
//   • Every assignment clamps into the field's domain; nothing ever fails:
//       a, b            → [0, +∞)
//       vInit, vFinal   → [0, 1]
//       jitter          → [0, 1]
//   • NaN clamps to the lower bound of the domain.
//   • b == 0 and a == 0 are representable; Generate rejects them with ErrDomain.

package spiral

import (
	"fmt"
	"math"
)

// Deterministic defaults.
const (
	DefaultA      = 1.0  // initial spiral direction / radius scale
	DefaultB      = 0.33 // rate of revolution
	DefaultVInit  = 0.85 // brightness at the start of the path
	DefaultVFinal = 0.5  // brightness at the end of the path
	DefaultJitter = 0.05 // amplitude of per-point brightness noise
)

// Params holds the shape and brightness controls of a spiral.
// The zero value is a valid but degenerate set (a = b = 0); use NewParams
// or DefaultParams to start from the documented defaults.
type Params struct {
	a      float64
	b      float64
	vInit  float64
	vFinal float64
	jitter float64
}

// DefaultParams returns a=1, b=0.33, v_init=0.85, v_final=0.5, jitter=0.05.
func DefaultParams() Params {
	return Params{
		a:      DefaultA,
		b:      DefaultB,
		vInit:  DefaultVInit,
		vFinal: DefaultVFinal,
		jitter: DefaultJitter,
	}
}

// NewParams starts from DefaultParams and applies opts in order (last wins).
// Generation-only options (WithOffset, WithSeed, WithRand) are ignored here.
func NewParams(opts ...Option) Params {
	return newSettings(DefaultParams(), opts...).params
}

// A controls the initial direction and radius scale of the spiral.
func (p Params) A() float64 { return p.a }

// B controls the rate at which the spiral revolves around the V axis.
func (p Params) B() float64 { return p.b }

// VInit is the brightness at the start of the path.
func (p Params) VInit() float64 { return p.vInit }

// VFinal is the brightness at the end of the path.
func (p Params) VFinal() float64 { return p.vFinal }

// Jitter is the amplitude of the uniform brightness noise added per point.
func (p Params) Jitter() float64 { return p.jitter }

// SetA returns a copy of p with a = max(0, v).
func (p Params) SetA(v float64) Params {
	p.a = clampMin(v, 0)
	return p
}

// SetB returns a copy of p with b = max(0, v).
func (p Params) SetB(v float64) Params {
	p.b = clampMin(v, 0)
	return p
}

// SetVInit returns a copy of p with v_init clamped into [0,1].
func (p Params) SetVInit(v float64) Params {
	p.vInit = clampUnit(v)
	return p
}

// SetVFinal returns a copy of p with v_final clamped into [0,1].
func (p Params) SetVFinal(v float64) Params {
	p.vFinal = clampUnit(v)
	return p
}

// SetJitter returns a copy of p with jitter clamped into [0,1].
func (p Params) SetJitter(v float64) Params {
	p.jitter = clampUnit(v)
	return p
}

// Generate is shorthand for Generate(p, k, opts...).
func (p Params) Generate(k int, opts ...Option) (*Sequence, error) {
	return Generate(p, k, opts...)
}

// String renders the parameter set for diagnostics.
func (p Params) String() string {
	return fmt.Sprintf("Params{a=%g b=%g v_init=%g v_final=%g jitter=%g}",
		p.a, p.b, p.vInit, p.vFinal, p.jitter)
}

// clampMin returns max(lo, v); NaN maps to lo.
func clampMin(v, lo float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	return v
}

// clampUnit returns v clamped into [0,1]; NaN maps to 0.
func clampUnit(v float64) float64 {
	v = clampMin(v, 0)
	if v > 1 {
		return 1
	}
	return v
}
