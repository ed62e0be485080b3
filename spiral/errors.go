// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// errors.go — sentinel errors for the spiral package.
//
// Error policy:
//   • Two classes: ErrPrecondition (bad caller input to Generate) and
//     ErrDomain (a parameter set whose spiral is undefined).
//   • Every concrete sentinel wraps exactly one class, so callers may branch
//     on either the class or the concrete cause with errors.Is.
//   • Runtime errors carry method context via spiralErrorf; sentinels stay
//     free of formatted parameters.
//   • Parameter clamping never produces an error.

package spiral

import (
	"errors"
	"fmt"
)

// ErrPrecondition classifies invalid arguments to a generating call.
// No output is produced when it is returned.
var ErrPrecondition = errors.New("spiral: precondition violated")

// ErrDomain classifies parameter sets for which the spiral formula is undefined.
var ErrDomain = errors.New("spiral: domain error")

// ErrBadCount indicates k < 1 (including an empty key set for ColorMap).
var ErrBadCount = fmt.Errorf("%w: count must be positive", ErrPrecondition)

// ErrBadOffset indicates an offset outside the open interval (0,1).
var ErrBadOffset = fmt.Errorf("%w: offset must be in (0,1)", ErrPrecondition)

// ErrZeroRate indicates b == 0: the angle formula divides by b.
var ErrZeroRate = fmt.Errorf("%w: rate of revolution b is zero", ErrDomain)

// ErrZeroScale indicates a == 0: the angle formula takes ln(a).
var ErrZeroScale = fmt.Errorf("%w: scale a is zero", ErrDomain)

// ErrNonFinite indicates that the spiral angle or radius overflowed for the
// given parameter set (for example a subnormal b or an infinite a).
var ErrNonFinite = fmt.Errorf("%w: spiral angle is not finite", ErrDomain)

// Method tokens used as error context.
const (
	MethodGenerate = "Generate"
	MethodColors   = "Colors"
	MethodColorMap = "ColorMap"
)

// spiralErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
func spiralErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
