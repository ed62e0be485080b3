// SPDX-License-Identifier: MIT
// Package: colorspiral/spiral
//
// colors.go — convenience wrappers for callers that do not need a Sequence.

package spiral

import "fmt"

// Colors returns k colours sampled with DefaultParams overridden by opts.
//
// Example:
//
//	cs, err := spiral.Colors(5, spiral.WithJitter(0))
func Colors(k int, opts ...Option) ([]Color, error) {
	seq, err := Generate(DefaultParams(), k, opts...)
	if err != nil {
		return nil, rebrand(MethodColors, err)
	}
	return seq.Collect(), nil
}

// ColorMap assigns one colour to each key, in slice order, from a single
// sequence of len(keys) colours. A repeated key keeps the colour of its
// last occurrence. An empty key slice fails with ErrBadCount.
//
// Example:
//
//	byClass, err := spiral.ColorMap([]string{"A", "B", "C", "D"}, spiral.WithJitter(0))
func ColorMap[K comparable](keys []K, opts ...Option) (map[K]Color, error) {
	seq, err := Generate(DefaultParams(), len(keys), opts...)
	if err != nil {
		return nil, rebrand(MethodColorMap, err)
	}
	out := make(map[K]Color, len(keys))
	for i, c := range seq.All() {
		out[keys[i]] = c
	}
	return out, nil
}

// rebrand prefixes a Generate error with the wrapper's method token.
func rebrand(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
