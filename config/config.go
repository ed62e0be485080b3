// SPDX-License-Identifier: MIT
// Package: colorspiral/config
//
// config.go — TOML parameter files.

// Package config loads spiral parameters from TOML files.
//
// A file may set any subset of the keys below; absent keys keep the
// spiral package defaults. Out-of-range values are clamped by the spiral
// package exactly as if they were passed to the With* options.
//
//	a       = 4.0
//	b       = 0.33
//	v_init  = 0.85
//	v_final = 0.5
//	jitter  = 0.0
//	offset  = 0.1
//	seed    = 42
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/colorspiral/spiral"
)

// DefaultFilename is looked up by LoadDir.
const DefaultFilename = "colorspiral.toml"

// ErrParse indicates a malformed or unsupported parameter file.
var ErrParse = errors.New("config: cannot parse parameter file")

// File mirrors the TOML document. Nil fields were not set.
// seed = 0 means "unseeded", the same as leaving the key out.
type File struct {
	A      *float64 `toml:"a"`
	B      *float64 `toml:"b"`
	VInit  *float64 `toml:"v_init"`
	VFinal *float64 `toml:"v_final"`
	Jitter *float64 `toml:"jitter"`
	Offset *float64 `toml:"offset"`
	Seed   *int64   `toml:"seed"`
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadDir loads DefaultFilename from dir. A missing file yields an empty
// File and no error.
func LoadDir(dir string) (File, error) {
	path := filepath.Join(dir, DefaultFilename)
	f, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return File{}, nil
	}
	return f, err
}

// Parse decodes a TOML document. Unknown keys are rejected so typos such
// as "vinit" do not silently fall back to defaults.
func Parse(data []byte) (File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return File{}, fmt.Errorf("%w: unknown keys %s", ErrParse, strings.Join(keys, ", "))
	}
	return f, nil
}

// Options converts the set fields into spiral options, in a fixed order.
func (f File) Options() []spiral.Option {
	var opts []spiral.Option
	if f.A != nil {
		opts = append(opts, spiral.WithA(*f.A))
	}
	if f.B != nil {
		opts = append(opts, spiral.WithB(*f.B))
	}
	if f.VInit != nil {
		opts = append(opts, spiral.WithVInit(*f.VInit))
	}
	if f.VFinal != nil {
		opts = append(opts, spiral.WithVFinal(*f.VFinal))
	}
	if f.Jitter != nil {
		opts = append(opts, spiral.WithJitter(*f.Jitter))
	}
	if f.Offset != nil {
		opts = append(opts, spiral.WithOffset(*f.Offset))
	}
	if f.Seed != nil && *f.Seed != 0 {
		opts = append(opts, spiral.WithSeed(*f.Seed))
	}
	return opts
}

// Params resolves the file against the spiral defaults.
func (f File) Params() spiral.Params {
	return spiral.NewParams(f.Options()...)
}
