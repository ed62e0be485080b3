package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/colorspiral/config"
	"github.com/katalvlaran/colorspiral/spiral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullFile = `
a = 4.0
b = 0.33
v_init = 0.9
v_final = 0.4
jitter = 0.0
offset = 0.2
seed = 42
`

// TestParse_Full decodes every key and resolves Params.
func TestParse_Full(t *testing.T) {
	f, err := config.Parse([]byte(fullFile))
	require.NoError(t, err)

	p := f.Params()
	assert.Equal(t, 4.0, p.A())
	assert.Equal(t, 0.33, p.B())
	assert.Equal(t, 0.9, p.VInit())
	assert.Equal(t, 0.4, p.VFinal())
	assert.Equal(t, 0.0, p.Jitter())
	require.NotNil(t, f.Offset)
	assert.Equal(t, 0.2, *f.Offset)
	require.NotNil(t, f.Seed)
	assert.Equal(t, int64(42), *f.Seed)

	seq, err := spiral.Generate(spiral.DefaultParams(), 4, f.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 0.2, seq.Offset())
	assert.Equal(t, p, seq.Params())
}

// TestParse_PartialKeepsDefaults leaves absent keys at their defaults.
func TestParse_PartialKeepsDefaults(t *testing.T) {
	f, err := config.Parse([]byte("a = 2.0\n"))
	require.NoError(t, err)

	p := f.Params()
	assert.Equal(t, 2.0, p.A())
	assert.Equal(t, spiral.DefaultB, p.B())
	assert.Equal(t, spiral.DefaultJitter, p.Jitter())
	assert.Nil(t, f.Offset)
	assert.Len(t, f.Options(), 1)
}

// TestParse_ClampsLikeOptions keeps clamping semantics for file values.
func TestParse_ClampsLikeOptions(t *testing.T) {
	f, err := config.Parse([]byte("v_init = -1.0\na = -5.0\njitter = 2.0\n"))
	require.NoError(t, err)

	p := f.Params()
	assert.Equal(t, 0.0, p.VInit())
	assert.Equal(t, 0.0, p.A())
	assert.Equal(t, 1.0, p.Jitter())
}

// TestParse_SeedZeroIsUnseeded treats seed = 0 like an absent key.
func TestParse_SeedZeroIsUnseeded(t *testing.T) {
	f, err := config.Parse([]byte("seed = 0\njitter = 0.5\n"))
	require.NoError(t, err)
	assert.Len(t, f.Options(), 1, "only the jitter option is produced")

	f, err = config.Parse([]byte("seed = 3\n"))
	require.NoError(t, err)
	assert.Len(t, f.Options(), 1)
}

// TestParse_Errors rejects malformed documents and unknown keys.
func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":      "a = = 4",
		"wrong type":  `a = "four"`,
		"unknown key": "vinit = 0.9",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrParse)
		})
	}

	_, err := config.Parse([]byte("vinit = 0.9\nzeta = 1"))
	assert.ErrorContains(t, err, "unknown keys vinit, zeta")
}

// TestLoad reads from disk and reports missing files.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(fullFile), 0o644))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, f.Params().A())

	f2, err := config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, f, f2)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty, err := config.LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.File{}, empty)

	require.NoError(t, os.WriteFile(path, []byte("a = = 1"), 0o644))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrParse)
}
