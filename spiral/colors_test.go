package spiral_test

import (
	"testing"

	"github.com/katalvlaran/colorspiral/spiral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestColorMap_FourClasses reproduces the reference mapping for classes A–D.
func TestColorMap_FourClasses(t *testing.T) {
	got, err := spiral.ColorMap([]string{"A", "B", "C", "D"}, spiral.WithJitter(0))
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := map[string][3]float64{
		"A": {0.52, 0.76, 0.69},
		"B": {0.40, 0.31, 0.68},
		"C": {0.59, 0.13, 0.47},
		"D": {0.50, 0.00, 0.00},
	}
	for key, w := range want {
		c, ok := got[key]
		require.True(t, ok, "missing key %q", key)
		assert.InDelta(t, w[0], c.R, tol2dp, "R of %s", key)
		assert.InDelta(t, w[1], c.G, tol2dp, "G of %s", key)
		assert.InDelta(t, w[2], c.B, tol2dp, "B of %s", key)
	}
}

// TestColorMap_DuplicatesLaterWins keeps the colour of the last occurrence.
func TestColorMap_DuplicatesLaterWins(t *testing.T) {
	keys := []int{7, 3, 7}
	got, err := spiral.ColorMap(keys, spiral.WithJitter(0))
	require.NoError(t, err)
	require.Len(t, got, 2)

	all, err := spiral.Colors(len(keys), spiral.WithJitter(0))
	require.NoError(t, err)
	assert.Equal(t, all[2], got[7])
	assert.Equal(t, all[1], got[3])
}

// TestColorMap_Empty fails with the count precondition.
func TestColorMap_Empty(t *testing.T) {
	got, err := spiral.ColorMap([]string{})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, spiral.ErrBadCount)
	assert.Contains(t, err.Error(), spiral.MethodColorMap)
}

// TestColors_MatchesGenerate delegates to Generate with default params.
func TestColors_MatchesGenerate(t *testing.T) {
	got, err := spiral.Colors(8, spiral.WithA(4), spiral.WithJitter(0))
	require.NoError(t, err)

	seq, err := spiral.NewParams(spiral.WithA(4), spiral.WithJitter(0)).Generate(8)
	require.NoError(t, err)
	assert.Equal(t, seq.Collect(), got)
}

// TestColors_Errors propagates Generate failures with context.
func TestColors_Errors(t *testing.T) {
	_, err := spiral.Colors(0)
	assert.ErrorIs(t, err, spiral.ErrBadCount)

	_, err = spiral.Colors(5, spiral.WithOffset(1))
	assert.ErrorIs(t, err, spiral.ErrBadOffset)

	_, err = spiral.Colors(5, spiral.WithB(0))
	assert.ErrorIs(t, err, spiral.ErrZeroRate)
	assert.Contains(t, err.Error(), spiral.MethodColors+": "+spiral.MethodGenerate)
}

// TestColors_ReusableSeedOption reuses one option slice across calls.
func TestColors_ReusableSeedOption(t *testing.T) {
	opts := []spiral.Option{spiral.WithSeed(11), spiral.WithJitter(0.3)}
	a, err := spiral.Colors(20, opts...)
	require.NoError(t, err)
	b, err := spiral.Colors(20, opts...)
	require.NoError(t, err)
	assert.Equal(t, a, b, "WithSeed must build a fresh source per call")
}
