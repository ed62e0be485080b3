package spiral_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/colorspiral/spiral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeq(t *testing.T, k int) *spiral.Sequence {
	t.Helper()
	seq, err := spiral.NewParams(spiral.WithJitter(0)).Generate(k)
	require.NoError(t, err)
	return seq
}

// TestSequence_SinglePass ensures an exhausted sequence stays exhausted.
func TestSequence_SinglePass(t *testing.T) {
	seq := newSeq(t, 3)
	assert.Equal(t, 3, seq.Remaining())

	first := seq.Collect()
	assert.Len(t, first, 3)
	assert.Empty(t, seq.Collect())

	_, ok := seq.Next()
	assert.False(t, ok)
	_, ok = seq.NextHSV()
	assert.False(t, ok)
}

// TestSequence_All yields positions in the full sequence and supports early exit.
func TestSequence_All(t *testing.T) {
	seq := newSeq(t, 5)
	_, _ = seq.Next()

	var idx []int
	for i := range seq.All() {
		idx = append(idx, i)
		if i == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, idx)
	assert.Equal(t, 1, seq.Remaining())

	ref := newSeq(t, 5).Collect()
	for i, c := range seq.All() {
		assert.Equal(t, 4, i)
		assert.Equal(t, ref[4], c)
	}
	assert.Equal(t, 0, seq.Remaining())
}

// TestSequence_Independent checks that two Generate calls do not share state.
func TestSequence_Independent(t *testing.T) {
	p := spiral.NewParams(spiral.WithJitter(0))
	a, err := p.Generate(4)
	require.NoError(t, err)
	b, err := p.Generate(4)
	require.NoError(t, err)

	_ = a.Collect()
	assert.Equal(t, 4, b.Remaining())
}

// TestColor_Helpers covers clamping, hex and image/color integration.
func TestColor_Helpers(t *testing.T) {
	c := spiral.Color{R: 1.2, G: 0.5, B: -1e-16}

	r, g, b := c.RGB()
	assert.Equal(t, [3]float64{1.2, 0.5, -1e-16}, [3]float64{r, g, b}, "RGB never clamps")
	assert.Equal(t, spiral.Color{R: 1, G: 0.5, B: 0}, c.Clamped())
	assert.Equal(t, "#ff8000", c.Hex())

	var _ color.Color = c
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, rgba)
}

// TestHSV_RoundTrip converts HSV → RGB → HSV.
func TestHSV_RoundTrip(t *testing.T) {
	in := spiral.HSV{H: 0.3, S: 0.6, V: 0.8}
	out := in.RGB().ToHSV()
	assert.InDelta(t, in.H, out.H, 1e-9)
	assert.InDelta(t, in.S, out.S, 1e-9)
	assert.InDelta(t, in.V, out.V, 1e-9)

	// Pure red on the hue seam.
	assert.Equal(t, spiral.Color{R: 1, G: 0, B: 0}, spiral.HSV{H: 0, S: 1, V: 1}.RGB())
}
