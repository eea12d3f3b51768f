package hist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Open Question resolution: a fractional count behaves like add(k, c),
// i.e. promotes storage to weighted exactly as a weight would.
func TestFractionalCountPromotesToWeighted(t *testing.T) {
	t.Parallel()

	a := mustInteger(t, 0, 1, "x", true)
	h := New(Dynamic{a})
	require.NoError(t, h.Fill(0, Count(2.5)))

	v, _ := h.Value(0)
	vv, _ := h.Variance(0)
	assert.InDelta(t, 2.5, v, 1e-9)
	assert.InDelta(t, 6.25, vv, 1e-9)
}

func TestIntegerCountStaysOnIntegerFastPath(t *testing.T) {
	t.Parallel()

	a := mustInteger(t, 0, 1, "x", true)
	h := New(Dynamic{a})
	require.NoError(t, h.Fill(0, Count(5)))

	v, _ := h.Value(0)
	vv, _ := h.Variance(0)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 5.0, vv)
}

func TestFillBulkAppliesPerSampleWeights(t *testing.T) {
	t.Parallel()

	a := mustInteger(t, 0, 2, "x", false)
	h := New(Dynamic{a})

	coords := [][]any{{0, 1, 0}}
	weights := []float64{1.5, 2.0, 0.5}
	require.NoError(t, h.FillBulk(coords, weights))

	v0, _ := h.Value(0)
	v1, _ := h.Value(1)
	assert.InDelta(t, 2.0, v0, 1e-9)
	assert.InDelta(t, 2.0, v1, 1e-9)
}

func TestFillBulkRejectsMismatchedLengths(t *testing.T) {
	t.Parallel()

	a := mustInteger(t, 0, 2, "x", false)
	h := New(Dynamic{a})

	err := h.FillBulk([][]any{{0, 1}}, []float64{1.0})
	assert.Error(t, err)
}

func TestFillBulkWithoutWeights(t *testing.T) {
	t.Parallel()

	a := mustInteger(t, 0, 2, "x", false)
	h := New(Dynamic{a})
	require.NoError(t, h.FillBulk([][]any{{0, 0, 1}}, nil))

	v0, _ := h.Value(0)
	v1, _ := h.Value(1)
	assert.Equal(t, 2.0, v0)
	assert.Equal(t, 1.0, v1)
}
