package hist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceToAllAxesEqualsOriginal(t *testing.T) {
	t.Parallel()

	ax := mustInteger(t, 0, 2, "x", true)
	ay := mustInteger(t, 0, 3, "y", false)
	h := New(Dynamic{ax, ay})

	require.NoError(t, h.Fill(0, 0))
	require.NoError(t, h.Fill(1, 2))
	require.NoError(t, h.Fill(-5, 2))

	reduced, err := h.ReduceTo(0, 1)
	require.NoError(t, err)
	assert.True(t, h.Equal(reduced))
}

func TestReduceToPreservesSum(t *testing.T) {
	t.Parallel()

	ax := mustInteger(t, 0, 2, "x", false)
	ay := mustInteger(t, 0, 3, "y", false)
	az := mustInteger(t, 0, 2, "z", false)
	h := New(Dynamic{ax, ay, az})

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				require.NoError(t, h.Fill(i, j, k, Weight(float64(i+j+k+1))))
			}
		}
	}

	total := h.Sum()

	r01, err := h.ReduceTo(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, total, r01.Sum(), 1e-9)

	r2, err := h.ReduceTo(2)
	require.NoError(t, err)
	assert.InDelta(t, total, r2.Sum(), 1e-9)
}

// SUPPLEMENTED: reduce_to preserves axis order and labels of the retained
// axes exactly as supplied, even when the caller reorders them.
func TestReduceToPreservesCallerOrder(t *testing.T) {
	t.Parallel()

	ax := mustInteger(t, 0, 2, "x", false)
	ay := mustInteger(t, 0, 2, "y", false)
	az := mustInteger(t, 0, 2, "z", false)
	h := New(Dynamic{ax, ay, az})
	require.NoError(t, h.Fill(1, 0, 1))

	reduced, err := h.ReduceTo(2, 0)
	require.NoError(t, err)
	require.Equal(t, 2, reduced.Dim())

	a0, err := reduced.Axis(0)
	require.NoError(t, err)
	a1, err := reduced.Axis(1)
	require.NoError(t, err)
	assert.Equal(t, "z", a0.Label())
	assert.Equal(t, "x", a1.Label())

	v, err := reduced.Value(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestReduceToRejectsDuplicateOrOutOfRangeIndices(t *testing.T) {
	t.Parallel()

	ax := mustInteger(t, 0, 2, "x", false)
	ay := mustInteger(t, 0, 2, "y", false)
	h := New(Dynamic{ax, ay})

	_, err := h.ReduceTo(0, 0)
	assert.Error(t, err)

	_, err = h.ReduceTo(5)
	assert.Error(t, err)
}
