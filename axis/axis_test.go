package axis

import (
	"math"
	"testing"

	"github.com/francescog/histogram/herr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularIndex(t *testing.T) {
	t.Parallel()

	r, err := NewRegular(2, -1, 1, Identity(), "x", true)
	require.NoError(t, err)

	tests := []struct {
		in  float64
		exp int
	}{
		{-2, -1},
		{-1, 0},
		{-0.5, 0},
		{0, 1},
		{0.999, 1},
		{1, 2},
		{10, 2},
		{math.NaN(), 2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.exp, r.Index(tc.in), tc.in)
	}
}

func TestRegularUoflowOff(t *testing.T) {
	t.Parallel()

	r, err := NewRegular(2, -1, 1, Identity(), "x", false)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Size())
	assert.Equal(t, 2, r.Shape())
}

func TestRegularInvalid(t *testing.T) {
	t.Parallel()

	_, err := NewRegular(0, -1, 1, Identity(), "x", true)
	assert.Error(t, err)

	_, err = NewRegular(2, 1, -1, Identity(), "x", true)
	assert.Error(t, err)
}

func TestRegularLogTransform(t *testing.T) {
	t.Parallel()

	r, err := NewRegular(2, 1, 100, Log(), "x", false)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Index(5.0))
	assert.Equal(t, 1, r.Index(50.0))

	lo, err := r.Lower(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lo, 1e-9)
}

func TestCircularIndex(t *testing.T) {
	t.Parallel()

	c, err := NewCircular(4, 0, 360, "deg")
	require.NoError(t, err)

	tests := []struct {
		in  float64
		exp int
	}{
		{0, 0},
		{45, 0},
		{90, 1},
		{-1, 3},
		{360, 0},
		{370, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.exp, c.Index(tc.in), tc.in)
	}
	assert.Equal(t, 5, c.Shape())
}

func TestVariableIndex(t *testing.T) {
	t.Parallel()

	v, err := NewVariable([]float64{0, 1, 3, 10}, "x", true)
	require.NoError(t, err)

	tests := []struct {
		in  float64
		exp int
	}{
		{-1, -1},
		{0, 0},
		{0.5, 0},
		{1, 1},
		{2.9, 1},
		{3, 2},
		{9.9, 2},
		{10, 3},
		{100, 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.exp, v.Index(tc.in), tc.in)
	}
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, 5, v.Shape())
}

func TestVariableNonMonotonic(t *testing.T) {
	t.Parallel()
	_, err := NewVariable([]float64{0, 2, 1}, "x", true)
	assert.Error(t, err)
}

func TestIntegerIndex(t *testing.T) {
	t.Parallel()

	i, err := NewInteger(0, 2, "x", true)
	require.NoError(t, err)

	assert.Equal(t, -1, i.Index(-1))
	assert.Equal(t, 0, i.Index(0))
	assert.Equal(t, 1, i.Index(1))
	assert.Equal(t, 2, i.Index(10))
	assert.Equal(t, 0, i.Index(0.9)) // floors
}

func TestCategoryIndex(t *testing.T) {
	t.Parallel()

	c, err := NewCategory([]string{"A", "B"}, "cat")
	require.NoError(t, err)

	assert.Equal(t, 0, c.Index("A"))
	assert.Equal(t, 1, c.Index("B"))
	assert.Equal(t, 2, c.Index("unknown"))
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 2, c.Shape())

	_, err = c.Lower(0)
	assert.ErrorIs(t, err, herr.ErrDomainNotInterval)
}

func TestCategoryDuplicates(t *testing.T) {
	t.Parallel()
	_, err := NewCategory([]string{"A", "A"}, "cat")
	assert.Error(t, err)
}

func TestLabelMutation(t *testing.T) {
	t.Parallel()

	r, err := NewRegular(2, -1, 1, Identity(), "before", true)
	require.NoError(t, err)
	var a Axis = r
	a.SetLabel("after")
	assert.Equal(t, "after", r.Label())
	assert.Equal(t, "after", a.Label())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	r1, _ := NewRegular(2, -1, 1, Identity(), "x", true)
	r2, _ := NewRegular(2, -1, 1, Identity(), "x", true)
	r3, _ := NewRegular(2, -1, 1, Identity(), "y", true)
	assert.True(t, r1.Equal(r2))
	assert.False(t, r1.Equal(r3))

	i1, _ := NewInteger(0, 2, "x", true)
	assert.False(t, r1.Equal(i1))
}
