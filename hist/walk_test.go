package hist

import (
	"testing"

	"github.com/francescog/histogram/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Build H1, walk it into a Tree, rebuild H2 from the Tree, assert H1 ==
// H2. Uses only identity-transform Regular plus
// Variable/Integer/Circular/Category axes: a transformed Regular axis's
// Lower/Upper round-trips through the transform's floating-point inverse,
// which is not guaranteed bit-exact and would make Regular.Equal's strict
// comparison brittle here.
func TestWalkRebuildRoundTrip(t *testing.T) {
	t.Parallel()

	reg := mustRegular(t, 4, -2, 2, "reg", true)
	variable, err := axis.NewVariable([]float64{0, 1, 2, 5, 10}, "var", true)
	require.NoError(t, err)
	integer := mustInteger(t, -3, 3, "int", false)
	circular, err := axis.NewCircular(6, 0, 360, "circ")
	require.NoError(t, err)
	category, err := axis.NewCategory([]string{"red", "green", "blue"}, "cat")
	require.NoError(t, err)

	h1 := New(Dynamic{reg, variable, integer, circular, category})
	require.NoError(t, h1.Fill(0.5, 3.0, 1, 45.0, "green"))
	require.NoError(t, h1.Fill(-10.0, 0.5, -3, 400.0, "red", Weight(2.5)))
	require.NoError(t, h1.Fill(100.0, 20.0, 10, 10.0, "unknown"))

	h1 = h1.WithMetadata(h1.Metadata().WithTag("source", "unit-test").WithTag("run_id", "42"))

	tree := h1.Walk()
	h2, err := Rebuild(tree)
	require.NoError(t, err)

	assert.True(t, h1.Equal(h2))
	v, ok := h2.Metadata().Tag("source")
	assert.True(t, ok)
	assert.Equal(t, "unit-test", v)
	r, ok := h2.Metadata().Tag("run_id")
	assert.True(t, ok)
	assert.Equal(t, "42", r)
}

func TestWalkIntegerCategoryAxis(t *testing.T) {
	t.Parallel()

	cat, err := axis.NewCategory([]int{10, 20, 30}, "code")
	require.NoError(t, err)
	h1 := New(Dynamic{cat})
	require.NoError(t, h1.Fill(20))
	require.NoError(t, h1.Fill(20))

	tree := h1.Walk()
	require.Len(t, tree.Axes, 1)
	assert.True(t, tree.Axes[0].IsIntCat)
	assert.Equal(t, []int{10, 20, 30}, tree.Axes[0].IntValues)

	h2, err := Rebuild(tree)
	require.NoError(t, err)
	assert.True(t, h1.Equal(h2))
}

func TestWalkStorageTagReflectsRepresentation(t *testing.T) {
	t.Parallel()

	a := mustInteger(t, 0, 4, "x", false)
	h := New(Dynamic{a})
	tree := h.Walk()
	assert.Equal(t, "void", tree.StorageTag)

	require.NoError(t, h.Fill(0))
	tree = h.Walk()
	assert.Equal(t, "u8", tree.StorageTag)

	require.NoError(t, h.Fill(1, Weight(1.5)))
	tree = h.Walk()
	assert.Equal(t, "weight_counter", tree.StorageTag)
}
