package category_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuplecast-generator/category"
)

func TestEnumerateCounts(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 9; n++ {
		res, err := category.Enumerate(n)
		require.NoError(t, err)
		require.Len(t, res, 1<<n)

		seen := map[string]struct{}{}
		for _, cls := range res {
			assert.Equal(t, n, cls.Arity())

			_, dup := seen[cls.String()]
			assert.False(t, dup, "duplicate classification %s for n=%d", cls, n)

			seen[cls.String()] = struct{}{}
		}
	}
}

func TestEnumerateOrder(t *testing.T) {
	t.Parallel()

	res, err := category.Enumerate(2)
	require.NoError(t, err)
	require.Len(t, res, 4)

	assert.Equal(t, "RR", res[0].String())
	assert.Equal(t, "RV", res[1].String())
	assert.Equal(t, "VR", res[2].String())
	assert.Equal(t, "VV", res[3].String())

	spew.Dump(res)
}

func TestEnumerateDeterminism(t *testing.T) {
	t.Parallel()

	first, err := category.Enumerate(5)
	require.NoError(t, err)

	second, err := category.Enumerate(5)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnumerateInvalidArity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -100} {
		_, err := category.Enumerate(n)
		assert.ErrorIs(t, err, category.ErrInvalidArity, "n=%d", n)
	}
}

func TestCategorySymbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('R'), category.CategoryReference.Symbol())
	assert.Equal(t, byte('V'), category.CategoryValue.Symbol())
	assert.True(t, category.CategoryReference.IsValid())
	assert.False(t, category.Category(0).IsValid())

	assert.Equal(t, "CategoryReference", category.CategoryReference.String())
	assert.Equal(t, "CategoryValue", category.CategoryValue.String())
	assert.Equal(t, 2, category.CategoryTotal)
}
