package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairrand/catalog"
	"github.com/katalvlaran/fairrand/matcher"
)

func validateAll[T comparable](t *testing.T, protos []matcher.Prototype[T]) {
	t.Helper()
	seen := map[string]bool{}
	for _, p := range protos {
		require.NoError(t, p.Validate(), p.Name())
		assert.False(t, seen[p.Name()], "duplicate %q", p.Name())
		seen[p.Name()] = true
	}
}

func TestCatalogsAreValid(t *testing.T) {
	validateAll(t, catalog.Bool())
	validateAll(t, catalog.Int())
	validateAll(t, catalog.Float())
	validateAll(t, catalog.Gaussian())

	assert.Len(t, catalog.Bool(), 3)
	assert.Len(t, catalog.Int(), 8)
	assert.Len(t, catalog.Float(), 6)
	assert.Len(t, catalog.Gaussian(), 10)
}

func TestCatalogParameters(t *testing.T) {
	p, err := catalog.Find(catalog.Bool(), "duplicate SEQUENCE")
	require.NoError(t, err)
	assert.Equal(t, matcher.KindNeighbour, p.Kind())
	assert.Equal(t, matcher.Params{CheckAmount: 4, MatchAmount: 4, Offset: 4}, p.Params())

	p2, err := catalog.Find(catalog.Int(), "bottom heavy")
	require.NoError(t, err)
	assert.Equal(t, matcher.Params{MatchCount: 7, MinLookBack: 7, MaxLookBack: 10}, p2.Params())

	_, err = catalog.Find(catalog.Float(), "Bottom heavy")
	assert.ErrorIs(t, err, catalog.ErrUnknownPattern)
}

func TestCatalogReturnsFreshSlices(t *testing.T) {
	a := catalog.Float()
	a[0] = a[0].WithName("renamed")
	assert.Equal(t, "Too small difference from last", catalog.Float()[0].Name())
	assert.Equal(t, catalog.Names(catalog.Float()), catalog.Names(catalog.Gaussian())[:6])
}

func TestSelect(t *testing.T) {
	got, err := catalog.Select(catalog.Int(), "Top Heavy", "repeating number")
	require.NoError(t, err)
	assert.Equal(t, []string{"Top Heavy", "Repeating Number"}, catalog.Names(got))

	_, err = catalog.Select(catalog.Int(), "Repeating Number", "nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownPattern)
}
