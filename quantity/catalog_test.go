package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCentiPrefixIsExactlyOneHundredth(t *testing.T) {
	cat := NewCatalog()
	cm, ok := cat.Lookup("cm")
	require.True(t, ok)
	m, ok := cat.Lookup("m")
	require.True(t, ok)

	ratio, err := m.Coefficient.Div(cm.Coefficient)
	require.NoError(t, err)
	assert.True(t, ratio.IsRational())
	assert.Equal(t, "100", ratio.String())
}

func TestCatalogLongFormNamesMatchSymbols(t *testing.T) {
	cat := NewCatalog()
	symbol, ok := cat.Lookup("km")
	require.True(t, ok)
	long, ok := cat.Lookup("kilometer")
	require.True(t, ok)
	assert.Equal(t, symbol, long)
}

func TestCatalogPrefixableDerivedUnitScalesExactly(t *testing.T) {
	cat := NewCatalog()
	kN, ok := cat.Lookup("kN")
	require.True(t, ok)
	n, ok := cat.Lookup("N")
	require.True(t, ok)

	ratio, err := kN.Coefficient.Div(n.Coefficient)
	require.NoError(t, err)
	assert.Equal(t, "1000", ratio.String())
}

func TestCatalogNonPrefixableUnitIsNotPrefixed(t *testing.T) {
	cat := NewCatalog()
	_, ok := cat.Lookup("kmin")
	assert.False(t, ok)
	_, ok = cat.Lookup("min")
	assert.True(t, ok)
}

func TestCatalogLookupFallsBackToLowercase(t *testing.T) {
	cat := NewCatalog()
	_, ok := cat.Lookup("KM")
	assert.True(t, ok)
}

func TestCatalogImperialUnitsPresent(t *testing.T) {
	cat := NewCatalog()
	for _, name := range []string{"in", "ft", "yd", "mi", "lb", "oz"} {
		_, ok := cat.Lookup(name)
		assert.True(t, ok, "expected %s in catalog", name)
	}
}
