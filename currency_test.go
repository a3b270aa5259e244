package money_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ledgerkit/money"
)

func TestRegistry_Get(t *testing.T) {
	usd, err := money.Default().Get("USD")
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code)
	assert.Equal(t, "840", usd.Numeric)

	// Lookups are exact and case-sensitive.
	_, err = money.Default().Get("usd")
	assert.ErrorIs(t, err, money.ErrCurrencyNotFound)

	_, err = money.Default().Get("ZZZ")
	require.Error(t, err)
	var nfe *money.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "ZZZ", nfe.Key)
}

func TestRegistry_GetByNumeric(t *testing.T) {
	tests := []struct {
		name     string
		numeric  string
		wantCode string
	}{
		{name: "USD by 840", numeric: "840", wantCode: "USD"},
		{name: "EUR by 978", numeric: "978", wantCode: "EUR"},
		// "032" is shared by ARS and the obsolete ARA/ARP; the entry
		// registered last owns the numeric index.
		{name: "shared 032 resolves to last registered", numeric: "032", wantCode: "ARP"},
		// "999" is shared by the XYZ sentinel and XXX.
		{name: "shared 999 resolves to XXX", numeric: "999", wantCode: "XXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := money.Default().GetByNumeric(tt.numeric)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, c.Code)
		})
	}

	_, err := money.Default().GetByNumeric("000")
	assert.ErrorIs(t, err, money.ErrCurrencyNotFound)
}

func TestRegistry_ReflexiveIdentity(t *testing.T) {
	for _, c := range money.Default().Currencies() {
		got, err := money.Default().Get(c.Code)
		require.NoError(t, err)
		assert.True(t, got.Equal(c), "lookup of %s should return an equal currency", c.Code)
		assert.True(t, c.Equal(c))
	}
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	reg := money.NewRegistry()
	reg.Register("ABC", "111", "First", nil)
	reg.Register("ABC", "111", "Second", nil)

	c, err := reg.Get("ABC")
	require.NoError(t, err)
	assert.Equal(t, "Second", c.CanonicalName())

	byNum, err := reg.GetByNumeric("111")
	require.NoError(t, err)
	assert.Equal(t, "Second", byNum.CanonicalName())
}

func TestRegistry_NonISONumericNotIndexed(t *testing.T) {
	imp, err := money.Default().Get("IMP")
	require.NoError(t, err)
	assert.Empty(t, imp.Numeric)

	_, err = money.Default().GetByNumeric("")
	assert.ErrorIs(t, err, money.ErrCurrencyNotFound)
}

func TestRegistry_CurrenciesForCountry(t *testing.T) {
	t.Run("US includes current associations only", func(t *testing.T) {
		var codes []string
		for _, c := range money.Default().CurrenciesForCountry("US") {
			codes = append(codes, c.Code)
		}
		assert.Contains(t, codes, "USD")
		assert.Contains(t, codes, "USN")
		// USS ended 2014; ended associations never qualify.
		assert.NotContains(t, codes, "USS")
		assert.IsIncreasing(t, codes)
	})

	t.Run("case-insensitive territory match", func(t *testing.T) {
		got := money.Default().CurrenciesForCountry("de")
		require.Len(t, got, 1)
		assert.Equal(t, "EUR", got[0].Code)
	})

	t.Run("legacy currency keeps no territories", func(t *testing.T) {
		dem, err := money.Default().Get("DEM")
		require.NoError(t, err)
		assert.Empty(t, dem.CountryCodes())
	})

	t.Run("unknown territory yields nothing", func(t *testing.T) {
		assert.Empty(t, money.Default().CurrenciesForCountry("Q9"))
	})
}

func TestCurrency_CountryCodes(t *testing.T) {
	usd, err := money.Default().Get("USD")
	require.NoError(t, err)

	codes := usd.CountryCodes()
	assert.Contains(t, codes, "US")
	assert.Contains(t, codes, "EC") // dollarized in 2000, association still open
	assert.IsIncreasing(t, codes)

	// Cached per instance: repeated calls agree.
	assert.Equal(t, codes, usd.CountryCodes())

	xyz, err := money.Default().Get(money.DefaultCurrencyCode)
	require.NoError(t, err)
	assert.Empty(t, xyz.CountryCodes())
}

func TestCurrency_NameAndOrdering(t *testing.T) {
	usd, err := money.Default().Get("USD")
	require.NoError(t, err)
	assert.Equal(t, "US Dollar", usd.Name())
	assert.Equal(t, "USD", usd.String())

	// Entries without a table name fall back to their code when no
	// LocaleProvider is installed.
	aok, err := money.Default().Get("AOK")
	require.NoError(t, err)
	assert.Equal(t, "AOK", aok.Name())

	eur, err := money.Default().Get("EUR")
	require.NoError(t, err)
	assert.True(t, eur.Less(usd))
	assert.False(t, usd.Less(eur))
	assert.False(t, usd.Equal(eur))
}

func TestCurrency_IdentityAcrossRegistries(t *testing.T) {
	reg := money.NewRegistry()
	fake := reg.Register("USD", "840", "Test Dollar", []string{"US"})

	usd, err := money.Default().Get("USD")
	require.NoError(t, err)

	// Identity is the code alone; name and provenance are irrelevant.
	assert.True(t, fake.Equal(usd))
	assert.Equal(t, []string{"US"}, fake.CountryCodes())
}

func TestCurrency_NameInWithoutProvider(t *testing.T) {
	usd, err := money.Default().Get("USD")
	require.NoError(t, err)

	name, err := usd.NameIn(language.AmericanEnglish)
	require.NoError(t, err)
	assert.Equal(t, "US Dollar", name)

	aok, err := money.Default().Get("AOK")
	require.NoError(t, err)
	_, err = aok.NameIn(language.AmericanEnglish)
	assert.True(t, errors.Is(err, money.ErrNameUnavailable))
}
