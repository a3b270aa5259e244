package l10n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ledgerkit/money"
	"github.com/ledgerkit/money/l10n"
)

func TestFormatter_Format(t *testing.T) {
	f := l10n.NewFormatter(language.AmericanEnglish)

	tests := []struct {
		name  string
		money money.Money
		want  string
	}{
		{name: "grouping and scale", money: money.MustNew("1234.5", "USD"), want: "$1,234.50"},
		{name: "negative sign leads", money: money.MustNew("-42", "USD"), want: "-$42.00"},
		{name: "zero-decimal currency", money: money.MustNew(1500, "JPY"), want: "¥1,500"},
		{name: "non-ISO code falls back to plain form", money: money.MustNew(3, "XYZ"), want: "XYZ 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.money))
		})
	}
}

func TestFormatter_AsMoneyStringCapability(t *testing.T) {
	money.SetFormatter(l10n.NewFormatter(language.AmericanEnglish))
	defer money.SetFormatter(nil)

	assert.Equal(t, "$10.00", money.MustNew(10, "USD").String())
}

func TestProvider_CurrencyName(t *testing.T) {
	p := l10n.Provider{}

	name, err := p.CurrencyName("usd", language.AmericanEnglish)
	require.NoError(t, err)
	assert.Equal(t, "US Dollar", name)

	_, err = p.CurrencyName("ZZZ", language.AmericanEnglish)
	assert.ErrorIs(t, err, money.ErrCurrencyNotFound)

	// Historical codes without a bundled name cannot be served.
	_, err = p.CurrencyName("AOK", language.AmericanEnglish)
	assert.ErrorIs(t, err, money.ErrNameUnavailable)
}

func TestProvider_TerritoryName(t *testing.T) {
	p := l10n.Provider{}

	name, err := p.TerritoryName("US", language.AmericanEnglish)
	require.NoError(t, err)
	assert.Equal(t, "United States", name)

	name, err = p.TerritoryName("gb", language.AmericanEnglish)
	require.NoError(t, err)
	assert.Equal(t, "United Kingdom", name)

	_, err = p.TerritoryName("zzzz", language.AmericanEnglish)
	assert.Error(t, err)
}

func TestProvider_AsCountryNameCapability(t *testing.T) {
	money.SetLocaleProvider(l10n.Provider{})
	defer money.SetLocaleProvider(nil)

	name, err := money.CountryName("de", language.AmericanEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Germany", name)
}
