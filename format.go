package money

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Formatter renders a Money value as display text. The core consumes this
// capability from Money.String but does not implement locale-aware
// formatting itself; see the money/l10n subpackage for an implementation.
type Formatter interface {
	Format(m Money) string
}

// LocaleProvider resolves currency and territory display names. The core
// consumes it from Currency.Name and CountryName; the money/l10n subpackage
// supplies an implementation backed by golang.org/x/text.
type LocaleProvider interface {
	// CurrencyName returns the display name of the currency code in the
	// given locale. The optional count selects a plural form where the
	// provider carries plural data.
	CurrencyName(code string, loc language.Tag, count ...int) (string, error)

	// TerritoryName returns the display name of a two-letter territory
	// identifier in the given locale.
	TerritoryName(code string, loc language.Tag) (string, error)
}

var (
	capMu     sync.RWMutex
	formatter Formatter
	provider  LocaleProvider
)

// SetFormatter installs the Formatter used by Money.String. A nil formatter
// restores the plain "CODE AMOUNT" fallback.
func SetFormatter(f Formatter) {
	capMu.Lock()
	formatter = f
	capMu.Unlock()
}

// SetLocaleProvider installs the LocaleProvider used for currency and
// territory display names.
func SetLocaleProvider(p LocaleProvider) {
	capMu.Lock()
	provider = p
	capMu.Unlock()
}

func currentFormatter() Formatter {
	capMu.RLock()
	defer capMu.RUnlock()
	return formatter
}

func localeProvider() LocaleProvider {
	capMu.RLock()
	defer capMu.RUnlock()
	return provider
}

// CountryName resolves a territory identifier to its display name in the
// given locale through the configured LocaleProvider.
func CountryName(countryCode string, loc language.Tag) (string, error) {
	p := localeProvider()
	if p == nil {
		return "", ErrNameUnavailable
	}
	return p.TerritoryName(strings.ToUpper(countryCode), loc)
}
