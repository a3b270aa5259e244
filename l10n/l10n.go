// Package l10n provides locale-aware implementations of the formatting and
// naming capabilities consumed by the money package, backed by
// golang.org/x/text CLDR data.
//
// Install them process-wide with:
//
//	money.SetFormatter(l10n.NewFormatter(language.AmericanEnglish))
//	money.SetLocaleProvider(l10n.Provider{})
package l10n

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ledgerkit/money"
)

// Formatter renders Money values with the CLDR currency symbol and the
// digit grouping of its locale. Amounts are shown at the currency's
// standard scale (two digits for USD, none for JPY, and so on). Codes
// outside ISO 4217, such as the XYZ sentinel, fall back to "CODE AMOUNT".
type Formatter struct {
	Locale language.Tag
}

// NewFormatter returns a Formatter for the given locale.
func NewFormatter(loc language.Tag) Formatter {
	return Formatter{Locale: loc}
}

// Format implements money.Formatter.
func (f Formatter) Format(m money.Money) string {
	cur := m.Currency()
	if cur == nil {
		return m.Amount().String()
	}
	unit, err := currency.ParseISO(cur.Code)
	if err != nil {
		return cur.Code + " " + m.Amount().String()
	}

	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(f.Locale)

	// The float conversion here is display-only; the exact amount is never
	// fed back into arithmetic.
	amt := m.Amount().Abs().InexactFloat64()
	sign := ""
	if m.Sign() < 0 {
		sign = "-"
	}
	return p.Sprintf("%s%v%v", sign, currency.Symbol(unit), number.Decimal(amt, number.Scale(scale)))
}

// Provider resolves territory display names from CLDR data and currency
// names from a registry's canonical-name column. x/text carries no CLDR
// currency display names, so currency names are served in English whatever
// the requested locale; callers with full CLDR data should supply their own
// money.LocaleProvider.
type Provider struct {
	// Registry to resolve currency names against; money.Default() when nil.
	Registry *money.Registry
}

// CurrencyName implements money.LocaleProvider. The plural count is
// accepted for interface compatibility and ignored.
func (p Provider) CurrencyName(code string, loc language.Tag, count ...int) (string, error) {
	reg := p.Registry
	if reg == nil {
		reg = money.Default()
	}
	c, err := reg.Get(strings.ToUpper(code))
	if err != nil {
		return "", err
	}
	if n := c.CanonicalName(); n != "" {
		return n, nil
	}
	return "", fmt.Errorf("%w: no bundled display name for %s", money.ErrNameUnavailable, c.Code)
}

// TerritoryName implements money.LocaleProvider using CLDR region names.
func (p Provider) TerritoryName(code string, loc language.Tag) (string, error) {
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", fmt.Errorf("invalid territory identifier %q: %w", code, err)
	}
	namer := display.Regions(loc)
	if namer == nil {
		return "", fmt.Errorf("%w: no region names for locale %v", money.ErrNameUnavailable, loc)
	}
	name := namer.Name(region)
	if name == "" {
		return "", fmt.Errorf("%w: no region name for %s in %v", money.ErrNameUnavailable, code, loc)
	}
	return name, nil
}
