// Package money models monetary amounts as exact, currency-tagged values.
//
// A Money value pairs an arbitrary-precision decimal amount
// (github.com/shopspring/decimal) with a Currency resolved through a
// Registry of ISO 4217 and historical currency codes. All arithmetic is
// exact and currency-safe: operations between values of different
// currencies fail with ErrCurrencyMismatch rather than converting
// silently, and every operation returns a new value without mutating its
// receiver.
//
// The package-level Default registry is populated once at init from the
// bundled ISO table and is read-only thereafter; tests and embedders that
// need a private catalog can build one with NewRegistry and construct
// values via NewWithCurrency.
//
// Locale-aware display formatting and currency/country display names are
// consumed as capabilities (Formatter, LocaleProvider) rather than
// implemented here; the money/l10n subpackage provides implementations
// backed by golang.org/x/text.
package money
