package money

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Currency describes a form of money issued by governments and used in one
// or more territories. Instances are created by a Registry and shared as
// read-only references; identity is the three-letter code alone.
type Currency struct {
	// Code is the three-letter identifier, uppercase and unique within a
	// registry (e.g. "USD").
	Code string

	// Numeric is the ISO 4217 numeric code as a string (e.g. "840"), or
	// empty for entries that never had one. Several historical codes share
	// a numeric value; see Registry.GetByNumeric.
	Numeric string

	name string // canonical English name from the static table, may be empty

	nameOnce sync.Once
	resolved string

	ccOnce       sync.Once
	ccSet        bool
	countryCodes []string
}

// Equal reports whether both currencies have the same code. Numeric, name
// and territories are not part of identity.
func (c *Currency) Equal(other *Currency) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Code == other.Code
}

// Less orders currencies lexicographically by code.
func (c *Currency) Less(other *Currency) bool {
	return c.Code < other.Code
}

// String returns the currency code.
func (c *Currency) String() string {
	return c.Code
}

// CanonicalName returns the English name carried by the static table, or
// the empty string if the table has none for this entry.
func (c *Currency) CanonicalName() string {
	return c.name
}

// Name returns a display name for the currency, resolved once and cached:
// the canonical table name if present, otherwise the configured
// LocaleProvider at en-US, otherwise the code itself.
func (c *Currency) Name() string {
	c.nameOnce.Do(func() {
		if c.name != "" {
			c.resolved = c.name
			return
		}
		if p := localeProvider(); p != nil {
			if n, err := p.CurrencyName(c.Code, language.AmericanEnglish); err == nil && n != "" {
				c.resolved = n
				return
			}
		}
		c.resolved = c.Code
	})
	return c.resolved
}

// NameIn resolves a locale-specific display name through the configured
// LocaleProvider. Unlike Name the result is not cached. The optional count
// selects a plural form where the provider has plural data.
func (c *Currency) NameIn(loc language.Tag, count ...int) (string, error) {
	if p := localeProvider(); p != nil {
		return p.CurrencyName(c.Code, loc, count...)
	}
	if c.name != "" {
		return c.name, nil
	}
	return "", ErrNameUnavailable
}

// CountryCodes returns the territory identifiers whose current association
// in the bundled territory table names this currency. "Current" means the
// association has no end date. The set is computed on first access, cached
// for the lifetime of the instance, and returned sorted.
func (c *Currency) CountryCodes() []string {
	c.ccOnce.Do(func() {
		if c.ccSet {
			return
		}
		c.countryCodes = currentTerritoriesFor(c.Code)
		c.ccSet = true
	})
	return slices.Clone(c.countryCodes)
}

// Registry is a catalog of currencies indexed by code and by ISO numeric
// code. It is intended to be populated once at startup and treated as
// read-only afterwards; Register takes a write lock, all lookups take read
// locks, so late registration remains safe if an embedder needs it.
type Registry struct {
	mu        sync.RWMutex
	byCode    map[string]*Currency
	byNumeric map[string]*Currency
}

// NewRegistry returns an empty catalog. Most callers want Default instead.
func NewRegistry() *Registry {
	return &Registry{
		byCode:    make(map[string]*Currency),
		byNumeric: make(map[string]*Currency),
	}
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	registerDefaults(r)
	return r
}

// Default returns the process-wide registry, populated from the bundled
// ISO 4217 table.
func Default() *Registry {
	return defaultRegistry
}

// Register creates a currency entry and indexes it by code and, when
// numeric is non-empty, by numeric. Re-registering a code overwrites the
// previous entry. When two codes share a numeric value — which the
// historical part of the ISO table does — the later registration wins the
// numeric index; this ambiguity is inherited from the source data.
//
// A non-nil countries slice pre-seeds the entry's country codes, bypassing
// derivation from the territory table.
func (r *Registry) Register(code, numeric, name string, countries []string) *Currency {
	c := &Currency{
		Code:    code,
		Numeric: numeric,
		name:    name,
	}
	if countries != nil {
		c.countryCodes = slices.Clone(countries)
		c.ccSet = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCode[code] = c
	if numeric != "" {
		r.byNumeric[numeric] = c
	}
	return c
}

// Get returns the currency registered under code. The match is exact and
// case-sensitive; callers holding user input should upper-case it first.
func (r *Registry) Get(code string) (*Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byCode[code]
	if !ok {
		return nil, &NotFoundError{Key: code}
	}
	return c, nil
}

// GetByNumeric returns the currency registered under the ISO numeric code
// string (e.g. "840"). For numerics shared by obsolete codes the entry
// registered last is returned; see Register.
func (r *Registry) GetByNumeric(numeric string) (*Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byNumeric[numeric]
	if !ok {
		return nil, &NotFoundError{Key: numeric}
	}
	return c, nil
}

// Currencies returns a snapshot of the catalog sorted by code.
func (r *Registry) Currencies() []*Currency {
	r.mu.RLock()
	out := make([]*Currency, 0, len(r.byCode))
	for _, c := range r.byCode {
		out = append(out, c)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Currency) int {
		return strings.Compare(a.Code, b.Code)
	})
	return out
}

// CurrenciesForCountry returns every registered currency whose current
// territory association includes the given two-letter territory
// identifier, sorted by code ascending. The match is case-insensitive.
func (r *Registry) CurrenciesForCountry(countryCode string) []*Currency {
	countryCode = strings.ToUpper(countryCode)

	var out []*Currency
	for _, c := range r.Currencies() {
		if slices.Contains(c.CountryCodes(), countryCode) {
			out = append(out, c)
		}
	}
	return out
}
