package money

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencyCode is the sentinel "no currency" entry used when a Money
// value is constructed without a currency.
const DefaultCurrencyCode = "XYZ"

var oneHundred = decimal.NewFromInt(100)

// Money is an immutable pairing of an exact decimal amount with a Currency.
// Every operation returns a new value; the receiver is never mutated. The
// zero Money has a zero amount and no currency — construct values with New
// or NewWithCurrency so the currency reference is always a registered entry.
type Money struct {
	amount   decimal.Decimal
	currency *Currency
}

// New builds a Money value. The amount is converted through ToDecimal, so
// it may be a decimal.Decimal, a string, an integer, or (discouraged, see
// SetFloatHandling) a float. An empty code selects the XYZ sentinel;
// otherwise the code is upper-cased and resolved through Default().
func New(amount any, code string) (Money, error) {
	d, err := ToDecimal(amount)
	if err != nil {
		return Money{}, err
	}
	if code == "" {
		code = DefaultCurrencyCode
	}
	c, err := Default().Get(strings.ToUpper(code))
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d, currency: c}, nil
}

// NewWithCurrency builds a Money value against an already-resolved
// currency, typically one obtained from a private Registry.
func NewWithCurrency(amount any, c *Currency) (Money, error) {
	if c == nil {
		return Money{}, fmt.Errorf("%w: nil currency", ErrInvalidOperand)
	}
	d, err := ToDecimal(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: d, currency: c}, nil
}

// MustNew is New, panicking on error. Intended for fixtures and statically
// known inputs.
func MustNew(amount any, code string) Money {
	m, err := New(amount, code)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the shared currency reference, or nil for the zero Money.
func (m Money) Currency() *Currency {
	return m.currency
}

func (m Money) code() string {
	if m.currency == nil {
		return ""
	}
	return m.currency.Code
}

func (m Money) sameCurrency(other Money) bool {
	return m.code() == other.code()
}

func (m Money) mismatch(other Money) error {
	return &MismatchError{Left: m.code(), Right: other.code()}
}

// Neg returns the value with the amount negated.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Abs returns the value with a non-negative amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

// Add returns m + other. Both values must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if !m.sameCurrency(other) {
		return Money{}, m.mismatch(other)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other, i.e. m + (-other); the same currency rule applies.
func (m Money) Sub(other Money) (Money, error) {
	return m.Add(other.Neg())
}

// Sum adds a sequence of values. Elements must be Money values of one
// currency; a numeric zero is accepted as an identity element so sums may
// be seeded with 0, and any other non-Money element is an invalid operand.
// An empty call returns the zero value of the XYZ sentinel currency.
func Sum(vals ...any) (Money, error) {
	var acc Money
	seeded := false
	for _, v := range vals {
		mv, ok := v.(Money)
		if !ok {
			d, err := ToDecimal(v)
			if err != nil {
				return Money{}, err
			}
			if !d.IsZero() {
				return Money{}, fmt.Errorf("%w: cannot add non-Money value %v to a sum of Money", ErrInvalidOperand, v)
			}
			continue
		}
		if !seeded {
			acc = mv
			seeded = true
			continue
		}
		var err error
		if acc, err = acc.Add(mv); err != nil {
			return Money{}, err
		}
	}
	if !seeded {
		return New(0, "")
	}
	return acc, nil
}

// Mul scales the amount by a non-Money scalar, converted through ToDecimal.
// Multiplying two Money values is not defined. Float scalars are subject to
// the configured float handling.
func (m Money) Mul(scalar any) (Money, error) {
	if _, ok := scalar.(Money); ok {
		return Money{}, fmt.Errorf("%w: cannot multiply two Money values", ErrInvalidOperand)
	}
	d, err := ToDecimal(scalar)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Mul(d), currency: m.currency}, nil
}

// Div scales the amount by the reciprocal of a non-Money scalar. Dividing
// by a Money value is not defined here; use Ratio for the quotient of two
// amounts of the same currency.
func (m Money) Div(scalar any) (Money, error) {
	if _, ok := scalar.(Money); ok {
		return Money{}, fmt.Errorf("%w: cannot divide Money by Money, use Ratio", ErrInvalidOperand)
	}
	d, err := ToDecimal(scalar)
	if err != nil {
		return Money{}, err
	}
	if d.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return Money{amount: m.amount.Div(d), currency: m.currency}, nil
}

// Ratio returns the dimensionless quotient of two amounts of the same
// currency.
func (m Money) Ratio(other Money) (decimal.Decimal, error) {
	if !m.sameCurrency(other) {
		return decimal.Decimal{}, m.mismatch(other)
	}
	if other.amount.IsZero() {
		return decimal.Decimal{}, ErrDivisionByZero
	}
	return m.amount.Div(other.amount), nil
}

// Percent applies a scalar percentage to a Money value, returning
// p * m / 100 in m's currency. A Money percentage is not defined.
//
//	Percent(5, MustNew(200, "USD")) == MustNew(10, "USD")
func Percent(p any, m Money) (Money, error) {
	if _, ok := p.(Money); ok {
		return Money{}, fmt.Errorf("%w: percentage must be a scalar, not Money", ErrInvalidOperand)
	}
	d, err := ToDecimal(p)
	if err != nil {
		return Money{}, err
	}
	return Money{
		amount:   d.Mul(m.amount).Div(oneHundred),
		currency: m.currency,
	}, nil
}

// Round quantizes the amount to ndigits fractional digits using banker's
// rounding (round half to even), the fixed rounding mode of this package.
// ndigits may be negative to round to tens, hundreds and so on.
func (m Money) Round(ndigits int) Money {
	return Money{amount: m.amount.RoundBank(int32(ndigits)), currency: m.currency}
}

// IsZero reports whether the amount is exactly zero, regardless of currency.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Sign returns -1, 0 or 1 according to the sign of the amount.
func (m Money) Sign() int {
	return m.amount.Sign()
}

// Equal reports whether both amount and currency match. Amounts compare
// numerically (1.0 equals 1.00); currencies compare by code, so equal
// amounts in different currencies are never equal.
func (m Money) Equal(other Money) bool {
	return m.sameCurrency(other) && m.amount.Equal(other.amount)
}

// Cmp compares two amounts of the same currency, returning -1, 0 or 1.
func (m Money) Cmp(other Money) (int, error) {
	if !m.sameCurrency(other) {
		return 0, m.mismatch(other)
	}
	return m.amount.Cmp(other.amount), nil
}

// CompareTo orders m against an arbitrary operand. A non-Money operand
// fails with a ComparisonError carrying the operand; Money operands follow
// the Cmp contract.
func (m Money) CompareTo(other any) (int, error) {
	mv, ok := other.(Money)
	if !ok {
		return 0, &ComparisonError{Operand: other}
	}
	return m.Cmp(mv)
}

// LessThan reports m < other for two values of the same currency.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	return c < 0, err
}

// LessThanOrEqual reports m <= other for two values of the same currency.
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	c, err := m.Cmp(other)
	return c <= 0, err
}

// GreaterThan reports m > other for two values of the same currency.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	return c > 0, err
}

// GreaterThanOrEqual reports m >= other for two values of the same currency.
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	c, err := m.Cmp(other)
	return c >= 0, err
}

// Hash returns a digest of the canonical amount and the currency code,
// consistent with Equal: values that compare equal hash identically.
func (m Money) Hash() uint64 {
	h := fnv.New64a()
	io.WriteString(h, canonicalAmount(m.amount))
	io.WriteString(h, " ")
	io.WriteString(h, m.code())
	return h.Sum64()
}

// canonicalAmount renders d with trailing fractional zeros trimmed so that
// numerically equal decimals share one text form.
func canonicalAmount(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// String renders the value through the configured Formatter capability,
// falling back to "CODE AMOUNT".
func (m Money) String() string {
	if f := currentFormatter(); f != nil {
		return f.Format(m)
	}
	if m.currency == nil {
		return m.amount.String()
	}
	return m.currency.Code + " " + m.amount.String()
}
