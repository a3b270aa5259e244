package money

import (
	"errors"
	"fmt"
)

// ErrCurrencyNotFound indicates a registry lookup by code or numeric found
// no match. Errors carrying the queried key satisfy errors.Is against it.
var ErrCurrencyNotFound = errors.New("currency not found")

// ErrCurrencyMismatch indicates arithmetic or comparison between Money
// values of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrInvalidOperand indicates an operation received an operand of a type or
// shape it does not support (e.g. multiplying two Money values).
var ErrInvalidOperand = errors.New("invalid operand")

// ErrComparison indicates an ordering comparison against a non-Money operand.
var ErrComparison = errors.New("cannot compare Money with non-Money operand")

// ErrDivisionByZero indicates a division with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// ErrFloatOperand is returned instead of a warning when float handling is
// set to FloatReject and a binary float operand reaches an exact-decimal
// operation.
var ErrFloatOperand = errors.New("binary float operand rejected in strict mode")

// ErrNameUnavailable indicates a LocaleProvider has no display name for the
// requested currency and locale.
var ErrNameUnavailable = errors.New("currency name unavailable")

// NotFoundError reports a failed registry lookup and carries the queried
// code or numeric string.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no currency with code %s is defined", e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrCurrencyNotFound
}

// MismatchError reports an operation between two different currencies and
// carries both codes.
type MismatchError struct {
	Left  string
	Right string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s vs %s", e.Left, e.Right)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

// ComparisonError reports an ordering comparison against a non-Money value
// and carries the offending operand for diagnostics.
type ComparisonError struct {
	Operand any
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("cannot compare Money with %T", e.Operand)
}

func (e *ComparisonError) Is(target error) bool {
	return target == ErrComparison
}
