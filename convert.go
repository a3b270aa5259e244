package money

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ToDecimal converts an amount of unknown type to an exact decimal. It is
// the single conversion contract of the package: decimal values pass
// through, strings and integers convert exactly, and binary floats convert
// via their shortest decimal text form — never via their bit pattern — and
// are subject to the configured float handling (warn by default, reject in
// strict mode). Any other type is an invalid operand.
func ToDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidOperand, n)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int8:
		return decimal.NewFromInt(int64(n)), nil
	case int16:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case uint:
		return decimal.NewFromUint64(uint64(n)), nil
	case uint8:
		return decimal.NewFromUint64(uint64(n)), nil
	case uint16:
		return decimal.NewFromUint64(uint64(n)), nil
	case uint32:
		return decimal.NewFromUint64(uint64(n)), nil
	case uint64:
		return decimal.NewFromUint64(n), nil
	case float32:
		return floatToDecimal(float64(n), 32)
	case float64:
		return floatToDecimal(n, 64)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: cannot convert %T to a decimal amount", ErrInvalidOperand, v)
	}
}

func floatToDecimal(f float64, bits int) (decimal.Decimal, error) {
	if err := noteFloatOperand(); err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(f, 'f', -1, bits))
	if err != nil {
		// NaN and the infinities have no decimal text form.
		return decimal.Decimal{}, fmt.Errorf("%w: %v is not a finite number", ErrInvalidOperand, f)
	}
	return d, nil
}
