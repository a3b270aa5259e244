package money_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/money"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  string
		isErr bool
	}{
		{name: "decimal passes through", in: decimal.RequireFromString("1.23"), want: "1.23"},
		{name: "string", in: "42.001", want: "42.001"},
		{name: "int", in: -7, want: "-7"},
		{name: "int64", in: int64(1 << 40), want: "1099511627776"},
		{name: "uint64", in: uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "bad string", in: "ten dollars", isErr: true},
		{name: "unsupported type", in: []int{1}, isErr: true},
		{name: "nil", in: nil, isErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ToDecimal(tt.in)
			if tt.isErr {
				assert.ErrorIs(t, err, money.ErrInvalidOperand)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestToDecimal_FloatGoesThroughText(t *testing.T) {
	var warned int
	money.SetWarnFunc(func(msg string, args ...any) { warned++ })
	defer money.SetWarnFunc(nil)

	// 0.1 has no exact binary representation; converting via the shortest
	// decimal text form must still yield exactly 0.1.
	got, err := money.ToDecimal(0.1)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, 1, warned, "float conversion should warn once")

	_, err = money.ToDecimal(math.NaN())
	assert.ErrorIs(t, err, money.ErrInvalidOperand)

	_, err = money.ToDecimal(math.Inf(1))
	assert.ErrorIs(t, err, money.ErrInvalidOperand)
}

func TestFloatStrictMode(t *testing.T) {
	money.SetFloatHandling(money.FloatReject)
	defer money.SetFloatHandling(money.FloatWarn)

	_, err := money.ToDecimal(1.5)
	assert.ErrorIs(t, err, money.ErrFloatOperand)

	_, err = money.MustNew(10, "USD").Mul(1.5)
	assert.ErrorIs(t, err, money.ErrFloatOperand)

	_, err = money.MustNew(10, "USD").Div(2.0)
	assert.ErrorIs(t, err, money.ErrFloatOperand)

	_, err = money.Percent(5.0, money.MustNew(200, "USD"))
	assert.ErrorIs(t, err, money.ErrFloatOperand)

	_, err = money.New(0.5, "USD")
	assert.ErrorIs(t, err, money.ErrFloatOperand)
}

func TestFloatWarnsButSucceeds(t *testing.T) {
	var warned int
	money.SetWarnFunc(func(msg string, args ...any) { warned++ })
	defer money.SetWarnFunc(nil)

	got, err := money.MustNew(10, "USD").Mul(1.5)
	require.NoError(t, err)
	assert.True(t, got.Equal(money.MustNew(15, "USD")))
	assert.Equal(t, 1, warned)
}
