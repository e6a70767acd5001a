package entities

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const minorUnitsExp = 2

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Money сумма в минимальных единицах валюты (центах).
type Money int64

func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q: %w", ErrInvalidInput, s, err)
	}

	minor := d.Shift(minorUnitsExp)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %q has more than %d decimal places", ErrInvalidInput, s, minorUnitsExp)
	}
	if !fitsMinor(minor) {
		return 0, fmt.Errorf("%w: amount %q: %w", ErrInvalidInput, s, ErrAmountOutOfRange)
	}
	return Money(minor.IntPart()), nil
}

func (m Money) Minor() int64 {
	return int64(m)
}

// Mul без переполнения: произведение вне int64 возвращает ErrAmountOutOfRange.
func (m Money) Mul(n int64) (Money, error) {
	product := decimal.NewFromInt(int64(m)).Mul(decimal.NewFromInt(n))
	if !fitsMinor(product) {
		return 0, fmt.Errorf("%w: %s x %d", ErrAmountOutOfRange, m, n)
	}
	return Money(product.IntPart()), nil
}

func (m Money) IsNegative() bool {
	return m < 0
}

// String "1250.00"
func (m Money) String() string {
	return decimal.New(int64(m), -minorUnitsExp).StringFixed(minorUnitsExp)
}

func fitsMinor(d decimal.Decimal) bool {
	return !d.GreaterThan(maxMinor) && !d.LessThan(minMinor)
}
