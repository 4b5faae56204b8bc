package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToBaseUnits converts a user-facing decimal amount into integer base units
// with the given number of decimals. Fractions below one unit are dropped.
func ToBaseUnits(amount decimal.Decimal, decimals int) *big.Int {
	return amount.Shift(int32(decimals)).Truncate(0).BigInt()
}

// DecimalPtr returns a pointer to a copy of d.
func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func MinDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func MaxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
