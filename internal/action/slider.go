package action

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SliderValue is the amount as a whole percentage of the available balance,
// rounded half up. It is 0 when nothing is available.
func SliderValue(amount, available decimal.Decimal) int64 {
	if available.IsZero() {
		return 0
	}
	return amount.Mul(hundred).Div(available).Round(0).IntPart()
}
