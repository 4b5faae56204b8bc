package action

import (
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
)

var (
	riskBandLow  = decimal.Zero
	riskBandHigh = decimal.NewFromInt(100)
)

// CanSubmit reports whether the action button is enabled. A nil health factor
// is unknown and never blocks.
func CanSubmit(a model.Action, amount decimal.Decimal, healthFactor *decimal.Decimal) bool {
	if a == model.ActionSupply && amount.IsPositive() {
		return true
	}
	// Adjust may legitimately sit at zero
	if a != model.ActionAdjust && amount.IsZero() {
		return false
	}
	if a != model.ActionRepay && InRiskBand(healthFactor) {
		return false
	}
	return true
}

// InRiskBand reports whether the health factor, rounded to two decimals,
// lies in [0, 100].
func InRiskBand(healthFactor *decimal.Decimal) bool {
	if healthFactor == nil {
		return false
	}
	rounded := healthFactor.Round(2)
	return rounded.GreaterThanOrEqual(riskBandLow) && rounded.LessThanOrEqual(riskBandHigh)
}
