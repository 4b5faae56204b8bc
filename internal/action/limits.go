package action

import (
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
)

// DeriveLimits computes the balances that bound the action from the protocol
// snapshot of the asset.
func DeriveLimits(a model.Action, snapshot model.AssetSnapshot, maxBorrowAmount decimal.Decimal) model.AssetLimits {
	limits := model.AssetLimits{
		Collateral:         snapshot.Collateral,
		Supplied:           snapshot.Supplied,
		CanUseAsCollateral: snapshot.CanUseAsCollateral,
	}

	switch a {
	case model.ActionSupply:
		limits.Available = snapshot.Balance
	case model.ActionBorrow:
		limits.Available = maxBorrowAmount
	case model.ActionWithdraw, model.ActionAdjust:
		limits.Available = snapshot.Supplied.Add(snapshot.Collateral)
	case model.ActionRepay:
		limits.Available = model.MinDecimal(snapshot.Balance, snapshot.Borrowed)
	default:
		limits.Available = decimal.Zero
	}

	return limits
}
