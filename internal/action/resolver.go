package action

import (
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
)

type resolveFunc func(s State) (model.TxRequest, bool)

var resolvers = map[model.Action]resolveFunc{
	model.ActionSupply:   resolveSupply,
	model.ActionBorrow:   resolveBorrow,
	model.ActionWithdraw: resolveWithdraw,
	model.ActionAdjust:   resolveAdjust,
	model.ActionRepay:    resolveRepay,
}

// Resolve maps the active action to the request of exactly one transaction
// primitive. It reports false when nothing should be dispatched: an unknown
// action, or an Adjust whose amount already equals the posted collateral.
func Resolve(s State) (model.TxRequest, bool) {
	resolve, ok := resolvers[s.Selection.Action]
	if !ok {
		return nil, false
	}
	return resolve(s)
}

func resolveSupply(s State) (model.TxRequest, bool) {
	// native deposits are always exact
	if s.isNative() {
		return &model.DepositRequest{
			Amount:          s.Input.Amount,
			UseAsCollateral: s.Input.UseAsCollateral,
		}, true
	}

	return &model.SupplyRequest{
		TokenID:         s.Selection.TokenID,
		ExtraDecimals:   s.Selection.ExtraDecimals,
		UseAsCollateral: s.Input.UseAsCollateral,
		Amount:          s.Input.Amount,
		MaxAmount:       maxIf(s.Input.IsMax, s.Max.Supply),
	}, true
}

func resolveBorrow(s State) (model.TxRequest, bool) {
	return &model.BorrowRequest{
		TokenID:       s.Selection.TokenID,
		ExtraDecimals: s.Selection.ExtraDecimals,
		Amount:        s.Input.Amount,
	}, true
}

func resolveWithdraw(s State) (model.TxRequest, bool) {
	collateralAmount := CollateralAmount(s.Input.Amount, s.Limits.Supplied)

	return &model.WithdrawRequest{
		TokenID:          s.Selection.TokenID,
		ExtraDecimals:    s.Selection.ExtraDecimals,
		Amount:           s.Input.Amount,
		CollateralAmount: collateralAmount,
		MaxAmount:        maxIf(s.Input.IsMax, model.MinDecimal(s.Max.Withdraw, collateralAmount)),
		Collateral:       s.Limits.Collateral,
	}, true
}

func resolveAdjust(s State) (model.TxRequest, bool) {
	amount, collateral := s.Input.Amount, s.Limits.Collateral
	all := amount.Equal(s.Limits.Available)

	if amount.LessThan(collateral) {
		return &model.RemoveCollateralRequest{
			TokenID:       s.Selection.TokenID,
			ExtraDecimals: s.Selection.ExtraDecimals,
			Amount:        deltaUnless(all, collateral.Sub(amount)),
		}, true
	}
	if amount.GreaterThan(collateral) {
		return &model.AddCollateralRequest{
			TokenID:       s.Selection.TokenID,
			ExtraDecimals: s.Selection.ExtraDecimals,
			Amount:        deltaUnless(all, amount.Sub(collateral)),
		}, true
	}

	return nil, false
}

func resolveRepay(s State) (model.TxRequest, bool) {
	return &model.RepayRequest{
		TokenID:       s.Selection.TokenID,
		Amount:        s.Input.Amount,
		ExtraDecimals: s.Selection.ExtraDecimals,
		MaxAmount:     maxIf(s.Input.IsMax, s.Max.Repay),
	}, true
}

// CollateralAmount is the part of a withdrawal that exceeds the supplied,
// unpledged balance and therefore has to be pulled out of collateral first.
func CollateralAmount(amount, supplied decimal.Decimal) decimal.Decimal {
	return model.MaxDecimal(decimal.Zero, amount.Sub(supplied))
}

func maxIf(isMax bool, maxAmount decimal.Decimal) *decimal.Decimal {
	if !isMax {
		return nil
	}
	return model.DecimalPtr(maxAmount)
}

func deltaUnless(all bool, delta decimal.Decimal) *decimal.Decimal {
	if all {
		return nil
	}
	return model.DecimalPtr(delta)
}
