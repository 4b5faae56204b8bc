package action

import "github.com/dwarvesf/lending-backend/internal/model"

// NeedsCollateralCorrection is evaluated on every update of the collateral
// flag or the asset's eligibility. It is true only while the flag is still on
// for an ineligible asset, so applying the correction makes it false again.
func NeedsCollateralCorrection(useAsCollateral, canUseAsCollateral bool) bool {
	return !canUseAsCollateral && useAsCollateral
}

// ShowCollateralToggle reports whether the use-as-collateral switch is part of
// the surface for the action.
func ShowCollateralToggle(a model.Action) bool {
	return a == model.ActionSupply
}
