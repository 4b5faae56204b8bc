package model

import "github.com/shopspring/decimal"

// AssetSelection identifies the asset and action the surface is open for.
type AssetSelection struct {
	Action        Action `json:"action"`
	TokenID       string `json:"token_id"`
	ExtraDecimals int    `json:"extra_decimals"`
}

// UserInput is what the user has entered on the action surface.
type UserInput struct {
	Amount          decimal.Decimal `json:"amount"`
	UseAsCollateral bool            `json:"use_as_collateral"`
	IsMax           bool            `json:"is_max"`
}

// AssetLimits are the balances the active action is bounded by.
type AssetLimits struct {
	Available          decimal.Decimal `json:"available"`
	Collateral         decimal.Decimal `json:"collateral"`
	Supplied           decimal.Decimal `json:"supplied"`
	CanUseAsCollateral bool            `json:"can_use_as_collateral"`
}

// MaxAmounts are the "use everything" figures for the selected token.
type MaxAmounts struct {
	Supply   decimal.Decimal `json:"supply"`
	Withdraw decimal.Decimal `json:"withdraw"`
	Repay    decimal.Decimal `json:"repay"`
}

// AssetSnapshot is the protocol-state view of one asset for one account.
type AssetSnapshot struct {
	Symbol             string          `json:"symbol"`
	ExtraDecimals      int             `json:"extra_decimals" validate:"gte=0"`
	Balance            decimal.Decimal `json:"balance"`
	Supplied           decimal.Decimal `json:"supplied"`
	Collateral         decimal.Decimal `json:"collateral"`
	Borrowed           decimal.Decimal `json:"borrowed"`
	CanUseAsCollateral bool            `json:"can_use_as_collateral"`
}
