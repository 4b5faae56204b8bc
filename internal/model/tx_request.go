package model

import "github.com/shopspring/decimal"

// Primitive names one of the lending pool transaction calls.
type Primitive string

const (
	PrimitiveDeposit          Primitive = "deposit"
	PrimitiveSupply           Primitive = "supply"
	PrimitiveBorrow           Primitive = "borrow"
	PrimitiveWithdraw         Primitive = "withdraw"
	PrimitiveRepay            Primitive = "repay"
	PrimitiveAddCollateral    Primitive = "add_collateral"
	PrimitiveRemoveCollateral Primitive = "remove_collateral"
)

// TxRequest is the typed argument set of exactly one transaction primitive.
// Optional amounts are nil when the primitive should use its full-balance default.
type TxRequest interface {
	Primitive() Primitive
}

// DepositRequest deposits the native token, which has no token contract.
type DepositRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	UseAsCollateral bool            `json:"use_as_collateral"`
}

type SupplyRequest struct {
	TokenID         string           `json:"token_id"`
	ExtraDecimals   int              `json:"extra_decimals"`
	UseAsCollateral bool             `json:"use_as_collateral"`
	Amount          decimal.Decimal  `json:"amount"`
	MaxAmount       *decimal.Decimal `json:"max_amount,omitempty"`
}

type BorrowRequest struct {
	TokenID       string          `json:"token_id"`
	ExtraDecimals int             `json:"extra_decimals"`
	Amount        decimal.Decimal `json:"amount"`
}

type WithdrawRequest struct {
	TokenID          string           `json:"token_id"`
	ExtraDecimals    int              `json:"extra_decimals"`
	Amount           decimal.Decimal  `json:"amount"`
	CollateralAmount decimal.Decimal  `json:"collateral_amount"`
	MaxAmount        *decimal.Decimal `json:"max_amount,omitempty"`
	Collateral       decimal.Decimal  `json:"collateral"`
}

type RepayRequest struct {
	TokenID       string           `json:"token_id"`
	Amount        decimal.Decimal  `json:"amount"`
	ExtraDecimals int              `json:"extra_decimals"`
	MaxAmount     *decimal.Decimal `json:"max_amount,omitempty"`
}

// AddCollateralRequest with a nil Amount pledges the whole supplied balance.
type AddCollateralRequest struct {
	TokenID       string           `json:"token_id"`
	ExtraDecimals int              `json:"extra_decimals"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

// RemoveCollateralRequest with a nil Amount releases all collateral.
type RemoveCollateralRequest struct {
	TokenID       string           `json:"token_id"`
	ExtraDecimals int              `json:"extra_decimals"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

func (*DepositRequest) Primitive() Primitive          { return PrimitiveDeposit }
func (*SupplyRequest) Primitive() Primitive           { return PrimitiveSupply }
func (*BorrowRequest) Primitive() Primitive           { return PrimitiveBorrow }
func (*WithdrawRequest) Primitive() Primitive         { return PrimitiveWithdraw }
func (*RepayRequest) Primitive() Primitive            { return PrimitiveRepay }
func (*AddCollateralRequest) Primitive() Primitive    { return PrimitiveAddCollateral }
func (*RemoveCollateralRequest) Primitive() Primitive { return PrimitiveRemoveCollateral }
