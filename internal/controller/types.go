package controller

import (
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/selection"
)

// SubmitInput is the protocol state the client read for the selected asset.
type SubmitInput struct {
	Asset           model.AssetSnapshot `json:"asset"`
	MaxAmounts      model.MaxAmounts    `json:"max_amounts"`
	MaxBorrowAmount decimal.Decimal     `json:"max_borrow_amount"`
	HealthFactor    *decimal.Decimal    `json:"health_factor,omitempty"`
	DisplaySymbol   string              `json:"display_symbol"`
}

type Preview struct {
	Session              *selection.Session `json:"session"`
	Title                string             `json:"title"`
	DisplaySymbol        string             `json:"display_symbol"`
	Limits               model.AssetLimits  `json:"limits"`
	CanSubmit            bool               `json:"can_submit"`
	ShowCollateralToggle bool               `json:"show_collateral_toggle"`
	SliderValue          int64              `json:"slider_value"`
	Primitive            model.Primitive    `json:"primitive,omitempty"`
	Request              model.TxRequest    `json:"request,omitempty"`
}

// SubmitResult describes what was dispatched. Dispatched is false when the
// action resolved to nothing, like an Adjust with no change.
type SubmitResult struct {
	Dispatched bool            `json:"dispatched"`
	Primitive  model.Primitive `json:"primitive,omitempty"`
	Request    model.TxRequest `json:"request,omitempty"`
}
