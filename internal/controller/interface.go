package controller

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/selection"
)

type IController interface {
	// OpenAction shows the action surface for an asset with a fresh input
	OpenAction(ctx context.Context, accountID string, action model.Action, tokenID string) (*selection.Session, error)

	GetSession(ctx context.Context, accountID string) (*selection.Session, error)

	// Dismiss hides the action surface without submitting
	Dismiss(ctx context.Context, accountID string) error

	UpdateAmount(ctx context.Context, accountID string, amount decimal.Decimal, isMax bool) (*selection.Session, error)

	// ToggleCollateral records the toggle and stores the new flag. It is refused
	// when the asset cannot be used as collateral.
	ToggleCollateral(ctx context.Context, accountID string, useAsCollateral, canUseAsCollateral bool) (*selection.Session, error)

	// SyncCollateral forces the collateral flag off once the asset becomes
	// ineligible. It is a no-op when the flag is already off.
	SyncCollateral(ctx context.Context, accountID string, canUseAsCollateral bool) (*selection.Session, bool, error)

	// Preview evaluates the active action without submitting it
	Preview(ctx context.Context, accountID string, in SubmitInput) (*Preview, error)

	// Submit resolves the active action and dispatches its transaction in the
	// background. The action surface is dismissed before the outcome is known.
	Submit(ctx context.Context, accountID string, in SubmitInput) (*SubmitResult, error)

	// Drain waits for background dispatches to settle
	Drain(ctx context.Context) error
}
