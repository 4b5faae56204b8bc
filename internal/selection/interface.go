package selection

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
)

var ErrSessionNotFound = errors.New("selection: no session for account")

// Session is the action surface state of one account.
type Session struct {
	AccountID string          `json:"account_id"`
	Action    model.Action    `json:"action"`
	TokenID   string          `json:"token_id"`
	Input     model.UserInput `json:"input"`
	Open      bool            `json:"open"`
	Loading   bool            `json:"loading"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Selection returns the asset part of the session for the given snapshot.
func (s Session) Selection(extraDecimals int) model.AssetSelection {
	return model.AssetSelection{
		Action:        s.Action,
		TokenID:       s.TokenID,
		ExtraDecimals: extraDecimals,
	}
}

type IStore interface {
	// Open shows the action surface for an asset and resets the user input.
	Open(ctx context.Context, accountID string, action model.Action, tokenID string) (*Session, error)
	Get(ctx context.Context, accountID string) (*Session, error)
	SetAmount(ctx context.Context, accountID string, amount decimal.Decimal, isMax bool) (*Session, error)
	ToggleUseAsCollateral(ctx context.Context, accountID string, useAsCollateral bool) (*Session, error)
	// Hide dismisses the action surface. The loading flag is left untouched.
	Hide(ctx context.Context, accountID string) error
	// AcquireLoading sets the loading flag and reports false if it was already set.
	AcquireLoading(ctx context.Context, accountID string) (bool, error)
	ReleaseLoading(ctx context.Context, accountID string) error
}
