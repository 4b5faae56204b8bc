package controller

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/action"
	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/monitoring"
	"github.com/dwarvesf/lending-backend/internal/selection"
	"github.com/dwarvesf/lending-backend/internal/telemetry"
	"github.com/dwarvesf/lending-backend/internal/txrpc"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

const (
	outcomeNoop      = "noop"
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
)

type Controller struct {
	selection selection.IStore
	telemetry telemetry.ITelemetry
	txRPC     txrpc.ITxRPC
	metrics   *monitoring.ActionMetrics
	logger    *logger.Logger
	config    *config.AppConfig

	inflight sync.WaitGroup
}

func New(
	selection selection.IStore,
	telemetry telemetry.ITelemetry,
	txRPC txrpc.ITxRPC,
	metrics *monitoring.ActionMetrics,
	logger *logger.Logger,
	config *config.AppConfig,
) *Controller {
	return &Controller{
		selection: selection,
		telemetry: telemetry,
		txRPC:     txRPC,
		metrics:   metrics,
		logger:    logger,
		config:    config,
	}
}

func (c *Controller) OpenAction(ctx context.Context, accountID string, a model.Action, tokenID string) (*selection.Session, error) {
	if !a.IsValid() {
		return nil, ErrInvalidAction
	}

	session, err := c.selection.Open(ctx, accountID, a, tokenID)
	if err != nil {
		c.logger.Error("[OpenAction][Open]", map[string]string{
			"account": accountID,
			"action":  a.String(),
			"error":   err.Error(),
		})
		return nil, err
	}
	return session, nil
}

func (c *Controller) GetSession(ctx context.Context, accountID string) (*selection.Session, error) {
	session, err := c.selection.Get(ctx, accountID)
	if errors.Is(err, selection.ErrSessionNotFound) {
		return nil, ErrNoActiveAction
	}
	return session, err
}

func (c *Controller) Dismiss(ctx context.Context, accountID string) error {
	if _, err := c.activeSession(ctx, accountID); err != nil {
		return err
	}
	return c.selection.Hide(ctx, accountID)
}

func (c *Controller) UpdateAmount(ctx context.Context, accountID string, amount decimal.Decimal, isMax bool) (*selection.Session, error) {
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if _, err := c.activeSession(ctx, accountID); err != nil {
		return nil, err
	}

	c.logger.Debug("[UpdateAmount]", map[string]string{
		"account": accountID,
		"amount":  amount.String(),
		"is_max":  strconv.FormatBool(isMax),
	})
	return c.selection.SetAmount(ctx, accountID, amount, isMax)
}

func (c *Controller) ToggleCollateral(ctx context.Context, accountID string, useAsCollateral, canUseAsCollateral bool) (*selection.Session, error) {
	if !canUseAsCollateral {
		return nil, ErrCollateralNotEligible
	}

	session, err := c.activeSession(ctx, accountID)
	if err != nil {
		return nil, err
	}

	c.telemetry.TrackUseAsCollateral(accountID, session.Action, model.UseAsCollateralPayload{
		TokenID:         session.TokenID,
		UseAsCollateral: useAsCollateral,
	})

	return c.selection.ToggleUseAsCollateral(ctx, accountID, useAsCollateral)
}

func (c *Controller) SyncCollateral(ctx context.Context, accountID string, canUseAsCollateral bool) (*selection.Session, bool, error) {
	session, err := c.GetSession(ctx, accountID)
	if err != nil {
		return nil, false, err
	}
	return c.correctCollateral(ctx, accountID, session, canUseAsCollateral)
}

func (c *Controller) Preview(ctx context.Context, accountID string, in SubmitInput) (*Preview, error) {
	session, err := c.activeSession(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if action.NeedsCollateralCorrection(session.Input.UseAsCollateral, in.Asset.CanUseAsCollateral) {
		corrected := *session
		corrected.Input.UseAsCollateral = false
		session = &corrected
	}

	state := c.state(session, in)
	preview := &Preview{
		Session:              session,
		Title:                session.Action.Title(),
		DisplaySymbol:        in.DisplaySymbol,
		Limits:               state.Limits,
		CanSubmit:            action.CanSubmit(session.Action, session.Input.Amount, in.HealthFactor),
		ShowCollateralToggle: action.ShowCollateralToggle(session.Action),
		SliderValue:          action.SliderValue(session.Input.Amount, state.Limits.Available),
	}

	if req, ok := action.Resolve(state); ok {
		preview.Primitive = req.Primitive()
		preview.Request = req
	}
	return preview, nil
}

func (c *Controller) Submit(ctx context.Context, accountID string, in SubmitInput) (*SubmitResult, error) {
	session, err := c.activeSession(ctx, accountID)
	if err != nil {
		return nil, err
	}
	session, _, err = c.correctCollateral(ctx, accountID, session, in.Asset.CanUseAsCollateral)
	if err != nil {
		return nil, err
	}
	if !action.CanSubmit(session.Action, session.Input.Amount, in.HealthFactor) {
		return nil, ErrActionNotAllowed
	}

	acquired, err := c.selection.AcquireLoading(ctx, accountID)
	if err != nil {
		c.logger.Error("[Submit][AcquireLoading]", map[string]string{
			"account": accountID,
			"error":   err.Error(),
		})
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmissionInFlight
	}

	state := c.state(session, in)
	c.telemetry.TrackActionButton(accountID, session.Action, model.ActionButtonPayload{
		TokenID:         session.TokenID,
		Amount:          session.Input.Amount,
		IsMax:           session.Input.IsMax,
		UseAsCollateral: session.Input.UseAsCollateral,
		Available:       state.Limits.Available,
		Collateral:      state.Limits.Collateral,
		SliderValue:     action.SliderValue(session.Input.Amount, state.Limits.Available),
	})

	if err := c.selection.Hide(ctx, accountID); err != nil {
		c.logger.Error("[Submit][Hide]", map[string]string{
			"account": accountID,
			"error":   err.Error(),
		})
		c.releaseLoading(context.WithoutCancel(ctx), accountID)
		return nil, err
	}

	req, ok := action.Resolve(state)
	if !ok {
		c.releaseLoading(ctx, accountID)
		c.metrics.RecordSubmission(session.Action.String(), outcomeNoop)
		c.logger.Info("[Submit] nothing to dispatch", map[string]string{
			"account": accountID,
			"action":  session.Action.String(),
		})
		return &SubmitResult{Dispatched: false}, nil
	}

	c.inflight.Add(1)
	go c.dispatch(context.WithoutCancel(ctx), accountID, session.Action, req)

	return &SubmitResult{
		Dispatched: true,
		Primitive:  req.Primitive(),
		Request:    req,
	}, nil
}

func (c *Controller) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dispatch runs detached from the request that submitted it. Its outcome is
// only logged.
func (c *Controller) dispatch(ctx context.Context, accountID string, a model.Action, req model.TxRequest) {
	defer c.inflight.Done()
	defer c.releaseLoading(ctx, accountID)

	callCtx := ctx
	if timeout := c.config.Blockchain.TxTimeout; timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	txHash, err := txrpc.Dispatch(callCtx, c.txRPC, req)
	if err != nil {
		c.metrics.RecordSubmission(a.String(), outcomeFailed)
		c.logger.Error("[Submit][Dispatch]", map[string]string{
			"account":   accountID,
			"action":    a.String(),
			"primitive": string(req.Primitive()),
			"error":     err.Error(),
		})
		return
	}

	c.metrics.RecordSubmission(a.String(), outcomeSucceeded)
	c.logger.Info("[Submit] transaction sent", map[string]string{
		"account":   accountID,
		"action":    a.String(),
		"primitive": string(req.Primitive()),
		"tx_hash":   txHash,
	})
}

func (c *Controller) releaseLoading(ctx context.Context, accountID string) {
	if err := c.selection.ReleaseLoading(ctx, accountID); err != nil {
		c.logger.Error("[Submit][ReleaseLoading]", map[string]string{
			"account": accountID,
			"error":   err.Error(),
		})
	}
}

// correctCollateral clears the collateral flag once the asset is no longer
// eligible. It issues at most one store update per transition.
func (c *Controller) correctCollateral(ctx context.Context, accountID string, session *selection.Session, canUseAsCollateral bool) (*selection.Session, bool, error) {
	if !action.NeedsCollateralCorrection(session.Input.UseAsCollateral, canUseAsCollateral) {
		return session, false, nil
	}

	session, err := c.selection.ToggleUseAsCollateral(ctx, accountID, false)
	if err != nil {
		c.logger.Error("[correctCollateral][ToggleUseAsCollateral]", map[string]string{
			"account": accountID,
			"error":   err.Error(),
		})
		return nil, false, err
	}

	c.logger.Info("[correctCollateral] collateral flag cleared for ineligible asset", map[string]string{
		"account": accountID,
		"token":   session.TokenID,
	})
	return session, true, nil
}

func (c *Controller) activeSession(ctx context.Context, accountID string) (*selection.Session, error) {
	session, err := c.GetSession(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !session.Open {
		return nil, ErrNoActiveAction
	}
	return session, nil
}

func (c *Controller) state(session *selection.Session, in SubmitInput) action.State {
	return action.State{
		Selection:     session.Selection(in.Asset.ExtraDecimals),
		Input:         session.Input,
		Limits:        action.DeriveLimits(session.Action, in.Asset, in.MaxBorrowAmount),
		Max:           in.MaxAmounts,
		NativeTokenID: c.config.Blockchain.NativeTokenID,
	}
}

