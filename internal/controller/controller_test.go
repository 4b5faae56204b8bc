package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/monitoring"
	"github.com/dwarvesf/lending-backend/internal/selection"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

const account = "alice.near"

type mockTelemetry struct {
	mock.Mock
}

func (m *mockTelemetry) TrackActionButton(accountID string, a model.Action, payload model.ActionButtonPayload) {
	m.Called(accountID, a, payload)
}

func (m *mockTelemetry) TrackUseAsCollateral(accountID string, a model.Action, payload model.UseAsCollateralPayload) {
	m.Called(accountID, a, payload)
}

func (m *mockTelemetry) ListEvents(ctx context.Context, accountID string, limit int) ([]model.ActionEvent, error) {
	args := m.Called(ctx, accountID, limit)
	return args.Get(0).([]model.ActionEvent), args.Error(1)
}

func (m *mockTelemetry) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTelemetry) Close() {
	m.Called()
}

type mockTxRPC struct {
	mock.Mock
}

func (m *mockTxRPC) Deposit(ctx context.Context, req *model.DepositRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockTxRPC) Supply(ctx context.Context, req *model.SupplyRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockTxRPC) Borrow(ctx context.Context, req *model.BorrowRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockTxRPC) Withdraw(ctx context.Context, req *model.WithdrawRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockTxRPC) Repay(ctx context.Context, req *model.RepayRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockTxRPC) AddCollateral(ctx context.Context, req *model.AddCollateralRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockTxRPC) RemoveCollateral(ctx context.Context, req *model.RemoveCollateralRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// callLog records the order in which collaborators were reached.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fixture struct {
	ctrl      *Controller
	store     *selection.MemoryStore
	telemetry *mockTelemetry
	txRPC     *mockTxRPC
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	appConfig := &config.AppConfig{
		Blockchain: config.BlockchainConfig{
			NativeTokenID: "wrap.near",
			TxTimeout:     time.Second,
		},
	}

	f := &fixture{
		store:     selection.NewMemoryStore(),
		telemetry: &mockTelemetry{},
		txRPC:     &mockTxRPC{},
	}
	f.ctrl = New(f.store, f.telemetry, f.txRPC, monitoring.NewActionMetrics(), logger.New("test"), appConfig)
	return f
}

func (f *fixture) open(t *testing.T, a model.Action, tokenID string, amount int64, isMax bool) {
	t.Helper()
	ctx := context.Background()

	_, err := f.ctrl.OpenAction(ctx, account, a, tokenID)
	require.NoError(t, err)
	_, err = f.ctrl.UpdateAmount(ctx, account, decimal.NewFromInt(amount), isMax)
	require.NoError(t, err)
}

func (f *fixture) drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, f.ctrl.Drain(ctx))
}

func supplyInput() SubmitInput {
	return SubmitInput{
		Asset: model.AssetSnapshot{
			Symbol:             "USDC",
			Balance:            decimal.NewFromInt(100),
			CanUseAsCollateral: true,
		},
		MaxAmounts: model.MaxAmounts{
			Supply: decimal.NewFromInt(100),
		},
		DisplaySymbol: "USDC",
	}
}

func TestSubmit_DispatchesExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionSupply, "usdc.near", 10, false)

	f.telemetry.On("TrackActionButton", account, model.ActionSupply, mock.MatchedBy(func(p model.ActionButtonPayload) bool {
		return p.TokenID == "usdc.near" &&
			p.Amount.Equal(decimal.NewFromInt(10)) &&
			p.Available.Equal(decimal.NewFromInt(100)) &&
			p.SliderValue == 10
	})).Once()
	f.txRPC.On("Supply", mock.Anything, mock.MatchedBy(func(req *model.SupplyRequest) bool {
		return req.TokenID == "usdc.near" && req.Amount.Equal(decimal.NewFromInt(10)) && req.MaxAmount == nil
	})).Return("0xabc", nil).Once()

	result, err := f.ctrl.Submit(context.Background(), account, supplyInput())
	require.NoError(t, err)
	assert.True(t, result.Dispatched)
	assert.Equal(t, model.PrimitiveSupply, result.Primitive)

	f.drain(t)

	f.telemetry.AssertExpectations(t)
	f.txRPC.AssertExpectations(t)
	f.txRPC.AssertNumberOfCalls(t, "Supply", 1)

	session, err := f.store.Get(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, session.Open)
	assert.False(t, session.Loading)
}

func TestSubmit_NativeSupplyRoutesToDeposit(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionSupply, "wrap.near", 5, true)

	f.telemetry.On("TrackActionButton", account, model.ActionSupply, mock.Anything).Once()
	f.txRPC.On("Deposit", mock.Anything, mock.MatchedBy(func(req *model.DepositRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(5))
	})).Return("0xdef", nil).Once()

	result, err := f.ctrl.Submit(context.Background(), account, supplyInput())
	require.NoError(t, err)
	assert.Equal(t, model.PrimitiveDeposit, result.Primitive)

	f.drain(t)
	f.txRPC.AssertExpectations(t)
	f.txRPC.AssertNotCalled(t, "Supply", mock.Anything, mock.Anything)
}

func TestSubmit_TelemetryAndDismissPrecedeDispatch(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionBorrow, "usdc.near", 5, false)

	log := &callLog{}
	f.telemetry.On("TrackActionButton", account, model.ActionBorrow, mock.Anything).
		Run(func(mock.Arguments) { log.add("telemetry") }).Once()
	f.txRPC.On("Borrow", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			session, err := f.store.Get(context.Background(), account)
			if err == nil && !session.Open {
				log.add("dismissed")
			}
			log.add("dispatch")
		}).
		Return("0x1", nil).Once()

	in := supplyInput()
	in.MaxBorrowAmount = decimal.NewFromInt(50)
	_, err := f.ctrl.Submit(context.Background(), account, in)
	require.NoError(t, err)
	f.drain(t)

	assert.Equal(t, []string{"telemetry", "dismissed", "dispatch"}, log.list())
}

func TestSubmit_RejectsWhileInFlight(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionRepay, "usdc.near", 5, false)

	release := make(chan struct{})
	f.telemetry.On("TrackActionButton", account, model.ActionRepay, mock.Anything)
	f.txRPC.On("Repay", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return("0x2", nil).Once()

	in := supplyInput()
	_, err := f.ctrl.Submit(context.Background(), account, in)
	require.NoError(t, err)

	// reopening keeps the loading flag of the pending submission
	f.open(t, model.ActionRepay, "usdc.near", 5, false)
	_, err = f.ctrl.Submit(context.Background(), account, in)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	f.drain(t)

	f.txRPC.AssertNumberOfCalls(t, "Repay", 1)
	session, err := f.store.Get(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, session.Loading)
}

func TestSubmit_AdjustWithoutChangeIsNoop(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionAdjust, "usdc.near", 30, false)
	f.telemetry.On("TrackActionButton", account, model.ActionAdjust, mock.Anything).Once()

	in := SubmitInput{
		Asset: model.AssetSnapshot{
			Supplied:   decimal.NewFromInt(20),
			Collateral: decimal.NewFromInt(30),
		},
	}
	result, err := f.ctrl.Submit(context.Background(), account, in)
	require.NoError(t, err)
	assert.False(t, result.Dispatched)
	assert.Nil(t, result.Request)

	f.drain(t)
	assert.Empty(t, f.txRPC.Calls)

	session, err := f.store.Get(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, session.Loading)
	assert.False(t, session.Open)
}

func TestSubmit_GateRejections(t *testing.T) {
	hf := decimal.NewFromInt(50)

	tests := []struct {
		name         string
		action       model.Action
		amount       int64
		healthFactor *decimal.Decimal
	}{
		{name: "borrow without amount", action: model.ActionBorrow, amount: 0},
		{name: "withdraw in risk band", action: model.ActionWithdraw, amount: 5, healthFactor: &hf},
		{name: "adjust in risk band", action: model.ActionAdjust, amount: 0, healthFactor: &hf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.open(t, tt.action, "usdc.near", tt.amount, false)

			in := supplyInput()
			in.HealthFactor = tt.healthFactor
			_, err := f.ctrl.Submit(context.Background(), account, in)
			assert.ErrorIs(t, err, ErrActionNotAllowed)

			f.telemetry.AssertNotCalled(t, "TrackActionButton", mock.Anything, mock.Anything, mock.Anything)
			session, err := f.store.Get(context.Background(), account)
			require.NoError(t, err)
			assert.True(t, session.Open)
			assert.False(t, session.Loading)
		})
	}
}

func TestSubmit_SupplyIgnoresRiskBand(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionSupply, "usdc.near", 5, false)
	f.telemetry.On("TrackActionButton", account, model.ActionSupply, mock.Anything).Once()
	f.txRPC.On("Supply", mock.Anything, mock.Anything).Return("0x3", nil).Once()

	hf := decimal.NewFromInt(50)
	in := supplyInput()
	in.HealthFactor = &hf
	result, err := f.ctrl.Submit(context.Background(), account, in)
	require.NoError(t, err)
	assert.True(t, result.Dispatched)
	f.drain(t)
}

func TestSubmit_NoActiveAction(t *testing.T) {
	f := newFixture(t)

	_, err := f.ctrl.Submit(context.Background(), account, supplyInput())
	assert.ErrorIs(t, err, ErrNoActiveAction)

	f.open(t, model.ActionSupply, "usdc.near", 5, false)
	require.NoError(t, f.ctrl.Dismiss(context.Background(), account))

	_, err = f.ctrl.Submit(context.Background(), account, supplyInput())
	assert.ErrorIs(t, err, ErrNoActiveAction)
}

func TestSubmit_FailedDispatchReleasesLoading(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionBorrow, "usdc.near", 5, false)
	f.telemetry.On("TrackActionButton", account, model.ActionBorrow, mock.Anything).Once()
	f.txRPC.On("Borrow", mock.Anything, mock.Anything).Return("", errors.New("execution reverted")).Once()

	result, err := f.ctrl.Submit(context.Background(), account, supplyInput())
	require.NoError(t, err)
	assert.True(t, result.Dispatched)

	f.drain(t)

	session, err := f.store.Get(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, session.Loading)
}

func TestSubmit_DispatchOutlivesRequestContext(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionBorrow, "usdc.near", 5, false)
	f.telemetry.On("TrackActionButton", account, model.ActionBorrow, mock.Anything).Once()

	var dispatchErr error
	f.txRPC.On("Borrow", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			dispatchErr = args.Get(0).(context.Context).Err()
		}).
		Return("0x4", nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	_, err := f.ctrl.Submit(ctx, account, supplyInput())
	cancel()
	require.NoError(t, err)

	f.drain(t)
	assert.NoError(t, dispatchErr)
}

func TestDrain_RespectsDeadline(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionBorrow, "usdc.near", 5, false)

	release := make(chan struct{})
	defer close(release)
	f.telemetry.On("TrackActionButton", account, model.ActionBorrow, mock.Anything).Once()
	f.txRPC.On("Borrow", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return("0x5", nil).Once()

	_, err := f.ctrl.Submit(context.Background(), account, supplyInput())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.ctrl.Drain(ctx), context.DeadlineExceeded)
}

func TestToggleCollateral(t *testing.T) {
	t.Run("refused when the asset is not eligible", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, model.ActionSupply, "usdc.near", 5, false)

		_, err := f.ctrl.ToggleCollateral(context.Background(), account, true, false)
		assert.ErrorIs(t, err, ErrCollateralNotEligible)

		f.telemetry.AssertNotCalled(t, "TrackUseAsCollateral", mock.Anything, mock.Anything, mock.Anything)
		session, err := f.store.Get(context.Background(), account)
		require.NoError(t, err)
		assert.False(t, session.Input.UseAsCollateral)
	})

	t.Run("tracks before updating the selection", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, model.ActionSupply, "usdc.near", 5, false)

		var flagAtTrack *bool
		f.telemetry.On("TrackUseAsCollateral", account, model.ActionSupply, model.UseAsCollateralPayload{
			TokenID:         "usdc.near",
			UseAsCollateral: true,
		}).Run(func(mock.Arguments) {
			session, err := f.store.Get(context.Background(), account)
			if err == nil {
				flag := session.Input.UseAsCollateral
				flagAtTrack = &flag
			}
		}).Once()

		session, err := f.ctrl.ToggleCollateral(context.Background(), account, true, true)
		require.NoError(t, err)
		assert.True(t, session.Input.UseAsCollateral)

		f.telemetry.AssertExpectations(t)
		require.NotNil(t, flagAtTrack)
		assert.False(t, *flagAtTrack)
	})
}

func TestSyncCollateral(t *testing.T) {
	t.Run("clears the flag exactly once", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, model.ActionSupply, "usdc.near", 5, false)
		f.telemetry.On("TrackUseAsCollateral", account, model.ActionSupply, mock.Anything).Once()
		_, err := f.ctrl.ToggleCollateral(context.Background(), account, true, true)
		require.NoError(t, err)

		session, corrected, err := f.ctrl.SyncCollateral(context.Background(), account, false)
		require.NoError(t, err)
		assert.True(t, corrected)
		assert.False(t, session.Input.UseAsCollateral)

		_, corrected, err = f.ctrl.SyncCollateral(context.Background(), account, false)
		require.NoError(t, err)
		assert.False(t, corrected)

		// the corrector is not a user toggle
		f.telemetry.AssertNumberOfCalls(t, "TrackUseAsCollateral", 1)
	})

	t.Run("leaves eligible assets alone", func(t *testing.T) {
		f := newFixture(t)
		f.open(t, model.ActionSupply, "usdc.near", 5, false)
		f.telemetry.On("TrackUseAsCollateral", account, model.ActionSupply, mock.Anything).Once()
		_, err := f.ctrl.ToggleCollateral(context.Background(), account, true, true)
		require.NoError(t, err)

		session, corrected, err := f.ctrl.SyncCollateral(context.Background(), account, true)
		require.NoError(t, err)
		assert.False(t, corrected)
		assert.True(t, session.Input.UseAsCollateral)
	})

	t.Run("no session", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.ctrl.SyncCollateral(context.Background(), account, false)
		assert.ErrorIs(t, err, ErrNoActiveAction)
	})
}

func TestPreview_Withdraw(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionWithdraw, "usdc.near", 100, true)

	in := SubmitInput{
		Asset: model.AssetSnapshot{
			Supplied:   decimal.NewFromInt(40),
			Collateral: decimal.NewFromInt(60),
		},
		MaxAmounts:    model.MaxAmounts{Withdraw: decimal.NewFromInt(80)},
		DisplaySymbol: "USDC",
	}

	preview, err := f.ctrl.Preview(context.Background(), account, in)
	require.NoError(t, err)

	assert.Equal(t, "Withdraw", preview.Title)
	assert.True(t, preview.CanSubmit)
	assert.False(t, preview.ShowCollateralToggle)
	assert.Equal(t, int64(100), preview.SliderValue)
	assert.True(t, preview.Limits.Available.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, model.PrimitiveWithdraw, preview.Primitive)

	req, ok := preview.Request.(*model.WithdrawRequest)
	require.True(t, ok)
	assert.True(t, req.CollateralAmount.Equal(decimal.NewFromInt(60)))
	require.NotNil(t, req.MaxAmount)
	assert.True(t, req.MaxAmount.Equal(decimal.NewFromInt(60)))

	// preview never submits
	assert.Empty(t, f.txRPC.Calls)
	session, err := f.store.Get(context.Background(), account)
	require.NoError(t, err)
	assert.True(t, session.Open)
	assert.False(t, session.Loading)
}

func TestPreview_SupplyShowsToggle(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionSupply, "usdc.near", 0, false)

	preview, err := f.ctrl.Preview(context.Background(), account, supplyInput())
	require.NoError(t, err)
	assert.True(t, preview.ShowCollateralToggle)
	assert.False(t, preview.CanSubmit)
	assert.Equal(t, int64(0), preview.SliderValue)
}

func TestOpenAndUpdate_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.ctrl.OpenAction(context.Background(), account, model.Action("Stake"), "usdc.near")
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = f.ctrl.UpdateAmount(context.Background(), account, decimal.NewFromInt(1), false)
	assert.ErrorIs(t, err, ErrNoActiveAction)

	f.open(t, model.ActionBorrow, "usdc.near", 1, false)
	_, err = f.ctrl.UpdateAmount(context.Background(), account, decimal.NewFromInt(-1), false)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

// correctionCountingStore counts collateral flag clears issued to the store.
type correctionCountingStore struct {
	*selection.MemoryStore

	mu     sync.Mutex
	clears int
}

func (s *correctionCountingStore) ToggleUseAsCollateral(ctx context.Context, accountID string, useAsCollateral bool) (*selection.Session, error) {
	if !useAsCollateral {
		s.mu.Lock()
		s.clears++
		s.mu.Unlock()
	}
	return s.MemoryStore.ToggleUseAsCollateral(ctx, accountID, useAsCollateral)
}

func (s *correctionCountingStore) clearCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

func TestSubmit_ClearsCollateralForIneligibleAsset(t *testing.T) {
	newCountingFixture := func(t *testing.T) (*fixture, *correctionCountingStore) {
		f := newFixture(t)
		store := &correctionCountingStore{MemoryStore: f.store}
		f.ctrl.selection = store
		return f, store
	}

	ineligible := func() SubmitInput {
		in := supplyInput()
		in.Asset.CanUseAsCollateral = false
		return in
	}

	t.Run("token supply", func(t *testing.T) {
		f, store := newCountingFixture(t)
		f.open(t, model.ActionSupply, "usdc.near", 5, false)
		f.telemetry.On("TrackUseAsCollateral", account, model.ActionSupply, mock.Anything).Once()
		_, err := f.ctrl.ToggleCollateral(context.Background(), account, true, true)
		require.NoError(t, err)

		f.telemetry.On("TrackActionButton", account, model.ActionSupply, mock.MatchedBy(func(p model.ActionButtonPayload) bool {
			return !p.UseAsCollateral
		})).Once()
		f.txRPC.On("Supply", mock.Anything, mock.MatchedBy(func(req *model.SupplyRequest) bool {
			return !req.UseAsCollateral
		})).Return("0xabc", nil).Once()

		result, err := f.ctrl.Submit(context.Background(), account, ineligible())
		require.NoError(t, err)
		assert.True(t, result.Dispatched)
		req, ok := result.Request.(*model.SupplyRequest)
		require.True(t, ok)
		assert.False(t, req.UseAsCollateral)

		f.drain(t)
		f.txRPC.AssertExpectations(t)
		f.telemetry.AssertExpectations(t)
		assert.Equal(t, 1, store.clearCount())

		session, err := f.store.Get(context.Background(), account)
		require.NoError(t, err)
		assert.False(t, session.Input.UseAsCollateral)
	})

	t.Run("native deposit", func(t *testing.T) {
		f, store := newCountingFixture(t)
		f.open(t, model.ActionSupply, "wrap.near", 5, false)
		f.telemetry.On("TrackUseAsCollateral", account, model.ActionSupply, mock.Anything).Once()
		_, err := f.ctrl.ToggleCollateral(context.Background(), account, true, true)
		require.NoError(t, err)

		f.telemetry.On("TrackActionButton", account, model.ActionSupply, mock.Anything).Once()
		f.txRPC.On("Deposit", mock.Anything, mock.MatchedBy(func(req *model.DepositRequest) bool {
			return !req.UseAsCollateral
		})).Return("0xdef", nil).Once()

		result, err := f.ctrl.Submit(context.Background(), account, ineligible())
		require.NoError(t, err)
		assert.Equal(t, model.PrimitiveDeposit, result.Primitive)

		f.drain(t)
		f.txRPC.AssertExpectations(t)
		assert.Equal(t, 1, store.clearCount())
	})

	t.Run("eligible asset keeps the flag", func(t *testing.T) {
		f, store := newCountingFixture(t)
		f.open(t, model.ActionSupply, "usdc.near", 5, false)
		f.telemetry.On("TrackUseAsCollateral", account, model.ActionSupply, mock.Anything).Once()
		_, err := f.ctrl.ToggleCollateral(context.Background(), account, true, true)
		require.NoError(t, err)

		f.telemetry.On("TrackActionButton", account, model.ActionSupply, mock.Anything).Once()
		f.txRPC.On("Supply", mock.Anything, mock.MatchedBy(func(req *model.SupplyRequest) bool {
			return req.UseAsCollateral
		})).Return("0xabc", nil).Once()

		_, err = f.ctrl.Submit(context.Background(), account, supplyInput())
		require.NoError(t, err)

		f.drain(t)
		f.txRPC.AssertExpectations(t)
		assert.Equal(t, 0, store.clearCount())
	})
}

func TestPreview_IneligibleAssetResolvesWithoutCollateral(t *testing.T) {
	f := newFixture(t)
	f.open(t, model.ActionSupply, "usdc.near", 5, false)
	f.telemetry.On("TrackUseAsCollateral", account, model.ActionSupply, mock.Anything).Once()
	_, err := f.ctrl.ToggleCollateral(context.Background(), account, true, true)
	require.NoError(t, err)

	in := supplyInput()
	in.Asset.CanUseAsCollateral = false
	preview, err := f.ctrl.Preview(context.Background(), account, in)
	require.NoError(t, err)

	req, ok := preview.Request.(*model.SupplyRequest)
	require.True(t, ok)
	assert.False(t, req.UseAsCollateral)
	assert.False(t, preview.Session.Input.UseAsCollateral)

	// preview does not write the correction back
	session, err := f.store.Get(context.Background(), account)
	require.NoError(t, err)
	assert.True(t, session.Input.UseAsCollateral)
}
