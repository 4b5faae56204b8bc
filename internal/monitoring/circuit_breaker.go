package monitoring

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/txrpc"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

const lendingRPCName = "lending_rpc"

// CircuitBreakerTxRPC wraps txrpc.ITxRPC with circuit breaker functionality
type CircuitBreakerTxRPC struct {
	wrapped        txrpc.ITxRPC
	circuitBreaker *gobreaker.CircuitBreaker
	metrics        *ExternalAPIMetrics
	logger         *logger.Logger
	timeoutConfig  TimeoutConfig
}

// callResult carries request errors through the breaker without counting
// them as failures of the endpoint.
type callResult struct {
	txHash string
	err    error
}

func NewCircuitBreakerTxRPC(wrapped txrpc.ITxRPC, config CircuitBreakerConfig, metrics *ExternalAPIMetrics, logger *logger.Logger) *CircuitBreakerTxRPC {
	return NewCircuitBreakerTxRPCWithTimeout(wrapped, config, DefaultTimeoutConfig, metrics, logger)
}

func NewCircuitBreakerTxRPCWithTimeout(wrapped txrpc.ITxRPC, config CircuitBreakerConfig, timeoutConfig TimeoutConfig, metrics *ExternalAPIMetrics, logger *logger.Logger) *CircuitBreakerTxRPC {
	cb := &CircuitBreakerTxRPC{
		wrapped:       wrapped,
		metrics:       metrics,
		logger:        logger,
		timeoutConfig: timeoutConfig,
	}

	settings := gobreaker.Settings{
		Name:        lendingRPCName,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.ConsecutiveFailureThreshold)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state change", map[string]string{
				"service": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			metrics.UpdateCircuitBreakerState(lendingRPCName, to)
		},
	}

	cb.circuitBreaker = gobreaker.NewCircuitBreaker(settings)
	metrics.UpdateCircuitBreakerState(lendingRPCName, gobreaker.StateClosed)
	return cb
}

func (cb *CircuitBreakerTxRPC) State() gobreaker.State {
	return cb.circuitBreaker.State()
}

// Health reports an error while the breaker refuses calls.
func (cb *CircuitBreakerTxRPC) Health(_ context.Context) error {
	if state := cb.circuitBreaker.State(); state == gobreaker.StateOpen {
		return fmt.Errorf("%s circuit breaker is %s", lendingRPCName, state)
	}
	return nil
}

func (cb *CircuitBreakerTxRPC) Deposit(ctx context.Context, req *model.DepositRequest) (string, error) {
	return cb.execute(ctx, "deposit", func(ctx context.Context) (string, error) {
		return cb.wrapped.Deposit(ctx, req)
	})
}

func (cb *CircuitBreakerTxRPC) Supply(ctx context.Context, req *model.SupplyRequest) (string, error) {
	return cb.execute(ctx, "supply", func(ctx context.Context) (string, error) {
		return cb.wrapped.Supply(ctx, req)
	})
}

func (cb *CircuitBreakerTxRPC) Borrow(ctx context.Context, req *model.BorrowRequest) (string, error) {
	return cb.execute(ctx, "borrow", func(ctx context.Context) (string, error) {
		return cb.wrapped.Borrow(ctx, req)
	})
}

func (cb *CircuitBreakerTxRPC) Withdraw(ctx context.Context, req *model.WithdrawRequest) (string, error) {
	return cb.execute(ctx, "withdraw", func(ctx context.Context) (string, error) {
		return cb.wrapped.Withdraw(ctx, req)
	})
}

func (cb *CircuitBreakerTxRPC) Repay(ctx context.Context, req *model.RepayRequest) (string, error) {
	return cb.execute(ctx, "repay", func(ctx context.Context) (string, error) {
		return cb.wrapped.Repay(ctx, req)
	})
}

func (cb *CircuitBreakerTxRPC) AddCollateral(ctx context.Context, req *model.AddCollateralRequest) (string, error) {
	return cb.execute(ctx, "add_collateral", func(ctx context.Context) (string, error) {
		return cb.wrapped.AddCollateral(ctx, req)
	})
}

func (cb *CircuitBreakerTxRPC) RemoveCollateral(ctx context.Context, req *model.RemoveCollateralRequest) (string, error) {
	return cb.execute(ctx, "remove_collateral", func(ctx context.Context) (string, error) {
		return cb.wrapped.RemoveCollateral(ctx, req)
	})
}

func (cb *CircuitBreakerTxRPC) execute(ctx context.Context, operation string, fn func(ctx context.Context) (string, error)) (string, error) {
	result, err := cb.circuitBreaker.Execute(func() (interface{}, error) {
		return cb.executeWithTimeout(ctx, operation, fn)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			cb.metrics.RecordAPICall(lendingRPCName, operation, "rejected", 0)
		}
		return "", err
	}

	out := result.(callResult)
	return out.txHash, out.err
}

func (cb *CircuitBreakerTxRPC) executeWithTimeout(ctx context.Context, operation string, fn func(ctx context.Context) (string, error)) (interface{}, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, cb.timeoutConfig.RequestTimeout)
	defer cancel()

	txHash, err := fn(ctx)
	duration := time.Since(start).Seconds()

	if err == nil {
		cb.metrics.RecordAPICall(lendingRPCName, operation, "success", duration)
		return callResult{txHash: txHash}, nil
	}

	errType := classifyError(err)
	cb.logError(operation, duration, err, errType)

	if errType == ErrorTypeClientError || errType == ErrorTypeReverted {
		cb.metrics.RecordAPICall(lendingRPCName, operation, string(errType), duration)
		return callResult{err: err}, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		cb.metrics.RecordTimeout(lendingRPCName, operation)
	}
	cb.metrics.RecordAPICall(lendingRPCName, operation, "error", duration)
	return nil, err
}

func (cb *CircuitBreakerTxRPC) logError(operation string, duration float64, err error, errType APIErrorType) {
	cb.logger.Error("External API call failed", map[string]string{
		"service":    lendingRPCName,
		"operation":  operation,
		"duration":   strconv.FormatFloat(duration, 'f', 3, 64),
		"error":      err.Error(),
		"error_type": string(errType),
		"cb_state":   cb.circuitBreaker.State().String(),
	})
}

// classifyError classifies errors into different types for metrics and logging
func classifyError(err error) APIErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, txrpc.ErrInvalidTokenID) || errors.Is(err, txrpc.ErrUnsupportedRequest) {
		return ErrorTypeClientError
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorTypeTimeout
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "execution reverted"),
		strings.Contains(errMsg, "insufficient funds"),
		strings.Contains(errMsg, "nonce too low"):
		return ErrorTypeReverted
	case strings.Contains(errMsg, "timeout"),
		strings.Contains(errMsg, "deadline exceeded"):
		return ErrorTypeTimeout
	case strings.Contains(errMsg, "network"),
		strings.Contains(errMsg, "connection"),
		strings.Contains(errMsg, "unreachable"),
		strings.Contains(errMsg, "dns"):
		return ErrorTypeNetworkError
	case strings.Contains(errMsg, "500"),
		strings.Contains(errMsg, "502"),
		strings.Contains(errMsg, "503"),
		strings.Contains(errMsg, "504"),
		strings.Contains(errMsg, "bad gateway"),
		strings.Contains(errMsg, "service unavailable"):
		return ErrorTypeServerError
	case strings.Contains(errMsg, "400"),
		strings.Contains(errMsg, "401"),
		strings.Contains(errMsg, "403"),
		strings.Contains(errMsg, "429"),
		strings.Contains(errMsg, "rate limit"):
		return ErrorTypeClientError
	}

	return ErrorTypeUnknown
}

// ValidateCircuitBreakerConfig validates circuit breaker configuration
func ValidateCircuitBreakerConfig(config CircuitBreakerConfig) error {
	if config.MaxRequests == 0 {
		return fmt.Errorf("max_requests must be greater than 0")
	}
	if config.ConsecutiveFailureThreshold <= 0 {
		return fmt.Errorf("consecutive_failure_threshold must be greater than 0")
	}
	if config.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if config.Interval < 0 {
		return fmt.Errorf("interval must be non-negative")
	}
	return nil
}

