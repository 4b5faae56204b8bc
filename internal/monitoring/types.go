package monitoring

import (
	"time"

	"github.com/dwarvesf/lending-backend/internal/utils/config"
)

// CircuitBreakerConfig defines the configuration for circuit breakers
type CircuitBreakerConfig struct {
	MaxRequests                 uint32        `json:"max_requests"`
	Interval                    time.Duration `json:"interval"`
	Timeout                     time.Duration `json:"timeout"`
	ConsecutiveFailureThreshold int           `json:"consecutive_failure_threshold"`
}

// TimeoutConfig defines timeout configurations for different operations
type TimeoutConfig struct {
	RequestTimeout     time.Duration `json:"request_timeout"`
	HealthCheckTimeout time.Duration `json:"health_check_timeout"`
}

// APIErrorType represents different types of API errors for classification
type APIErrorType string

const (
	ErrorTypeTimeout      APIErrorType = "timeout"
	ErrorTypeNetworkError APIErrorType = "network_error"
	ErrorTypeServerError  APIErrorType = "server_error"
	ErrorTypeClientError  APIErrorType = "client_error"
	ErrorTypeReverted     APIErrorType = "reverted"
	ErrorTypeUnknown      APIErrorType = "unknown"
)

// DefaultTimeoutConfig provides default timeout configurations
var DefaultTimeoutConfig = TimeoutConfig{
	RequestTimeout:     30 * time.Second,
	HealthCheckTimeout: 3 * time.Second,
}

// LendingRPCBreakerConfig reads the lending pool breaker settings.
func LendingRPCBreakerConfig(appConfig *config.AppConfig) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxRequests:                 appConfig.Blockchain.BreakerMaxRequests,
		Interval:                    appConfig.Blockchain.BreakerInterval,
		Timeout:                     appConfig.Blockchain.BreakerTimeout,
		ConsecutiveFailureThreshold: appConfig.Blockchain.BreakerFailures,
	}
}
