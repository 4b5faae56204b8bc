package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dwarvesf/lending-backend/internal/types/environments"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	SelectionStoreMemory = "memory"
	SelectionStoreRedis  = "redis"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Redis       RedisConfig
	Blockchain  BlockchainConfig
	Selection   SelectionConfig
	Telemetry   TelemetryConfig
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type BlockchainConfig struct {
	RPCEndpoint        string
	LendingPoolAddr    string
	SignerPrivateKey   string
	NativeTokenID      string
	NativeTokenAddr    string
	NativeDecimals     int
	TxTimeout          time.Duration
	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration
	BreakerFailures    int
}

type DBConnection struct {
	Driver string
	Host   string
	Port   string
	User   string
	Name   string
	Pass   string

	SSLMode    string
	SQLitePath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SelectionConfig struct {
	Store      string
	SessionTTL time.Duration
	LoadingTTL time.Duration
}

type TelemetryConfig struct {
	BufferSize       int
	Retention        time.Duration
	RetentionPeriod  string
	EventsQueryLimit int
	UptimeWebhookURL string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Parse(env),
		ApiServer: ApiServerConfig{
			Port:           envVarOrDefault("PORT", "8080"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Driver:     envVarOrDefault("DB_DRIVER", DBDriverPostgres),
			Host:       os.Getenv("DB_HOST"),
			Port:       os.Getenv("DB_PORT"),
			User:       os.Getenv("DB_USER"),
			Name:       os.Getenv("DB_NAME"),
			Pass:       os.Getenv("DB_PASS"),
			SSLMode:    os.Getenv("DB_SSL_MODE"),
			SQLitePath: envVarOrDefault("DB_SQLITE_PATH", "lending.db"),
		},
		Redis: RedisConfig{
			Addr:     envVarOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envVarAtoiOrDefault("REDIS_DB", 0),
		},
		Blockchain: BlockchainConfig{
			RPCEndpoint:        os.Getenv("BLOCKCHAIN_RPC_ENDPOINT"),
			LendingPoolAddr:    os.Getenv("BLOCKCHAIN_LENDING_POOL_ADDR"),
			SignerPrivateKey:   os.Getenv("BLOCKCHAIN_SIGNER_PRIVATE_KEY"),
			NativeTokenID:      envVarOrDefault("BLOCKCHAIN_NATIVE_TOKEN_ID", "wrap.near"),
			NativeTokenAddr:    os.Getenv("BLOCKCHAIN_NATIVE_TOKEN_ADDR"),
			NativeDecimals:     envVarAtoiOrDefault("BLOCKCHAIN_NATIVE_DECIMALS", 18),
			TxTimeout:          envVarDurationOrDefault("BLOCKCHAIN_TX_TIMEOUT", 2*time.Minute),
			BreakerMaxRequests: uint32(envVarAtoiOrDefault("BLOCKCHAIN_BREAKER_MAX_REQUESTS", 3)),
			BreakerInterval:    envVarDurationOrDefault("BLOCKCHAIN_BREAKER_INTERVAL", 45*time.Second),
			BreakerTimeout:     envVarDurationOrDefault("BLOCKCHAIN_BREAKER_TIMEOUT", 2*time.Minute),
			BreakerFailures:    envVarAtoiOrDefault("BLOCKCHAIN_BREAKER_FAILURES", 5),
		},
		Selection: SelectionConfig{
			Store:      envVarOrDefault("SELECTION_STORE", SelectionStoreMemory),
			SessionTTL: envVarDurationOrDefault("SELECTION_SESSION_TTL", 24*time.Hour),
			LoadingTTL: envVarDurationOrDefault("SELECTION_LOADING_TTL", 5*time.Minute),
		},
		Telemetry: TelemetryConfig{
			BufferSize:       envVarAtoiOrDefault("TELEMETRY_BUFFER_SIZE", 256),
			Retention:        envVarDurationOrDefault("TELEMETRY_RETENTION", 30*24*time.Hour),
			RetentionPeriod:  envVarOrDefault("TELEMETRY_RETENTION_PERIOD", "@every 1h"),
			EventsQueryLimit: envVarAtoiOrDefault("TELEMETRY_EVENTS_QUERY_LIMIT", 50),
			UptimeWebhookURL: os.Getenv("UPTIME_WEBHOOK_TELEMETRY_RETENTION_URL"),
		},
	}
}

func envVarOrDefault(envName, fallback string) string {
	if value := os.Getenv(envName); value != "" {
		return value
	}
	return fallback
}

func envVarAtoiOrDefault(envName string, fallback int) int {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		panic(err)
	}

	return value
}

func envVarDurationOrDefault(envName string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		panic(err)
	}

	return value
}
