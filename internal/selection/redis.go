package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

const (
	keyPrefix         = "lending:selection:"
	maxUpdateAttempts = 5
)

// RedisStore keeps sessions as JSON documents so several API replicas share
// one view of every account's action surface.
type RedisStore struct {
	client     *redis.Client
	logger     *logger.Logger
	sessionTTL time.Duration
	loadingTTL time.Duration
}

func NewRedisStore(appConfig *config.AppConfig, logger *logger.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     appConfig.Redis.Addr,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("[NewRedisStore] connected to redis", map[string]string{
		"addr": appConfig.Redis.Addr,
	})

	return &RedisStore{
		client:     client,
		logger:     logger,
		sessionTTL: appConfig.Selection.SessionTTL,
		loadingTTL: appConfig.Selection.LoadingTTL,
	}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping reports whether redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func sessionKey(accountID string) string {
	return keyPrefix + accountID
}

func loadingKey(accountID string) string {
	return keyPrefix + accountID + ":loading"
}

func (s *RedisStore) Open(ctx context.Context, accountID string, action model.Action, tokenID string) (*Session, error) {
	session := &Session{
		AccountID: accountID,
		Action:    action,
		TokenID:   tokenID,
		Input:     model.UserInput{Amount: decimal.Zero},
		Open:      true,
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, sessionKey(accountID), data, s.sessionTTL).Err(); err != nil {
		s.logger.Error("[RedisStore][Open]", map[string]string{
			"account": accountID,
			"error":   err.Error(),
		})
		return nil, err
	}

	loading, err := s.isLoading(ctx, accountID)
	if err != nil {
		return nil, err
	}
	session.Loading = loading
	return session, nil
}

func (s *RedisStore) Get(ctx context.Context, accountID string) (*Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	loading, err := s.isLoading(ctx, accountID)
	if err != nil {
		return nil, err
	}
	session.Loading = loading
	return &session, nil
}

func (s *RedisStore) SetAmount(ctx context.Context, accountID string, amount decimal.Decimal, isMax bool) (*Session, error) {
	return s.update(ctx, accountID, func(session *Session) {
		session.Input.Amount = amount
		session.Input.IsMax = isMax
	})
}

func (s *RedisStore) ToggleUseAsCollateral(ctx context.Context, accountID string, useAsCollateral bool) (*Session, error) {
	return s.update(ctx, accountID, func(session *Session) {
		session.Input.UseAsCollateral = useAsCollateral
	})
}

func (s *RedisStore) Hide(ctx context.Context, accountID string) error {
	_, err := s.update(ctx, accountID, func(session *Session) {
		session.Open = false
	})
	return err
}

// acquireLoadingScript sets the loading key only while the session key
// exists, so an expired session never leaves a loading key behind.
// Returns -1 without a session, 1 when acquired and 0 when already held.
var acquireLoadingScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return -1
end
local ok
if tonumber(ARGV[2]) > 0 then
	ok = redis.call("SET", KEYS[2], ARGV[1], "NX", "PX", ARGV[2])
else
	ok = redis.call("SET", KEYS[2], ARGV[1], "NX")
end
if ok then
	return 1
end
return 0
`)

// AcquireLoading lets only one replica start a submission; the TTL frees the
// flag if the process dies before the dispatch settles.
func (s *RedisStore) AcquireLoading(ctx context.Context, accountID string) (bool, error) {
	res, err := acquireLoadingScript.Run(ctx, s.client,
		[]string{sessionKey(accountID), loadingKey(accountID)},
		time.Now().Unix(), s.loadingTTL.Milliseconds(),
	).Int64()
	if err != nil {
		return false, err
	}

	switch res {
	case -1:
		return false, ErrSessionNotFound
	case 1:
		return true, nil
	default:
		return false, nil
	}
}

func (s *RedisStore) ReleaseLoading(ctx context.Context, accountID string) error {
	return s.client.Del(ctx, loadingKey(accountID)).Err()
}

func (s *RedisStore) isLoading(ctx context.Context, accountID string) (bool, error) {
	n, err := s.client.Exists(ctx, loadingKey(accountID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) update(ctx context.Context, accountID string, fn func(session *Session)) (*Session, error) {
	key := sessionKey(accountID)
	var updated Session

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrSessionNotFound
			}
			return err
		}

		if err := json.Unmarshal(raw, &updated); err != nil {
			return fmt.Errorf("failed to decode session: %w", err)
		}
		fn(&updated)
		updated.UpdatedAt = time.Now()

		data, err := json.Marshal(&updated)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.sessionTTL)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}

		loading, err := s.isLoading(ctx, accountID)
		if err != nil {
			return nil, err
		}
		updated.Loading = loading
		return &updated, nil
	}

	s.logger.Warn("[RedisStore][update] gave up after concurrent writes", map[string]string{
		"account": accountID,
	})
	return nil, fmt.Errorf("selection: concurrent update of %s", accountID)
}
