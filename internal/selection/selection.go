package selection

import (
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

// New builds the store configured by SELECTION_STORE.
func New(appConfig *config.AppConfig, logger *logger.Logger) (IStore, error) {
	switch appConfig.Selection.Store {
	case config.SelectionStoreRedis:
		return NewRedisStore(appConfig, logger)
	default:
		return NewMemoryStore(), nil
	}
}
