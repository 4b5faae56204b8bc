package pgstore

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

// New opens the configured database. Postgres is the deployment target; the
// sqlite driver backs local runs and tests and migrates itself.
func New(appConfig *config.AppConfig, logger *logger.Logger) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	switch appConfig.Postgres.Driver {
	case config.DBDriverSQLite:
		db, err = connectSQLite(appConfig)
	default:
		db, err = connectPostgres(appConfig)
	}
	if err != nil {
		logger.Fatal("failed to connect to database", map[string]string{
			"driver": appConfig.Postgres.Driver,
			"error":  err.Error(),
		})
	}

	logger.Info("database connected", map[string]string{
		"driver": appConfig.Postgres.Driver,
	})
	return db
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	}
}

func connectPostgres(appConfig *config.AppConfig) (*gorm.DB, error) {
	ds := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		appConfig.Postgres.Host,
		appConfig.Postgres.User,
		appConfig.Postgres.Pass,
		appConfig.Postgres.Name,
		appConfig.Postgres.Port,
		appConfig.Postgres.SSLMode,
	)

	return gorm.Open(postgres.Open(ds), gormConfig())
}

func connectSQLite(appConfig *config.AppConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(appConfig.Postgres.SQLitePath), gormConfig())
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.ActionEvent{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return db, nil
}
