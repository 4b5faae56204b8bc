package pgstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

func TestNew_SQLiteDriverMigratesSchema(t *testing.T) {
	appConfig := &config.AppConfig{
		Postgres: config.DBConnection{
			Driver:     config.DBDriverSQLite,
			SQLitePath: "file::memory:?cache=shared",
		},
	}

	db := New(appConfig, logger.New("test"))
	require.NotNil(t, db)
	assert.True(t, db.Migrator().HasTable(&model.ActionEvent{}))
}
