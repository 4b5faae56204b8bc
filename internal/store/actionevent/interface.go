package actionevent

import (
	"time"

	"gorm.io/gorm"

	"github.com/dwarvesf/lending-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, event *model.ActionEvent) (*model.ActionEvent, error)
	// ListByAccount returns the newest events first.
	ListByAccount(tx *gorm.DB, accountID string, limit int) ([]model.ActionEvent, error)
	DeleteOlderThan(tx *gorm.DB, before time.Time) (int64, error)
}
