package actionevent

import (
	"time"

	"gorm.io/gorm"

	"github.com/dwarvesf/lending-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, event *model.ActionEvent) (*model.ActionEvent, error) {
	return event, tx.Create(event).Error
}

func (s *Store) ListByAccount(tx *gorm.DB, accountID string, limit int) ([]model.ActionEvent, error) {
	var events []model.ActionEvent
	query := tx.Where("account_id = ?", accountID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteOlderThan hard-deletes rows so the retention job actually frees space.
func (s *Store) DeleteOlderThan(tx *gorm.DB, before time.Time) (int64, error) {
	result := tx.Unscoped().Where("created_at < ?", before).Delete(&model.ActionEvent{})
	return result.RowsAffected, result.Error
}
