package store

import (
	"gorm.io/gorm"

	"github.com/dwarvesf/lending-backend/internal/store/actionevent"
)

type Store struct {
	ActionEvent actionevent.IStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		ActionEvent: actionevent.New(),
	}
}
