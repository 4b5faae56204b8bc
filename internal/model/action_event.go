package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ActionEventType string

const (
	ActionEventButton          ActionEventType = "action_button"
	ActionEventUseAsCollateral ActionEventType = "use_as_collateral"
)

// ActionEvent is a persisted telemetry record of the action surface.
type ActionEvent struct {
	gorm.Model
	AccountID string          `gorm:"column:account_id;type:varchar(255);not null;index"`
	Event     ActionEventType `gorm:"column:event;type:varchar(50);not null"`
	Action    Action          `gorm:"column:action;type:varchar(50)"`
	TokenID   string          `gorm:"column:token_id;type:varchar(255)"`
	Payload   string          `gorm:"column:payload;type:text"`
}

func (ActionEvent) TableName() string {
	return "action_events"
}

// ActionButtonPayload is recorded when an action is submitted.
type ActionButtonPayload struct {
	TokenID         string          `json:"token_id"`
	Amount          decimal.Decimal `json:"amount"`
	IsMax           bool            `json:"is_max"`
	UseAsCollateral bool            `json:"use_as_collateral"`
	Available       decimal.Decimal `json:"available"`
	Collateral      decimal.Decimal `json:"collateral"`
	SliderValue     int64           `json:"slider_value"`
}

// UseAsCollateralPayload is recorded when the collateral switch is flipped.
type UseAsCollateralPayload struct {
	TokenID         string `json:"token_id"`
	UseAsCollateral bool   `json:"use_as_collateral"`
}
