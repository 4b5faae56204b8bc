package telemetry

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/monitoring"
	"github.com/dwarvesf/lending-backend/internal/store"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

const (
	statusQueued    = "queued"
	statusDropped   = "dropped"
	statusPersisted = "persisted"
	statusFailed    = "failed"
	statusUnencoded = "unencoded"
)

type Telemetry struct {
	db      *gorm.DB
	store   *store.Store
	logger  *logger.Logger
	metrics *monitoring.ActionMetrics

	mu     sync.RWMutex
	closed bool
	events chan model.ActionEvent
	wg     sync.WaitGroup
}

func New(db *gorm.DB, store *store.Store, appConfig *config.AppConfig, logger *logger.Logger, metrics *monitoring.ActionMetrics) *Telemetry {
	bufferSize := appConfig.Telemetry.BufferSize
	if bufferSize <= 0 {
		bufferSize = 1
	}

	t := &Telemetry{
		db:      db,
		store:   store,
		logger:  logger,
		metrics: metrics,
		events:  make(chan model.ActionEvent, bufferSize),
	}

	t.wg.Add(1)
	go t.run()

	return t
}

func (t *Telemetry) TrackActionButton(accountID string, action model.Action, payload model.ActionButtonPayload) {
	t.enqueue(model.ActionEvent{
		AccountID: accountID,
		Event:     model.ActionEventButton,
		Action:    action,
		TokenID:   payload.TokenID,
		Payload:   t.encodePayload(model.ActionEventButton, payload),
	})
}

func (t *Telemetry) TrackUseAsCollateral(accountID string, action model.Action, payload model.UseAsCollateralPayload) {
	t.enqueue(model.ActionEvent{
		AccountID: accountID,
		Event:     model.ActionEventUseAsCollateral,
		Action:    action,
		TokenID:   payload.TokenID,
		Payload:   t.encodePayload(model.ActionEventUseAsCollateral, payload),
	})
}

func (t *Telemetry) ListEvents(ctx context.Context, accountID string, limit int) ([]model.ActionEvent, error) {
	events, err := t.store.ActionEvent.ListByAccount(t.db.WithContext(ctx), accountID, limit)
	if err != nil {
		t.logger.Error("[ListEvents][ListByAccount]", map[string]string{
			"account": accountID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return events, nil
}

func (t *Telemetry) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	before := time.Now().Add(-age)

	var deleted int64
	err := store.DoInTx(t.db.WithContext(ctx), func(tx *gorm.DB) error {
		var err error
		deleted, err = t.store.ActionEvent.DeleteOlderThan(tx, before)
		return err
	})
	if err != nil {
		t.logger.Error("[PurgeOlderThan][DeleteOlderThan]", map[string]string{
			"before": before.Format(time.RFC3339),
			"error":  err.Error(),
		})
		return 0, err
	}

	t.logger.Info("[PurgeOlderThan] purged telemetry events", map[string]string{
		"before":  before.Format(time.RFC3339),
		"deleted": strconv.FormatInt(deleted, 10),
	})
	return deleted, nil
}

func (t *Telemetry) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	close(t.events)
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *Telemetry) enqueue(event model.ActionEvent) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		t.drop(event, "closed")
		return
	}

	select {
	case t.events <- event:
		t.metrics.RecordTelemetryEvent(string(event.Event), statusQueued)
	default:
		t.drop(event, "buffer full")
	}
}

func (t *Telemetry) drop(event model.ActionEvent, reason string) {
	t.metrics.RecordTelemetryEvent(string(event.Event), statusDropped)
	t.logger.Warn("[Telemetry] event dropped", map[string]string{
		"account": event.AccountID,
		"event":   string(event.Event),
		"reason":  reason,
	})
}

func (t *Telemetry) run() {
	defer t.wg.Done()

	for event := range t.events {
		t.persist(event)
	}
}

func (t *Telemetry) persist(event model.ActionEvent) {
	if _, err := t.store.ActionEvent.Create(t.db, &event); err != nil {
		t.metrics.RecordTelemetryEvent(string(event.Event), statusFailed)
		t.logger.Error("[Telemetry][Create]", map[string]string{
			"account": event.AccountID,
			"event":   string(event.Event),
			"error":   err.Error(),
		})
		return
	}

	t.metrics.RecordTelemetryEvent(string(event.Event), statusPersisted)
	t.logger.Debug("[Telemetry] event recorded", map[string]string{
		"account": event.AccountID,
		"event":   string(event.Event),
		"action":  string(event.Action),
		"token":   event.TokenID,
	})
}

// encodePayload returns an empty payload when marshalling fails; the event
// itself is still recorded.
func (t *Telemetry) encodePayload(event model.ActionEventType, payload interface{}) string {
	raw, err := json.Marshal(payload)
	if err != nil {
		t.metrics.RecordTelemetryEvent(string(event), statusUnencoded)
		t.logger.Error("[Telemetry][encodePayload]", map[string]string{
			"event": string(event),
			"error": err.Error(),
		})
		return ""
	}
	return string(raw)
}
