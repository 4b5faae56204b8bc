package telemetry

import (
	"context"
	"time"

	"github.com/dwarvesf/lending-backend/internal/model"
)

// ITelemetry records what users do on the action surface. The Track methods
// never block the caller and never fail.
type ITelemetry interface {
	TrackActionButton(accountID string, action model.Action, payload model.ActionButtonPayload)
	TrackUseAsCollateral(accountID string, action model.Action, payload model.UseAsCollateralPayload)
	ListEvents(ctx context.Context, accountID string, limit int) ([]model.ActionEvent, error)
	PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error)
	// Close stops accepting events and waits for queued ones to be written.
	Close()
}
