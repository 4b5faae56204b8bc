package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/dwarvesf/lending-backend/internal/controller"
	"github.com/dwarvesf/lending-backend/internal/handler/action"
	"github.com/dwarvesf/lending-backend/internal/handler/health"
	"github.com/dwarvesf/lending-backend/internal/handler/metrics"
	"github.com/dwarvesf/lending-backend/internal/monitoring"
	"github.com/dwarvesf/lending-backend/internal/telemetry"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

type Handler struct {
	ActionHandler  action.IHandler
	HealthHandler  health.IHealthHandler
	MetricsHandler *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	tel telemetry.ITelemetry,
	db *gorm.DB,
	checkers map[string]health.Checker,
	metricsRegistry *prometheus.Registry,
	jobStatusManager *monitoring.JobStatusManager) *Handler {
	return &Handler{
		ActionHandler:  action.New(ctrl, tel, logger, appConfig),
		HealthHandler:  health.New(appConfig, logger, db, checkers, jobStatusManager),
		MetricsHandler: metrics.NewMetricsHandler(metricsRegistry),
	}
}
