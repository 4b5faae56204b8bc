package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/lending-backend/internal/handler"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	account := v1.Group("/accounts/:account_id")
	{
		account.POST("/action", h.ActionHandler.OpenAction)
		account.GET("/action", h.ActionHandler.GetSession)
		account.DELETE("/action", h.ActionHandler.Dismiss)
		account.PUT("/action/amount", h.ActionHandler.UpdateAmount)
		account.PUT("/action/collateral", h.ActionHandler.ToggleCollateral)
		account.POST("/action/eligibility", h.ActionHandler.SyncEligibility)
		account.POST("/action/preview", h.ActionHandler.Preview)
		account.POST("/action/submit", h.ActionHandler.Submit)
		account.GET("/events", h.ActionHandler.ListEvents)
	}

	health := v1.Group("/health")
	{
		health.GET("/db", h.HealthHandler.Database)
		health.GET("/external", h.HealthHandler.External)
		health.GET("/jobs", h.HealthHandler.Jobs)
	}

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)
	r.GET("/metrics", h.MetricsHandler.Handler())
}
