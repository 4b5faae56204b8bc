package server

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"

	"github.com/dwarvesf/lending-backend/internal/controller"
	"github.com/dwarvesf/lending-backend/internal/handler"
	"github.com/dwarvesf/lending-backend/internal/handler/health"
	"github.com/dwarvesf/lending-backend/internal/monitoring"
	"github.com/dwarvesf/lending-backend/internal/selection"
	"github.com/dwarvesf/lending-backend/internal/store"
	pgstore "github.com/dwarvesf/lending-backend/internal/store/postgres"
	"github.com/dwarvesf/lending-backend/internal/telemetry"
	"github.com/dwarvesf/lending-backend/internal/transport/http"
	"github.com/dwarvesf/lending-backend/internal/txrpc"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
	"github.com/dwarvesf/lending-backend/internal/utils/webhook"
)

const (
	retentionJobName    = "telemetry_retention"
	retentionJobTimeout = 5 * time.Minute
	shutdownTimeout     = 30 * time.Second
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)
	defer logger.Sync()

	db := pgstore.New(appConfig, logger)
	s := store.New(db)

	selectionStore, err := selection.New(appConfig, logger)
	if err != nil {
		logger.Fatal("[Init][selection.New] failed to init selection store", map[string]string{
			"error": err.Error(),
		})
	}

	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	apiMetrics := monitoring.NewExternalAPIMetrics()
	apiMetrics.MustRegister(metricsRegistry)
	actionMetrics := monitoring.NewActionMetrics()
	actionMetrics.MustRegister(metricsRegistry)
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)
	jobMetrics := monitoring.NewBackgroundJobMetrics()
	jobMetrics.MustRegister(metricsRegistry)

	jobStatusManager := monitoring.NewJobStatusManager(logger, jobMetrics)

	rpc, err := txrpc.New(appConfig, logger)
	if err != nil {
		logger.Fatal("[Init][txrpc.New] failed to init lending pool rpc", map[string]string{
			"error": err.Error(),
		})
	}

	breakerConfig := monitoring.LendingRPCBreakerConfig(appConfig)
	if err := monitoring.ValidateCircuitBreakerConfig(breakerConfig); err != nil {
		logger.Fatal("[Init][ValidateCircuitBreakerConfig] invalid breaker config", map[string]string{
			"error": err.Error(),
		})
	}
	lendingRPC := monitoring.NewCircuitBreakerTxRPC(rpc, breakerConfig, apiMetrics, logger)

	tel := telemetry.New(db, s, appConfig, logger, actionMetrics)
	ctrl := controller.New(selectionStore, tel, lendingRPC, actionMetrics, logger, appConfig)

	checkers := map[string]health.Checker{
		"lending_pool_rpc": lendingRPC.Health,
	}
	if pinger, ok := selectionStore.(interface{ Ping(context.Context) error }); ok {
		checkers["selection_store"] = pinger.Ping
	}

	uptime := webhook.New(logger)
	c := cron.New()
	retention := monitoring.NewInstrumentedJob(retentionJobName, func(ctx context.Context) (map[string]interface{}, error) {
		deleted, err := tel.PurgeOlderThan(ctx, appConfig.Telemetry.Retention)
		if err != nil {
			return nil, err
		}
		// a failed heartbeat does not fail the purge
		_ = uptime.Heartbeat(ctx, appConfig.Telemetry.UptimeWebhookURL)
		return map[string]interface{}{"deleted": deleted}, nil
	}, jobStatusManager, logger, retentionJobTimeout)
	if _, err := c.AddJob(appConfig.Telemetry.RetentionPeriod, retention); err != nil {
		logger.Fatal("[Init][AddJob] invalid retention schedule", map[string]string{
			"schedule": appConfig.Telemetry.RetentionPeriod,
			"error":    err.Error(),
		})
	}
	c.Start()

	h := handler.New(appConfig, logger, ctrl, tel, db, checkers, metricsRegistry, jobStatusManager)
	srv := &nethttp.Server{
		Addr:    ":" + appConfig.ApiServer.Port,
		Handler: http.NewHttpServer(appConfig, logger, h, httpMetrics),
	}

	go func() {
		logger.Info("[Init] http server listening", map[string]string{
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Fatal("[Init][ListenAndServe] http server stopped", map[string]string{
				"error": err.Error(),
			})
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("[Init] shutting down")
	shutdown(srv, c, ctrl, tel, selectionStore, logger)
}

func shutdown(srv *nethttp.Server, c *cron.Cron, ctrl controller.IController, tel telemetry.ITelemetry, selectionStore selection.IStore, logger *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("[shutdown][Shutdown]", map[string]string{
			"error": err.Error(),
		})
	}

	select {
	case <-c.Stop().Done():
	case <-ctx.Done():
	}

	// in-flight dispatches still release their loading flags in the store
	if err := ctrl.Drain(ctx); err != nil {
		logger.Warn("[shutdown][Drain] transactions still in flight", map[string]string{
			"error": err.Error(),
		})
	}

	tel.Close()

	if closer, ok := selectionStore.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Error("[shutdown][Close] selection store", map[string]string{
				"error": err.Error(),
			})
		}
	}
}
