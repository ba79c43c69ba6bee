package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "laundry/internal/app"
	"laundry/internal/gateway/kafka/order_events"
	"laundry/internal/handlers/rest/geo_preview_get"
	"laundry/internal/handlers/rest/healthcheck_head"
	"laundry/internal/handlers/rest/order_status_logs_get"
	"laundry/internal/handlers/rest/order_status_put"
	"laundry/internal/handlers/rest/order_tracking_get"
	"laundry/internal/pkg/config"
	"laundry/internal/pkg/dotenv"
	"laundry/internal/pkg/grpcserver"
	"laundry/internal/pkg/kafka"
	metrics_system "laundry/internal/pkg/metrics"
	"laundry/internal/pkg/middlewares/auth"
	"laundry/internal/pkg/middlewares/graceful_shutdown"
	"laundry/internal/pkg/middlewares/metrics"
	"laundry/internal/pkg/middlewares/rate_limiter"
	"laundry/internal/pkg/middlewares/timeout"
	"laundry/internal/pkg/postgres"
	orderService "laundry/internal/service/order"
	"laundry/migrations"
	"laundry/pkg/logger"
	"laundry/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting laundry order service")

	if err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно не наследуются от сигнального ctx
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if _, err := postgres.CheckSchema(ctx, log, pool, migrations.FS); err != nil {
		return fmt.Errorf("schema check: %w", err)
	}

	publisher, closePublisher, err := newEventPublisher(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("event publisher: %w", err)
	}
	defer closePublisher()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, log, metrics_system.DefaultCollectInterval)

	healthServer, err := grpcserver.NewHealthServer(log, cfg.Server.GRPCHealthPort)
	if err != nil {
		return fmt.Errorf("gRPC health: %w", err)
	}
	grpcServerErr := make(chan error, 1)
	go func() {
		defer close(grpcServerErr)
		if err := healthServer.Serve(); err != nil {
			grpcServerErr <- err
		}
	}()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf("localhost:%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcServerErr:
		return fmt.Errorf("gRPC health server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.SetNotServing()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	healthServer.Stop(shutdownCtx)
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

// newEventPublisher при KAFKA_ENABLED=false возвращает no-op publisher.
func newEventPublisher(ctx context.Context, log logger.Logger, cfg *config.Kafka) (orderService.EventPublisher, func(), error) {
	if !cfg.Enabled {
		log.Info("Kafka disabled, status events are not published")
		return order_events.NoopPublisher{}, func() {}, nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, cfg)
	if err != nil {
		return nil, nil, err
	}

	closeProducer := func(p sarama.SyncProducer) func() {
		return func() {
			if err := p.Close(); err != nil {
				log.Error("failed to close Kafka producer", logger.NewField("error", err))
			}
		}
	}(producer)

	return order_events.New(producer, cfg.Topic), closeProducer, nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, rate_limiter.NewLimiter(cfg.RateLimiterQPS, cfg.RateLimiterBurst)))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, app.Querier)).Methods(http.MethodHead)

	api := router.PathPrefix("/api").Subrouter()

	// Предпросмотр адреса публичный, токен в нем не читается.
	api.Handle("/geo/preview", geo_preview_get.New(log, app.ServiceGeo)).Methods(http.MethodGet)

	orders := api.PathPrefix("/orders/{id:[0-9]+}").Subrouter()
	orders.Use(auth.Authenticate(log, app.TokenVerifier))

	orders.Handle("/tracking",
		auth.RequireCaller(log)(order_tracking_get.New(log, app.ServiceOrder)),
	).Methods(http.MethodGet)

	orders.Handle("/status",
		auth.RequireAdmin(log, app.AdminPolicy)(order_status_put.New(log, app.ServiceOrder)),
	).Methods(http.MethodPut)

	orders.Handle("/status-logs",
		auth.RequireAdmin(log, app.AdminPolicy)(order_status_logs_get.New(log, app.ServiceOrder)),
	).Methods(http.MethodGet)

	return router
}

func initPprofRouter() http.Handler {
	router := mux.NewRouter()
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	return router
}
