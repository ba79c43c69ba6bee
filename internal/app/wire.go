//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"laundry/internal/gateway/http/kakao"
	"laundry/internal/handlers/tasks/order_status_metrics"
	"laundry/internal/handlers/rest/geo_preview_get"
	"laundry/internal/handlers/rest/order_status_logs_get"
	"laundry/internal/handlers/rest/order_status_put"
	"laundry/internal/handlers/rest/order_tracking_get"
	"laundry/internal/pkg/config"
	"laundry/internal/pkg/factory/completion_estimate"
	"laundry/internal/pkg/identity"
	orderRepo "laundry/internal/repository/order"
	geoService "laundry/internal/service/geo"
	orderService "laundry/internal/service/order"

	"laundry/pkg/background"
	"laundry/pkg/logger"
	"laundry/pkg/querier"
	"laundry/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

const statusUpdateTxTimeout = 5 * time.Second

type (
	OrderStatusMetricsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceGeo        ServiceGeo
	TokenVerifier     *identity.TokenVerifier
	AdminPolicy       *identity.AdminPolicy
	Querier           *querier.Querier
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_status_put.Service
	order_tracking_get.Service
	order_status_logs_get.Service
	order_status_metrics.Service
}

type ServiceGeo interface {
	geo_preview_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderStatusMetricsInterval,

		provideOrderRepository,
		provideAdminPolicy,
		provideTokenVerifier,
		completion_estimate.New,
		provideServiceOrder,

		provideGeocoderHTTPClient,
		provideKakaoGateway,
		provideServiceGeo,

		provideOrderStatusMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceGeo), new(*geoService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.CompletionEstimator), new(*completion_estimate.CompletionTimeFactory)),
		wire.Bind(new(orderService.AdminPolicy), new(*identity.AdminPolicy)),
		wire.Bind(new(geoService.Geocoder), new(*kakao.Gateway)),

		wire.Bind(new(order_status_metrics.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithTimeout(statusUpdateTxTimeout))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAdminPolicy(cfg *config.Config) *identity.AdminPolicy {
	return identity.NewAdminPolicy(cfg.Admin)
}

func provideTokenVerifier(cfg *config.Config) *identity.TokenVerifier {
	return identity.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
	publisher orderService.EventPublisher,
	estimator orderService.CompletionEstimator,
	admins orderService.AdminPolicy,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(
		repository,
		txManager,
		publisher,
		estimator,
		admins,
		log.With(logger.NewField("component", "order-service")),
	)
}

// provideGeocoderHTTPClient - таймаут клиента с запасом, основной дедлайн ставит geo.Service.
func provideGeocoderHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Geocoder.Timeout + time.Second}
}

func provideKakaoGateway(client *http.Client, cfg *config.Config) *kakao.Gateway {
	return kakao.New(client, cfg.Geocoder.BaseURL, cfg.Geocoder.APIKey)
}

func provideServiceGeo(geocoder geoService.Geocoder, cfg *config.Config) *geoService.Service {
	return geoService.New(geocoder, geoService.DefaultServiceArea, cfg.Geocoder.Timeout)
}

func provideOrderStatusMetricsInterval(cfg *config.Config) OrderStatusMetricsInterval {
	return OrderStatusMetricsInterval(cfg.Tasks.OrderStatusMetricsInterval)
}

func provideOrderStatusMetricsTask(
	log logger.Logger,
	service order_status_metrics.Service,
	interval OrderStatusMetricsInterval,
) *order_status_metrics.OrderStatusMetrics {
	return order_status_metrics.NewOrderStatusMetrics(log, service, time.Duration(interval))
}

func provideTaskList(
	orderStatusMetricsTask *order_status_metrics.OrderStatusMetrics,
) []background.Task {
	return []background.Task{
		orderStatusMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
