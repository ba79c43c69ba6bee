//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"laundry/internal/entities"
	"laundry/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	// UpdateStatus применяет изменения, только если статус в базе все еще expected.
	UpdateStatus(ctx context.Context, modify entities.OrderModify, expected entities.OrderStatusType) (*entities.Order, error)
	CreateStatusLog(ctx context.Context, log entities.OrderStatusLog) error
	GetStatusLogs(ctx context.Context, orderID int64) ([]entities.OrderStatusLog, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error
}

type CompletionEstimator interface {
	EstimateCompletion(status entities.OrderStatusType, base time.Time) (time.Time, bool)
}

type AdminPolicy interface {
	IsAdmin(caller entities.Caller) bool
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
