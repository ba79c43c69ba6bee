package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/entities"
	"laundry/pkg/logger"
)

const DefaultCancelReason = "관리자에 의해 취소됨"

type Service struct {
	repository Repository
	txManager  TxManager
	publisher  EventPublisher
	estimator  CompletionEstimator
	admins     AdminPolicy
	log        serviceLogger
}

func New(
	repository Repository,
	txManager TxManager,
	publisher EventPublisher,
	estimator CompletionEstimator,
	admins AdminPolicy,
	log serviceLogger,
) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
		estimator:  estimator,
		admins:     admins,
		log:        log,
	}
}

// UpdateStatus переводит заказ в новый статус. Строка заказа блокируется на
// время проверки перехода, запись в журнал и событие отправляются после
// коммита и на результат не влияют.
func (s *Service) UpdateStatus(ctx context.Context, update entities.OrderStatusUpdate) (*entities.Order, error) {
	if update.OrderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !update.Target.IsValid() {
		return nil, ErrInvalidStatus
	}

	now := time.Now().UTC()

	var (
		updated *entities.Order
		from    entities.OrderStatusType
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, update.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !current.Status.CanChangeTo(update.Target) {
			return &TransitionError{Current: current.Status, Target: update.Target}
		}
		from = current.Status

		updated, err = s.repository.UpdateStatus(ctx, s.buildModify(update, now), current.Status)
		if err != nil {
			if errors.Is(err, ErrStatusConflict) || errors.Is(err, ErrOrderNotFound) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	StatusTransitionsTotal.WithLabelValues(from.String(), update.Target.String()).Inc()
	s.recordTransition(context.WithoutCancel(ctx), update, from, now)

	return updated, nil
}

func (s *Service) buildModify(update entities.OrderStatusUpdate, now time.Time) entities.OrderModify {
	target := update.Target
	modify := entities.OrderModify{
		ID:               update.OrderID,
		Status:           &target,
		PickupPhotoURL:   update.Photos.Pickup,
		DeliveryPhotoURL: update.Photos.Delivery,
		UpdatedAt:        now,
	}

	switch target {
	case entities.OrderProcessing:
		modify.ProcessingStartedAt = &now
	case entities.OrderCompleted:
		modify.CompletedAt = &now
	case entities.OrderDelivered:
		modify.DeliveredAt = &now
		modify.ClearEstimatedCompletionTime = true
	case entities.OrderCancelled:
		reason := DefaultCancelReason
		if update.Notes != nil && *update.Notes != "" {
			reason = *update.Notes
		}
		modify.CancelledAt = &now
		modify.CancelReason = &reason
		modify.ClearEstimatedCompletionTime = true
	}

	if estimate, ok := s.estimator.EstimateCompletion(target, now); ok {
		modify.EstimatedCompletionTime = &estimate
	}

	return modify
}

func (s *Service) recordTransition(
	ctx context.Context,
	update entities.OrderStatusUpdate,
	from entities.OrderStatusType,
	now time.Time,
) {
	log := s.log.With(
		logger.NewField("order_id", update.OrderID),
		logger.NewField("from_status", from),
		logger.NewField("to_status", update.Target),
	)
	changedBy := update.ChangedBy.Identifier()

	err := s.repository.CreateStatusLog(ctx, entities.OrderStatusLog{
		OrderID:    update.OrderID,
		FromStatus: &from,
		ToStatus:   update.Target,
		ChangedBy:  changedBy,
		Notes:      update.Notes,
		CreatedAt:  now,
	})
	if err != nil {
		log.Warn("failed to write order status log", logger.NewField("error", err))
	}

	err = s.publisher.PublishStatusChanged(ctx, entities.OrderStatusChangedEvent{
		OrderID:    update.OrderID,
		FromStatus: from,
		ToStatus:   update.Target,
		ChangedBy:  changedBy,
		Notes:      update.Notes,
		ChangedAt:  now,
	})
	if err != nil {
		log.Warn("failed to publish order status changed event", logger.NewField("error", err))
	}
}

// GetTracking отдает заказ владельцу или администратору. Для остальных заказ
// не существует.
func (s *Service) GetTracking(ctx context.Context, caller entities.Caller, orderID int64) (*entities.OrderTracking, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.IsOwnedBy(caller.ID) && !s.admins.IsAdmin(caller) {
		return nil, ErrOrderNotFound
	}

	tracking := entities.NewOrderTracking(*order)
	return &tracking, nil
}

func (s *Service) GetStatusLogs(ctx context.Context, orderID int64) ([]entities.OrderStatusLog, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	if _, err := s.repository.GetByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	logs, err := s.repository.GetStatusLogs(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order status logs: %w", err)
	}
	return logs, nil
}

// CountOrdersByStatus возвращает количество заказов по каждому статусу, включая нулевые.
func (s *Service) CountOrdersByStatus(ctx context.Context) ([]entities.OrderStatusCount, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	statuses := entities.ValidStatuses()
	result := make([]entities.OrderStatusCount, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, entities.OrderStatusCount{Status: status, Count: counts[status]})
	}
	return result, nil
}
