package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"laundry/internal/entities"
	"laundry/internal/repository"
	"laundry/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate блокирует строку до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1 ` + lock

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsSchemaError(err) {
			return nil, fmt.Errorf("order repository getbyid: %w: %w", order.ErrSchemaOutdated, err)
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// UpdateStatus обновляет заказ, только если его статус в базе равен expected.
// Если строка есть, но статус другой - ErrStatusConflict.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	modify entities.OrderModify,
	expected entities.OrderStatusType,
) (*entities.Order, error) {
	builder := qb.Update("orders")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.ProcessingStartedAt != nil {
		builder = builder.Set("processing_started_at", modify.ProcessingStartedAt)
	}
	if modify.CompletedAt != nil {
		builder = builder.Set("completed_at", modify.CompletedAt)
	}
	if modify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", modify.DeliveredAt)
	}
	if modify.CancelledAt != nil {
		builder = builder.Set("cancelled_at", modify.CancelledAt)
	}
	if modify.CancelReason != nil {
		builder = builder.Set("cancel_reason", modify.CancelReason)
	}
	switch {
	case modify.ClearEstimatedCompletionTime:
		builder = builder.Set("estimated_completion_time", nil)
	case modify.EstimatedCompletionTime != nil:
		builder = builder.Set("estimated_completion_time", modify.EstimatedCompletionTime)
	}
	if modify.PickupPhotoURL != nil {
		builder = builder.Set("pickup_photo_url", modify.PickupPhotoURL)
	}
	if modify.DeliveryPhotoURL != nil {
		builder = builder.Set("delivery_photo_url", modify.DeliveryPhotoURL)
	}

	if modify.UpdatedAt.IsZero() {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	} else {
		builder = builder.Set("updated_at", modify.UpdatedAt)
	}

	builder = builder.
		Where(sq.Eq{"id": modify.ID, "status": expected.String()}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(orderModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingRowError(ctx, modify.ID)
		}
		if repository.IsSchemaError(err) {
			return nil, fmt.Errorf("order repository update: %w: %w", order.ErrSchemaOutdated, err)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) missingRowError(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository exists error: %w", err)
	}
	if !exists {
		return order.ErrOrderNotFound
	}
	return order.ErrStatusConflict
}

func (r *Repository) CreateStatusLog(ctx context.Context, log entities.OrderStatusLog) error {
	query := `INSERT INTO order_status_logs (order_id, from_status, to_status, changed_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	createdAt := log.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.querier.Exec(
		ctx,
		query,
		log.OrderID,
		statusPtrToString(log.FromStatus),
		log.ToStatus.String(),
		log.ChangedBy,
		log.Notes,
		createdAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository create status log error: %w", err)
	}
	return nil
}

func (r *Repository) GetStatusLogs(ctx context.Context, orderID int64) ([]entities.OrderStatusLog, error) {
	query := `SELECT id, order_id, from_status, to_status, changed_by, notes, created_at
		FROM order_status_logs
		WHERE order_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get status logs error: %w", err)
	}
	defer rows.Close()

	logModels := make([]OrderStatusLogDB, 0, 4)
	for rows.Next() {
		var l OrderStatusLogDB
		if err := rows.Scan(&l.ID, &l.OrderID, &l.FromStatus, &l.ToStatus, &l.ChangedBy, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("order repository scan status log: %w", err)
		}
		logModels = append(logModels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order repository status log rows: %w", err)
	}

	return LogsToDomainList(logModels), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("order repository scan count: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order repository count rows: %w", err)
	}

	return counts, nil
}
