package order

import (
	"errors"
	"fmt"

	"laundry/internal/entities"
)

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrOrderNotFound  = errors.New("order not found")
	ErrStatusConflict = errors.New("order status was changed concurrently")
	ErrUpdateFailed   = errors.New("order update failed")
	ErrSchemaOutdated = errors.New("database schema is outdated")
)

// TransitionError - переход запрещен таблицей статусов.
type TransitionError struct {
	Current entities.OrderStatusType
	Target  entities.OrderStatusType
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.Current, e.Target)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
