package entities

import "time"

type Order struct {
	ID     int64
	UserID *string

	Name    string
	Phone   string
	Address string

	Si            *string
	Gu            *string
	Dong          *string
	Latitude      *float64
	Longitude     *float64
	IsServiceable bool

	Paid          bool
	PaymentID     *string
	PaymentAmount *int64
	PaymentMethod *string

	Status                  OrderStatusType
	ProcessingStartedAt     *time.Time
	CompletedAt             *time.Time
	DeliveredAt             *time.Time
	CancelledAt             *time.Time
	CancelReason            *string
	EstimatedCompletionTime *time.Time
	PickupPhotoURL          *string
	DeliveryPhotoURL        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy - гостевой заказ (UserID == nil) не принадлежит никому.
func (o *Order) IsOwnedBy(userID string) bool {
	return o.UserID != nil && userID != "" && *o.UserID == userID
}

// OrderModify - частичное обновление заказа, nil поля не меняются.
type OrderModify struct {
	ID                      int64
	Status                  *OrderStatusType
	ProcessingStartedAt     *time.Time
	CompletedAt             *time.Time
	DeliveredAt             *time.Time
	CancelledAt             *time.Time
	CancelReason            *string
	EstimatedCompletionTime *time.Time
	// ClearEstimatedCompletionTime выставляет estimated_completion_time в NULL.
	ClearEstimatedCompletionTime bool
	PickupPhotoURL               *string
	DeliveryPhotoURL             *string
	UpdatedAt                    time.Time
}

type OrderPhotos struct {
	Pickup   *string
	Delivery *string
}

type OrderStatusUpdate struct {
	OrderID   int64
	Target    OrderStatusType
	Notes     *string
	Photos    OrderPhotos
	ChangedBy Caller
}

type OrderStatusLog struct {
	ID         int64
	OrderID    int64
	FromStatus *OrderStatusType
	ToStatus   OrderStatusType
	ChangedBy  string
	Notes      *string
	CreatedAt  time.Time
}

type OrderStatusChangedEvent struct {
	EventID    string
	OrderID    int64
	FromStatus OrderStatusType
	ToStatus   OrderStatusType
	ChangedBy  string
	Notes      *string
	ChangedAt  time.Time
}

type OrderTracking struct {
	Order    Order
	Info     StatusInfo
	Progress int
	NextStep *NextStep
	Actions  AllowedActions
}

func NewOrderTracking(order Order) OrderTracking {
	tracking := OrderTracking{
		Order:    order,
		Info:     order.Status.Info(),
		Progress: order.Status.Progress(),
		Actions:  order.Status.AllowedActions(),
	}
	if step, ok := order.Status.NextStep(); ok {
		tracking.NextStep = step
	}
	return tracking
}

type OrderStatusCount struct {
	Status OrderStatusType
	Count  int64
}
