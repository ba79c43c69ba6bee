package order

import "time"

type OrderDB struct {
	ID                      int64
	UserID                  *string
	Name                    string
	Phone                   string
	Address                 string
	Si                      *string
	Gu                      *string
	Dong                    *string
	Latitude                *float64
	Longitude               *float64
	IsServiceable           bool
	Paid                    bool
	PaymentID               *string
	PaymentAmount           *int64
	PaymentMethod           *string
	Status                  string
	ProcessingStartedAt     *time.Time
	CompletedAt             *time.Time
	DeliveredAt             *time.Time
	CancelledAt             *time.Time
	CancelReason            *string
	EstimatedCompletionTime *time.Time
	PickupPhotoURL          *string
	DeliveryPhotoURL        *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type OrderStatusLogDB struct {
	ID         int64
	OrderID    int64
	FromStatus *string
	ToStatus   string
	ChangedBy  string
	Notes      *string
	CreatedAt  time.Time
}

const orderColumns = `id, user_id, name, phone, address, si, gu, dong, latitude, longitude,
	is_serviceable, paid, payment_id, payment_amount, payment_method, status,
	processing_started_at, completed_at, delivered_at, cancelled_at, cancel_reason,
	estimated_completion_time, pickup_photo_url, delivery_photo_url, created_at, updated_at`

func (o *OrderDB) scanTargets() []any {
	return []any{
		&o.ID, &o.UserID, &o.Name, &o.Phone, &o.Address, &o.Si, &o.Gu, &o.Dong, &o.Latitude, &o.Longitude,
		&o.IsServiceable, &o.Paid, &o.PaymentID, &o.PaymentAmount, &o.PaymentMethod, &o.Status,
		&o.ProcessingStartedAt, &o.CompletedAt, &o.DeliveredAt, &o.CancelledAt, &o.CancelReason,
		&o.EstimatedCompletionTime, &o.PickupPhotoURL, &o.DeliveryPhotoURL, &o.CreatedAt, &o.UpdatedAt,
	}
}
