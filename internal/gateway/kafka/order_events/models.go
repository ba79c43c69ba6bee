package order_events

import "time"

const EventTypeStatusChanged = "order.status.changed"

type statusChangedMessage struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    int64     `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Notes      *string   `json:"notes,omitempty"`
	ChangedAt  time.Time `json:"changed_at"`
}
