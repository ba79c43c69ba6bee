package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"laundry/internal/entities"
)

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChanged отправляет событие с ключом order id, чтобы события
// одного заказа попадали в одну партицию.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	payload, err := json.Marshal(statusChangedMessage{
		EventID:    event.EventID,
		EventType:  EventTypeStatusChanged,
		OrderID:    event.OrderID,
		FromStatus: event.FromStatus.String(),
		ToStatus:   event.ToStatus.String(),
		ChangedBy:  event.ChangedBy,
		Notes:      event.Notes,
		ChangedAt:  event.ChangedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventTypeStatusChanged)},
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		EventsPublishedTotal.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("send status changed event for order %d: %w", event.OrderID, err)
	}

	EventsPublishedTotal.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

// NoopPublisher используется, когда Kafka выключена.
type NoopPublisher struct{}

func (NoopPublisher) PublishStatusChanged(context.Context, entities.OrderStatusChangedEvent) error {
	return nil
}
