package completion_estimate

import (
	"time"

	"laundry/internal/entities"
)

const (
	washingDuration  = 24 * time.Hour
	deliveryDuration = 2 * time.Hour
)

type CompletionTimeFactory struct{}

func New() *CompletionTimeFactory {
	return &CompletionTimeFactory{}
}

// EstimateCompletion возвращает ожидаемое время следующего этапа для статуса.
// У остальных статусов оценки нет.
func (f *CompletionTimeFactory) EstimateCompletion(status entities.OrderStatusType, base time.Time) (time.Time, bool) {
	switch status {
	case entities.OrderProcessing:
		return base.Add(washingDuration), true
	case entities.OrderCompleted:
		return base.Add(deliveryDuration), true
	default:
		return time.Time{}, false
	}
}
