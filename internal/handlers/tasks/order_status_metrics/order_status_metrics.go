package order_status_metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"laundry/internal/entities"
	"laundry/pkg/logger"
)

var OrdersByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "laundry_orders_by_status",
		Help: "Current number of orders in each status",
	},
	[]string{"status"},
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) ([]entities.OrderStatusCount, error)
}

type OrderStatusMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	gauge    *prometheus.GaugeVec
}

func NewOrderStatusMetrics(log logger.Logger, service Service, interval time.Duration) *OrderStatusMetrics {
	return &OrderStatusMetrics{
		log:      log,
		service:  service,
		interval: interval,
		gauge:    OrdersByStatus,
	}
}

func (o *OrderStatusMetrics) TTL() time.Duration {
	return o.interval
}

func (o *OrderStatusMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count orders by status: %w", err)
	}

	var total int64
	for _, count := range counts {
		o.gauge.WithLabelValues(count.Status.String()).Set(float64(count.Count))
		total += count.Count
	}

	o.log.With(
		logger.NewField("orders_total", total),
	).Info("order status metrics refreshed")

	return nil
}

func (o *OrderStatusMetrics) Info() string {
	return "order status metrics"
}
