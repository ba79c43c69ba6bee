package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "laundry_order_events_published_total",
		Help: "Order status events sent to Kafka by outcome",
	},
	[]string{"topic", "outcome"},
)
