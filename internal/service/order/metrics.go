package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_status_transitions_total",
		Help: "Total number of applied order status transitions",
	},
	[]string{"from", "to"},
)
