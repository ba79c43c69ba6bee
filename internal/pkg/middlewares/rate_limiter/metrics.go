package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAllowed  = "allowed"
	outcomeRejected = "rejected"
)

// RateLimitDecisionsTotal решения лимитера по маршрутам, outcome: allowed | rejected.
var RateLimitDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "laundry_rate_limit_decisions_total",
		Help: "Rate limiter decisions per route",
	},
	[]string{"method", "route", "outcome"},
)
