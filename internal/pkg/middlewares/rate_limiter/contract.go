package rate_limiter

import (
	"golang.org/x/time/rate"
	"laundry/pkg/logger"
)

// Limiter общий на процесс token bucket, *rate.Limiter подходит как есть.
type Limiter interface {
	Allow() bool
	Limit() rate.Limit
	Burst() int
}

type middlewareLogger interface {
	With(fields ...logger.Field) logger.Logger
}
