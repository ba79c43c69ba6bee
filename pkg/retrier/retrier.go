package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc вызывается после неудачной попытки attempt, перед паузой next.
type OnRetryFunc func(attempt uint64, err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения, остается только MaxElapsedTime
	MaxAttempts uint64

	// nil - ретраятся все ошибки, иначе только те, где функция вернула true
	ShouldRetry ShouldRetryFunc
	OnRetry     OnRetryFunc
}

// StartupConfig используется для пингов Postgres и Kafka при старте процесса.
func StartupConfig() Config {
	return Config{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  30 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxAttempts:     10,
	}
}
