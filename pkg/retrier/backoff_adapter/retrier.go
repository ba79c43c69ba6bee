package backoff_adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"laundry/pkg/retrier"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) newBackOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxAttempts > 0 {
		// WithMaxRetries считает повторы, первая попытка в них не входит
		b = backoff.WithMaxRetries(b, r.config.MaxAttempts-1)
	}
	return backoff.WithContext(b, ctx)
}

// ExecuteWithContext повторяет fn до успеха, неретраибельной ошибки или исчерпания
// попыток. Итоговая ошибка содержит число сделанных попыток.
func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64

	operation := func() error {
		attempt++
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		if r.config.OnRetry != nil {
			r.config.OnRetry(attempt, err, next)
		}
	}

	if err := backoff.RetryNotify(operation, r.newBackOff(ctx), notify); err != nil {
		return fmt.Errorf("after %d attempt(s): %w", attempt, err)
	}
	return nil
}
