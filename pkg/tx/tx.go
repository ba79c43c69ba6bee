package tx

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

type Option func(*Manager)

// WithTimeout ограничивает время жизни транзакции; 0 - без ограничения.
func WithTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.timeout = timeout
	}
}

// Manager выполняет функции в транзакции READ COMMITTED.
type Manager struct {
	internal *manager.Manager
	timeout  time.Duration
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) settings() pgxv5.Settings {
	var base []settings.Opt
	if m.timeout > 0 {
		base = append(base, settings.WithTimeout(m.timeout))
	}

	return pgxv5.MustSettings(
		settings.Must(base...),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}),
	)
}

// Do выполняет fn в транзакции. Строки, которые меняются, нужно
// блокировать явно (SELECT ... FOR UPDATE): блокировка держится до коммита.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings(), fn)
}
