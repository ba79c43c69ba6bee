package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"laundry/internal/pkg/config"
	"laundry/pkg/logger"
	retrierconfig "laundry/pkg/retrier"
	"laundry/pkg/retrier/backoff_adapter"
)

const (
	maxConns        = 10
	minConns        = 2
	maxConnLifetime = time.Hour

	// Postgres в compose поднимается дольше Kafka
	pingMaxElapsedTime = time.Minute
)

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	return NewConnPoolFromDSN(ctx, log, newDsn(cfg))
}

func NewConnPoolFromDSN(ctx context.Context, log logger.Logger, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", poolCfg.ConnConfig.Host),
		logger.NewField("port", poolCfg.ConnConfig.Port),
		logger.NewField("db", poolCfg.ConnConfig.Database),
	)

	if err := pingDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

func newDsn(cfg *config.Database) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	cfg := retrierconfig.StartupConfig()
	cfg.MaxElapsedTime = pingMaxElapsedTime
	cfg.OnRetry = func(attempt uint64, err error, next time.Duration) {
		log.With(
			logger.NewField("attempt", attempt),
			logger.NewField("retry_in", next),
			logger.NewField("error", err),
		).Warn("Database is not ready")
	}

	if err := backoff_adapter.New(cfg).ExecuteWithContext(ctx, pool.Ping); err != nil {
		log.With(logger.NewField("error", err)).Error("Database connection failed after retries")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database connection established")
	return nil
}
