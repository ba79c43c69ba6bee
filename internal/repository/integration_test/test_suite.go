//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"laundry/internal/pkg/postgres"
	"laundry/migrations"
	"laundry/pkg/logger/zap_adapter"
	"laundry/pkg/querier"
	"laundry/pkg/tx"
)

const postgresImage = "postgres:16-alpine"

var (
	once      sync.Once
	pool      *pgxpool.Pool
	querierDB *querier.Querier
)

// setup поднимает один контейнер postgres на весь пакет тестов и накатывает миграции.
// Контейнер удаляет ryuk после завершения процесса.
func setup() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("laundry"),
		tcpostgres.WithUsername("laundry"),
		tcpostgres.WithPassword("laundry"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get postgres dsn: %v", err)
	}

	pool, err = postgres.NewConnPoolFromDSN(ctx, zap_adapter.NewNop(), dsn)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	querierDB = querier.New(pool, pgxv5.DefaultCtxGetter)
}

func GetQuerier() *querier.Querier {
	once.Do(setup)
	return querierDB
}

func GetPool() *pgxpool.Pool {
	once.Do(setup)
	return pool
}

func GetTxManager(opts ...tx.Option) *tx.Manager {
	return tx.New(GetPool(), opts...)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}
	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_status_logs, orders RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
