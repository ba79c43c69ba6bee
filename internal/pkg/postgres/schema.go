package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"laundry/pkg/logger"
)

var ErrMigrationRequired = errors.New("database schema is behind the application, run migrations")

type SchemaVersion struct {
	Current  int64
	Expected int64
}

// CheckSchema сверяет версию схемы в базе с последней встроенной миграцией.
// Отставание базы - ошибка ErrMigrationRequired, процесс не должен стартовать.
func CheckSchema(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, migrations fs.FS) (SchemaVersion, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("migrations provider: %w", err)
	}

	sources := provider.ListSources()
	if len(sources) == 0 {
		return SchemaVersion{}, errors.New("no embedded migrations")
	}

	version := SchemaVersion{Expected: sources[len(sources)-1].Version}
	version.Current, err = provider.GetDBVersion(ctx)
	if err != nil {
		return version, fmt.Errorf("read schema version: %w", err)
	}

	if version.Current < version.Expected {
		log.Error("database schema is outdated",
			logger.NewField("current_version", version.Current),
			logger.NewField("expected_version", version.Expected),
		)
		return version, fmt.Errorf("%w: database at version %d, application expects %d",
			ErrMigrationRequired, version.Current, version.Expected)
	}

	log.Info("database schema is up to date", logger.NewField("version", version.Current))
	return version, nil
}

// Migrate накатывает все встроенные миграции. Используется в интеграционных тестах.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("migrations provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrations up: %w", err)
	}
	return nil
}
