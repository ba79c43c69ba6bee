package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
	PgErrCheckViolation      = "23514"
	PgErrUndefinedColumn     = "42703"
	PgErrUndefinedTable      = "42P01"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsSchemaError - запрос обратился к колонке или таблице, которой нет в базе.
func IsSchemaError(err error) bool {
	return IsPgErrorWithCode(err, PgErrUndefinedColumn) || IsPgErrorWithCode(err, PgErrUndefinedTable)
}
