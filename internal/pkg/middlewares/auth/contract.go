//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"laundry/internal/entities"
	"laundry/pkg/logger"
)

type TokenVerifier interface {
	Verify(raw string) (entities.Caller, error)
}

type AdminPolicy interface {
	IsAdmin(caller entities.Caller) bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
