//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geo_preview_get_test
package geo_preview_get

import (
	"context"

	"laundry/internal/entities"
	"laundry/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PreviewAddress(ctx context.Context, address string) (*entities.AddressPreview, error)
}
