//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geo_test
package geo

import (
	"context"

	"laundry/internal/entities"
)

// Geocoder ищет адрес во внешнем сервисе. Пустой срез без ошибки - адрес не найден.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]entities.GeocodeResult, error)
}
