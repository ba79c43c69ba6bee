package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/entities"
)

const DefaultLookupTimeout = 4 * time.Second

type Service struct {
	geocoder Geocoder
	area     ServiceArea
	timeout  time.Duration
}

func New(geocoder Geocoder, area ServiceArea, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &Service{
		geocoder: geocoder,
		area:     area,
		timeout:  timeout,
	}
}

// PreviewAddress геокодирует адрес и проверяет, входит ли он в зону обслуживания.
// Ничего не сохраняет.
func (s *Service) PreviewAddress(ctx context.Context, address string) (*entities.AddressPreview, error) {
	query := strings.TrimSpace(address)
	if query == "" {
		return nil, ErrInvalidInput
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results, err := s.geocoder.Search(lookupCtx, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(lookupCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %w", ErrTimeout, s.timeout, err)
		}
		if errors.Is(err, ErrUpstream) {
			return nil, fmt.Errorf("geocode %q: %w", query, err)
		}
		return nil, fmt.Errorf("geocode %q: %w: %w", query, ErrUpstream, err)
	}
	if len(results) == 0 {
		return nil, ErrAddressNotFound
	}

	first := results[0]
	preview := &entities.AddressPreview{
		IsServiceable: s.area.IsServiceable(first.RoadAddress, first.Address, query),
		Latitude:      first.Latitude,
		Longitude:     first.Longitude,
	}
	switch {
	case first.RoadAddress != nil:
		preview.Region = *first.RoadAddress
	case first.Address != nil:
		preview.Region = *first.Address
	}

	return preview, nil
}
