package geo

import "errors"

var (
	ErrInvalidInput    = errors.New("address is required")
	ErrAddressNotFound = errors.New("address not found")
	ErrUpstream        = errors.New("geocoder upstream error")
	ErrTimeout         = errors.New("geocoder timeout")
)
