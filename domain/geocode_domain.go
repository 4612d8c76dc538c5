package domain

import (
	"errors"
)

var (
	MessageSuccessGeocodeSearch  = "address suggestions retrieved successfully"
	MessageSuccessGeocodeReverse = "address resolved successfully"

	MessageFailedGeocodeReverse = "failed to resolve address"

	ErrAddressNotFound = errors.New("address not found")
)

type (
	AddressSuggestion struct {
		PlaceID     int64   `json:"place_id"`
		DisplayName string  `json:"display_name"`
		Latitude    float64 `json:"lat"`
		Longitude   float64 `json:"lng"`
	}

	ReverseGeocodeResult struct {
		DisplayName string  `json:"display_name"`
		Latitude    float64 `json:"lat"`
		Longitude   float64 `json:"lng"`
	}
)
