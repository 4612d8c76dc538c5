package domain

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func validCreatePickupRequest() CreatePickupRequest {
	lat, lng := -6.2, 106.8
	return CreatePickupRequest{
		Latitude:          &lat,
		Longitude:         &lng,
		ContactNumber:     "08123456789",
		PreferredDatetime: "2026-09-10T09:00",
	}
}

func TestCreatePickupRequestRequiresLocation(t *testing.T) {
	v := validator.New()

	if err := v.Struct(validCreatePickupRequest()); err != nil {
		t.Fatalf("valid request failed validation: %v", err)
	}

	zero := 0.0
	tests := []struct {
		name   string
		mutate func(*CreatePickupRequest)
		valid  bool
	}{
		{"missing latitude", func(r *CreatePickupRequest) { r.Latitude = nil }, false},
		{"missing longitude", func(r *CreatePickupRequest) { r.Longitude = nil }, false},
		{"missing both", func(r *CreatePickupRequest) { r.Latitude = nil; r.Longitude = nil }, false},
		{"latitude out of range", func(r *CreatePickupRequest) { v := 91.0; r.Latitude = &v }, false},
		{"longitude out of range", func(r *CreatePickupRequest) { v := -181.0; r.Longitude = &v }, false},
		// (0,0) sent explicitly is a legal coordinate, unlike absent fields.
		{"explicit zero coordinates", func(r *CreatePickupRequest) { r.Latitude = &zero; r.Longitude = &zero }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreatePickupRequest()
			tt.mutate(&req)

			err := v.Struct(req)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation failure, got none")
			}
		})
	}
}

func TestUpdatePickupLocationRequestRequiresCoordinates(t *testing.T) {
	v := validator.New()

	lat, lng := -6.2, 106.8
	if err := v.Struct(UpdatePickupLocationRequest{Latitude: &lat, Longitude: &lng}); err != nil {
		t.Fatalf("valid request failed validation: %v", err)
	}

	if err := v.Struct(UpdatePickupLocationRequest{}); err == nil {
		t.Error("request without coordinates passed validation")
	}
	if err := v.Struct(UpdatePickupLocationRequest{Latitude: &lat}); err == nil {
		t.Error("request without longitude passed validation")
	}
}
