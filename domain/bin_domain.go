package domain

import (
	"errors"
	"time"
)

const (
	BinStatusActive      = "active"
	BinStatusFull        = "full"
	BinStatusMaintenance = "maintenance"

	// fill_level threshold at which a bin is treated as full
	BinFullThreshold = 90
)

var (
	MessageSuccessCreateBin     = "bin created successfully"
	MessageSuccessGetBins       = "bins retrieved successfully"
	MessageSuccessGetBin        = "bin retrieved successfully"
	MessageSuccessUpdateBin     = "bin updated successfully"
	MessageSuccessDeleteBin     = "bin deleted successfully"
	MessageSuccessGetNearbyBins = "nearby bins retrieved successfully"
	MessageSuccessDeposit       = "deposit confirmed successfully"

	MessageFailedCreateBin     = "failed to create bin"
	MessageFailedGetBins       = "failed to retrieve bins"
	MessageFailedGetBin        = "failed to retrieve bin"
	MessageFailedUpdateBin     = "failed to update bin"
	MessageFailedDeleteBin     = "failed to delete bin"
	MessageFailedGetNearbyBins = "failed to retrieve nearby bins"
	MessageFailedDeposit       = "failed to confirm deposit"

	ErrBinNotFound     = errors.New("bin not found")
	ErrBinUnavailable  = errors.New("bin unavailable")
	ErrInvalidBinQR    = errors.New("invalid bin QR payload")
	ErrInvalidStatus   = errors.New("invalid bin status")
	ErrInvalidCapacity = errors.New("invalid bin capacity")
)

type (
	CreateBinRequest struct {
		Name      string  `json:"name" validate:"required"`
		Capacity  int     `json:"capacity" validate:"required,min=1"`
		Status    string  `json:"status" validate:"required,oneof=active full maintenance"`
		Latitude  float64 `json:"lat" validate:"required,min=-90,max=90"`
		Longitude float64 `json:"lng" validate:"required,min=-180,max=180"`
	}

	UpdateBinRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Capacity int    `json:"capacity" validate:"omitempty,min=1"`
		Status   string `json:"status" validate:"omitempty,oneof=active full maintenance"`
	}

	BinResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Latitude    float64   `json:"lat"`
		Longitude   float64   `json:"lng"`
		Capacity    int       `json:"capacity"`
		FillLevel   int       `json:"fill_level"`
		Status      string    `json:"status"`
		MarkerColor string    `json:"marker_color"`
		CreatedAt   time.Time `json:"created_at"`
	}

	NearbyBinResponse struct {
		BinResponse
		DistanceKm float64 `json:"distance_km"`
	}

	ConfirmDepositRequest struct {
		WasteType  string   `json:"waste_type" validate:"required"`
		Confidence *float64 `json:"confidence" validate:"omitempty,min=0,max=1"`
		Override   bool     `json:"user_override"`
	}

	ConfirmDepositResponse struct {
		PointsEarned int    `json:"points_earned"`
		NewFillLevel int    `json:"new_fill_level"`
		BinStatus    string `json:"bin_status"`
	}
)
