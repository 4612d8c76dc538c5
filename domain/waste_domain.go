package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessDetectWaste = "waste detected successfully"
	MessageSuccessSubmitWaste = "waste submitted successfully"

	MessageFailedDetectWaste = "failed to detect waste"
	MessageFailedSubmitWaste = "failed to submit waste"

	ErrDetectorUnavailable = errors.New("waste detector unavailable")
	ErrUnknownWasteType    = errors.New("unknown waste type")
	ErrImageRequired       = errors.New("waste image is required")
)

type (
	DetectWasteRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image"`
	}

	DetectionResult struct {
		WasteType    string  `json:"waste_type"`
		Confidence   float64 `json:"confidence"`
		PointsToEarn int     `json:"points_to_earn"`
	}

	SubmitWasteRequest struct {
		BinID      string   `json:"bin_id" validate:"required,uuid"`
		WasteType  string   `json:"waste_type" validate:"required"`
		Confidence *float64 `json:"confidence" validate:"omitempty,min=0,max=1"`
		Override   bool     `json:"user_override"`
	}
)
