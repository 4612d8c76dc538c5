package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	PickupStatusOpen     = "open"
	PickupStatusAccepted = "accepted"
	PickupStatusRejected = "rejected"
)

var (
	MessageSuccessCreatePickup   = "pickup request created successfully"
	MessageSuccessGetPickups     = "pickup requests retrieved successfully"
	MessageSuccessGetPickup      = "pickup request retrieved successfully"
	MessageSuccessUpdateLocation = "pickup location updated successfully"
	MessageSuccessDeletePickup   = "pickup request deleted"
	MessageSuccessAcceptPickup   = "pickup request accepted"
	MessageSuccessRejectPickup   = "pickup request rejected"

	MessageFailedCreatePickup   = "failed to create pickup request"
	MessageFailedGetPickups     = "failed to retrieve pickup requests"
	MessageFailedGetPickup      = "failed to retrieve pickup request"
	MessageFailedUpdateLocation = "failed to update pickup location"
	MessageFailedDeletePickup   = "failed to delete pickup request"
	MessageFailedAcceptPickup   = "failed to accept pickup request"
	MessageFailedRejectPickup   = "failed to reject pickup request"

	ErrPickupNotFound           = errors.New("pickup request not found")
	ErrUnauthorizedPickupAccess = errors.New("unauthorized access to pickup request")
	ErrPickupNotOpen            = errors.New("only open requests can be updated")
	ErrPickupAlreadyProcessed   = errors.New("request already processed")
	ErrPickupImageRequired      = errors.New("pickup image is required")
	ErrInvalidPoints            = errors.New("points awarded must be a positive integer")
)

type (
	CreatePickupRequest struct {
		Latitude          *float64              `json:"latitude" form:"latitude" validate:"required,min=-90,max=90"`
		Longitude         *float64              `json:"longitude" form:"longitude" validate:"required,min=-180,max=180"`
		AddressText       string                `json:"address_text" form:"address_text" validate:"omitempty"`
		EWasteType        string                `json:"e_waste_type" form:"e_waste_type" validate:"omitempty"`
		ContactNumber     string                `json:"contact_number" form:"contact_number" validate:"required,min=7,max=15"`
		PreferredDatetime string                `json:"preferred_datetime" form:"preferred_datetime" validate:"required"`
		Image             *multipart.FileHeader `json:"image" form:"image"`
	}

	UpdatePickupLocationRequest struct {
		Latitude    *float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude   *float64 `json:"longitude" validate:"required,min=-180,max=180"`
		AddressText string   `json:"address_text" validate:"omitempty"`
	}

	AcceptPickupRequest struct {
		PointsAwarded int `json:"points_awarded" validate:"required,gt=0"`
	}

	RejectPickupRequest struct {
		Reason string `json:"reason" validate:"omitempty"`
	}

	PickupResponse struct {
		ID                string    `json:"id"`
		ImageURL          string    `json:"image_url"`
		EWasteType        string    `json:"e_waste_type,omitempty"`
		ContactNumber     string    `json:"contact_number"`
		PreferredDatetime time.Time `json:"preferred_datetime"`
		Status            string    `json:"status"`
		PointsAwarded     *int      `json:"points_awarded,omitempty"`
		CreatedAt         time.Time `json:"created_at"`
	}

	PickupDetailsResponse struct {
		PickupResponse
		UserID          string  `json:"user_id"`
		Latitude        float64 `json:"latitude"`
		Longitude       float64 `json:"longitude"`
		AddressText     string  `json:"address_text,omitempty"`
		RejectionReason string  `json:"rejection_reason,omitempty"`
	}
)
