package pickup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"remat-backend/domain"
	"remat-backend/entities"
	"remat-backend/internal/utils/mailing"
	"remat-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PickupService interface {
		CreatePickup(ctx context.Context, req domain.CreatePickupRequest, userID string) (domain.PickupResponse, error)
		GetUserPickups(ctx context.Context, userID string) ([]domain.PickupResponse, error)
		GetUserPickupDetails(ctx context.Context, id string, userID string) (domain.PickupDetailsResponse, error)
		UpdateLocation(ctx context.Context, id string, req domain.UpdatePickupLocationRequest, userID string) (domain.PickupDetailsResponse, error)
		DeletePickup(ctx context.Context, id string, userID string) error

		GetAllPickups(ctx context.Context) ([]domain.PickupResponse, error)
		GetPickupDetails(ctx context.Context, id string) (domain.PickupDetailsResponse, error)
		AcceptPickup(ctx context.Context, id string, req domain.AcceptPickupRequest, adminID string) error
		RejectPickup(ctx context.Context, id string, req domain.RejectPickupRequest, adminID string) error
	}

	pickupService struct {
		pickupRepository PickupRepository
		s3               storage.AwsS3
	}
)

func NewPickupService(pickupRepository PickupRepository, s3 storage.AwsS3) PickupService {
	return &pickupService{
		pickupRepository: pickupRepository,
		s3:               s3,
	}
}

func parsePreferredDatetime(value string) (time.Time, error) {
	// RFC3339 from API clients, datetime-local from the web form
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", value)
}

func toPickupResponse(pickup *entities.PickupRequest) domain.PickupResponse {
	return domain.PickupResponse{
		ID:                pickup.ID.String(),
		ImageURL:          pickup.ImageURL,
		EWasteType:        pickup.EWasteType,
		ContactNumber:     pickup.ContactNumber,
		PreferredDatetime: pickup.PreferredDatetime,
		Status:            pickup.Status,
		PointsAwarded:     pickup.PointsAwarded,
		CreatedAt:         pickup.CreatedAt,
	}
}

func toPickupDetailsResponse(pickup *entities.PickupRequest) domain.PickupDetailsResponse {
	return domain.PickupDetailsResponse{
		PickupResponse:  toPickupResponse(pickup),
		UserID:          pickup.UserID.String(),
		Latitude:        pickup.Latitude,
		Longitude:       pickup.Longitude,
		AddressText:     pickup.AddressText,
		RejectionReason: pickup.RejectionReason,
	}
}

func (s *pickupService) CreatePickup(ctx context.Context, req domain.CreatePickupRequest, userID string) (domain.PickupResponse, error) {
	if req.Image == nil {
		return domain.PickupResponse{}, domain.ErrPickupImageRequired
	}
	if req.Latitude == nil || req.Longitude == nil {
		return domain.PickupResponse{}, domain.ErrInvalidCoordinates
	}

	preferredDatetime, err := parsePreferredDatetime(req.PreferredDatetime)
	if err != nil {
		return domain.PickupResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PickupResponse{}, domain.ErrParseUUID
	}

	pickupID := uuid.New()

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("pickup-%s", pickupID.String()),
		req.Image,
		"pickup-requests",
		storage.AllowImage...,
	)
	if err != nil {
		return domain.PickupResponse{}, err
	}

	pickup := &entities.PickupRequest{
		ID:                pickupID,
		UserID:            userUUID,
		ImageURL:          s.s3.GetPublicLinkKey(objectKey),
		EWasteType:        req.EWasteType,
		Latitude:          *req.Latitude,
		Longitude:         *req.Longitude,
		AddressText:       req.AddressText,
		ContactNumber:     req.ContactNumber,
		PreferredDatetime: preferredDatetime,
		Status:            domain.PickupStatusOpen,
	}

	if err := s.pickupRepository.CreatePickup(ctx, pickup); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.PickupResponse{}, err
	}

	return toPickupResponse(pickup), nil
}

func (s *pickupService) GetUserPickups(ctx context.Context, userID string) ([]domain.PickupResponse, error) {
	pickups, err := s.pickupRepository.GetUserPickups(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PickupResponse, 0, len(pickups))
	for _, pickup := range pickups {
		result = append(result, toPickupResponse(pickup))
	}

	return result, nil
}

func (s *pickupService) GetUserPickupDetails(ctx context.Context, id string, userID string) (domain.PickupDetailsResponse, error) {
	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PickupDetailsResponse{}, domain.ErrPickupNotFound
		}
		return domain.PickupDetailsResponse{}, err
	}

	if pickup.UserID.String() != userID {
		return domain.PickupDetailsResponse{}, domain.ErrUnauthorizedPickupAccess
	}

	return toPickupDetailsResponse(pickup), nil
}

func (s *pickupService) UpdateLocation(ctx context.Context, id string, req domain.UpdatePickupLocationRequest, userID string) (domain.PickupDetailsResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return domain.PickupDetailsResponse{}, domain.ErrInvalidCoordinates
	}

	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PickupDetailsResponse{}, domain.ErrPickupNotFound
		}
		return domain.PickupDetailsResponse{}, err
	}

	if pickup.UserID.String() != userID {
		return domain.PickupDetailsResponse{}, domain.ErrUnauthorizedPickupAccess
	}

	if pickup.Status != domain.PickupStatusOpen {
		return domain.PickupDetailsResponse{}, domain.ErrPickupNotOpen
	}

	if err := s.pickupRepository.UpdateLocation(ctx, id, *req.Latitude, *req.Longitude, req.AddressText); err != nil {
		return domain.PickupDetailsResponse{}, err
	}

	updated, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		return domain.PickupDetailsResponse{}, err
	}

	return toPickupDetailsResponse(updated), nil
}

func (s *pickupService) DeletePickup(ctx context.Context, id string, userID string) error {
	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPickupNotFound
		}
		return err
	}

	if pickup.UserID.String() != userID {
		return domain.ErrUnauthorizedPickupAccess
	}

	if pickup.Status != domain.PickupStatusOpen {
		return domain.ErrPickupNotOpen
	}

	imageURL := pickup.ImageURL

	if err := s.pickupRepository.DeletePickup(ctx, id); err != nil {
		return err
	}

	if imageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(imageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return nil
}

func (s *pickupService) GetAllPickups(ctx context.Context) ([]domain.PickupResponse, error) {
	pickups, err := s.pickupRepository.GetAllPickups(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PickupResponse, 0, len(pickups))
	for _, pickup := range pickups {
		result = append(result, toPickupResponse(pickup))
	}

	return result, nil
}

func (s *pickupService) GetPickupDetails(ctx context.Context, id string) (domain.PickupDetailsResponse, error) {
	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PickupDetailsResponse{}, domain.ErrPickupNotFound
		}
		return domain.PickupDetailsResponse{}, err
	}

	return toPickupDetailsResponse(pickup), nil
}

func (s *pickupService) AcceptPickup(ctx context.Context, id string, req domain.AcceptPickupRequest, adminID string) error {
	if req.PointsAwarded <= 0 {
		return domain.ErrInvalidPoints
	}

	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}

	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPickupNotFound
		}
		return err
	}

	if err := s.pickupRepository.AcceptPickup(ctx, id, adminUUID, req.PointsAwarded); err != nil {
		return err
	}

	s.notifyDecision(pickup, domain.PickupStatusAccepted, req.PointsAwarded, "")
	return nil
}

func (s *pickupService) RejectPickup(ctx context.Context, id string, req domain.RejectPickupRequest, adminID string) error {
	adminUUID, err := uuid.Parse(adminID)
	if err != nil {
		return domain.ErrParseUUID
	}

	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPickupNotFound
		}
		return err
	}

	if err := s.pickupRepository.RejectPickup(ctx, id, adminUUID, req.Reason); err != nil {
		return err
	}

	s.notifyDecision(pickup, domain.PickupStatusRejected, 0, req.Reason)
	return nil
}

// notifyDecision emails the requester about the admin's decision. Delivery
// is best effort and never fails the review action.
func (s *pickupService) notifyDecision(pickup *entities.PickupRequest, status string, points int, reason string) {
	if pickup.User == nil || pickup.User.Email == "" {
		return
	}

	email := pickup.User.Email
	name := pickup.User.Name

	go func() {
		var subject, body string
		if status == domain.PickupStatusAccepted {
			subject = "Your e-waste pickup request was accepted"
			body = fmt.Sprintf(
				"<p>Hi %s,</p><p>Your pickup request has been accepted. %d points have been added to your account.</p>",
				name, points,
			)
		} else {
			subject = "Your e-waste pickup request was rejected"
			body = fmt.Sprintf("<p>Hi %s,</p><p>Your pickup request has been rejected.</p>", name)
			if reason != "" {
				body += fmt.Sprintf("<p>Reason: %s</p>", reason)
			}
		}

		if err := mailing.SendMail(email, subject, body); err != nil {
			log.Printf("failed to send pickup decision email: %v", err)
		}
	}()
}
