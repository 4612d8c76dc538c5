package pickup

import (
	"context"

	"remat-backend/domain"
	"remat-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PickupRepository interface {
		CreatePickup(ctx context.Context, pickup *entities.PickupRequest) error
		GetPickupByID(ctx context.Context, id string) (*entities.PickupRequest, error)
		GetUserPickups(ctx context.Context, userID string) ([]*entities.PickupRequest, error)
		GetAllPickups(ctx context.Context) ([]*entities.PickupRequest, error)
		UpdateLocation(ctx context.Context, id string, lat, lng float64, addressText string) error
		DeletePickup(ctx context.Context, id string) error
		AcceptPickup(ctx context.Context, id string, adminID uuid.UUID, points int) error
		RejectPickup(ctx context.Context, id string, adminID uuid.UUID, reason string) error
		CountByStatus(ctx context.Context, status string) (int64, error)
		SumAwardedPoints(ctx context.Context) (int64, error)
	}

	pickupRepository struct {
		db *gorm.DB
	}
)

func NewPickupRepository(db *gorm.DB) PickupRepository {
	return &pickupRepository{db: db}
}

func (r *pickupRepository) CreatePickup(ctx context.Context, pickup *entities.PickupRequest) error {
	return r.db.WithContext(ctx).Create(pickup).Error
}

func (r *pickupRepository) GetPickupByID(ctx context.Context, id string) (*entities.PickupRequest, error) {
	var pickup entities.PickupRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&pickup).Error; err != nil {
		return nil, err
	}
	return &pickup, nil
}

func (r *pickupRepository) GetUserPickups(ctx context.Context, userID string) ([]*entities.PickupRequest, error) {
	var pickups []*entities.PickupRequest
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pickups).Error; err != nil {
		return nil, err
	}
	return pickups, nil
}

func (r *pickupRepository) GetAllPickups(ctx context.Context) ([]*entities.PickupRequest, error) {
	var pickups []*entities.PickupRequest
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&pickups).Error; err != nil {
		return nil, err
	}
	return pickups, nil
}

func (r *pickupRepository) UpdateLocation(ctx context.Context, id string, lat, lng float64, addressText string) error {
	updates := map[string]interface{}{
		"latitude":  lat,
		"longitude": lng,
	}
	if addressText != "" {
		updates["address_text"] = addressText
	}

	return r.db.WithContext(ctx).
		Model(&entities.PickupRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *pickupRepository) DeletePickup(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.PickupRequest{}).Error
}

// AcceptPickup marks the request accepted and credits the requester's points
// in one database transaction, so points_awarded can never be applied twice.
func (r *pickupRepository) AcceptPickup(ctx context.Context, id string, adminID uuid.UUID, points int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pickup entities.PickupRequest
		if err := tx.Where("id = ?", id).First(&pickup).Error; err != nil {
			return err
		}

		if pickup.Status != domain.PickupStatusOpen {
			return domain.ErrPickupAlreadyProcessed
		}

		if err := tx.Model(&entities.PickupRequest{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":         domain.PickupStatusAccepted,
				"points_awarded": points,
				"admin_id":       adminID,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&entities.User{}).
			Where("id = ?", pickup.UserID).
			Update("points", gorm.Expr("points + ?", points)).Error
	})
}

func (r *pickupRepository) RejectPickup(ctx context.Context, id string, adminID uuid.UUID, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pickup entities.PickupRequest
		if err := tx.Where("id = ?", id).First(&pickup).Error; err != nil {
			return err
		}

		if pickup.Status != domain.PickupStatusOpen {
			return domain.ErrPickupAlreadyProcessed
		}

		return tx.Model(&entities.PickupRequest{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":           domain.PickupStatusRejected,
				"rejection_reason": reason,
				"admin_id":         adminID,
			}).Error
	})
}

func (r *pickupRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.PickupRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *pickupRepository) SumAwardedPoints(ctx context.Context) (int64, error) {
	var result struct {
		Total int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.PickupRequest{}).
		Select("COALESCE(SUM(points_awarded), 0) as total").
		Where("status = ?", domain.PickupStatusAccepted).
		Scan(&result).Error
	return result.Total, err
}
