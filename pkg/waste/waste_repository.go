package waste

import (
	"context"

	"remat-backend/domain"
	"remat-backend/entities"

	"gorm.io/gorm"
)

const fillPerDeposit = 10

type (
	WasteRepository interface {
		RecordDeposit(ctx context.Context, tx *entities.Transaction) (*entities.Bin, error)
		CountTransactions(ctx context.Context) (int64, error)
		SumPointsAwarded(ctx context.Context) (int64, error)
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

// RecordDeposit appends the transaction, credits the user's points and bumps
// the bin's fill level in one database transaction. The bin flips to full
// once fill_level reaches the threshold.
func (r *wasteRepository) RecordDeposit(ctx context.Context, txn *entities.Transaction) (*entities.Bin, error) {
	var bin entities.Bin

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", txn.BinID).First(&bin).Error; err != nil {
			return err
		}

		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.User{}).
			Where("id = ?", txn.UserID).
			Update("points", gorm.Expr("points + ?", txn.PointsAwarded)).Error; err != nil {
			return err
		}

		bin.FillLevel += fillPerDeposit
		if bin.FillLevel >= domain.BinFullThreshold {
			bin.Status = domain.BinStatusFull
		}

		return tx.Model(&entities.Bin{}).
			Where("id = ?", bin.ID).
			Updates(map[string]interface{}{
				"fill_level": bin.FillLevel,
				"status":     bin.Status,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &bin, nil
}

func (r *wasteRepository) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Transaction{}).Count(&count).Error
	return count, err
}

func (r *wasteRepository) SumPointsAwarded(ctx context.Context) (int64, error) {
	var result struct {
		Total int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Transaction{}).
		Select("COALESCE(SUM(points_awarded), 0) as total").
		Scan(&result).Error
	return result.Total, err
}
