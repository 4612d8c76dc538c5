package bin

import (
	"context"

	"remat-backend/entities"

	"gorm.io/gorm"
)

type (
	NearbyBin struct {
		entities.Bin
		Distance float64 `json:"distance"` // meters, from earth_distance
	}

	BinStats struct {
		TotalBins        int64
		AverageFillLevel float64
		FullBins         int64
		MaintenanceBins  int64
	}

	BinRepository interface {
		CreateBin(ctx context.Context, bin *entities.Bin) error
		GetBins(ctx context.Context) ([]*entities.Bin, error)
		GetBinByID(ctx context.Context, id string) (*entities.Bin, error)
		UpdateBin(ctx context.Context, bin *entities.Bin) error
		DeleteBin(ctx context.Context, id string) error
		GetNearbyBins(ctx context.Context, lat, lng float64, limit int) ([]*NearbyBin, error)
		GetBinStats(ctx context.Context) (BinStats, error)
	}

	binRepository struct {
		db *gorm.DB
	}
)

func NewBinRepository(db *gorm.DB) BinRepository {
	return &binRepository{db: db}
}

func (r *binRepository) CreateBin(ctx context.Context, bin *entities.Bin) error {
	return r.db.WithContext(ctx).Create(bin).Error
}

func (r *binRepository) GetBins(ctx context.Context) ([]*entities.Bin, error) {
	var bins []*entities.Bin
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bins).Error; err != nil {
		return nil, err
	}
	return bins, nil
}

func (r *binRepository) GetBinByID(ctx context.Context, id string) (*entities.Bin, error) {
	var bin entities.Bin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bin).Error; err != nil {
		return nil, err
	}
	return &bin, nil
}

func (r *binRepository) UpdateBin(ctx context.Context, bin *entities.Bin) error {
	return r.db.WithContext(ctx).Save(bin).Error
}

func (r *binRepository) DeleteBin(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Bin{}).Error
}

func (r *binRepository) GetNearbyBins(ctx context.Context, lat, lng float64, limit int) ([]*NearbyBin, error) {
	var bins []*NearbyBin

	// Uses PostgreSQL's earthdistance extension:
	// CREATE EXTENSION IF NOT EXISTS "earthdistance" CASCADE;
	// CREATE EXTENSION IF NOT EXISTS "cube";
	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM bins
		WHERE status = 'active' AND fill_level < ?
		ORDER BY distance ASC
		LIMIT ?
	`

	if err := r.db.WithContext(ctx).
		Raw(query, lat, lng, 100, limit).
		Scan(&bins).Error; err != nil {
		return nil, err
	}

	return bins, nil
}

func (r *binRepository) GetBinStats(ctx context.Context) (BinStats, error) {
	var stats BinStats

	query := `
		SELECT COUNT(*) as total_bins,
		       COALESCE(AVG(fill_level), 0) as average_fill_level,
		       COUNT(*) FILTER (WHERE status = 'full') as full_bins,
		       COUNT(*) FILTER (WHERE status = 'maintenance') as maintenance_bins
		FROM bins
	`

	err := r.db.WithContext(ctx).Raw(query).Scan(&stats).Error
	return stats, err
}
