package bin

import (
	"context"
	"errors"

	"remat-backend/domain"
	"remat-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BinService interface {
		CreateBin(ctx context.Context, req domain.CreateBinRequest) (domain.BinResponse, error)
		GetBins(ctx context.Context) ([]domain.BinResponse, error)
		GetBinByID(ctx context.Context, id string) (domain.BinResponse, error)
		UpdateBin(ctx context.Context, id string, req domain.UpdateBinRequest) error
		DeleteBin(ctx context.Context, id string) error
		GetNearbyBins(ctx context.Context, lat, lng float64, limit int) ([]domain.NearbyBinResponse, error)
		ResolveQR(ctx context.Context, qrText string) (domain.BinResponse, error)
	}

	binService struct {
		binRepository BinRepository
	}
)

func NewBinService(binRepository BinRepository) BinService {
	return &binService{binRepository: binRepository}
}

func toBinResponse(bin *entities.Bin) domain.BinResponse {
	return domain.BinResponse{
		ID:          bin.ID.String(),
		Name:        bin.Name,
		Latitude:    bin.Latitude,
		Longitude:   bin.Longitude,
		Capacity:    bin.Capacity,
		FillLevel:   bin.FillLevel,
		Status:      bin.Status,
		MarkerColor: MarkerColor(bin.Status, bin.FillLevel, false),
		CreatedAt:   bin.CreatedAt,
	}
}

func (s *binService) CreateBin(ctx context.Context, req domain.CreateBinRequest) (domain.BinResponse, error) {
	bin := &entities.Bin{
		ID:        uuid.New(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Capacity:  req.Capacity,
		FillLevel: 0,
		Status:    req.Status,
	}

	if err := s.binRepository.CreateBin(ctx, bin); err != nil {
		return domain.BinResponse{}, err
	}

	return toBinResponse(bin), nil
}

func (s *binService) GetBins(ctx context.Context) ([]domain.BinResponse, error) {
	bins, err := s.binRepository.GetBins(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.BinResponse, 0, len(bins))
	for _, bin := range bins {
		result = append(result, toBinResponse(bin))
	}

	return result, nil
}

func (s *binService) GetBinByID(ctx context.Context, id string) (domain.BinResponse, error) {
	bin, err := s.binRepository.GetBinByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BinResponse{}, domain.ErrBinNotFound
		}
		return domain.BinResponse{}, err
	}

	return toBinResponse(bin), nil
}

// UpdateBin changes name, capacity and status only. FillLevel is owned by
// the deposit flow and never accepted from a client.
func (s *binService) UpdateBin(ctx context.Context, id string, req domain.UpdateBinRequest) error {
	bin, err := s.binRepository.GetBinByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBinNotFound
		}
		return err
	}

	if req.Name != "" {
		bin.Name = req.Name
	}
	if req.Capacity > 0 {
		bin.Capacity = req.Capacity
	}
	if req.Status != "" {
		bin.Status = req.Status
	}

	return s.binRepository.UpdateBin(ctx, bin)
}

func (s *binService) DeleteBin(ctx context.Context, id string) error {
	if _, err := s.binRepository.GetBinByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBinNotFound
		}
		return err
	}

	return s.binRepository.DeleteBin(ctx, id)
}

func (s *binService) GetNearbyBins(ctx context.Context, lat, lng float64, limit int) ([]domain.NearbyBinResponse, error) {
	if limit < 1 {
		limit = 5
	}

	bins, err := s.binRepository.GetNearbyBins(ctx, lat, lng, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.NearbyBinResponse, 0, len(bins))
	for _, bin := range bins {
		result = append(result, domain.NearbyBinResponse{
			BinResponse: toBinResponse(&bin.Bin),
			DistanceKm:  bin.Distance / 1000,
		})
	}

	return result, nil
}

func (s *binService) ResolveQR(ctx context.Context, qrText string) (domain.BinResponse, error) {
	id, err := ExtractBinID(qrText)
	if err != nil {
		return domain.BinResponse{}, err
	}

	return s.GetBinByID(ctx, id)
}
