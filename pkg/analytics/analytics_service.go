package analytics

import (
	"context"
	"math"

	"remat-backend/domain"
	"remat-backend/pkg/bin"
	"remat-backend/pkg/pickup"
	"remat-backend/pkg/user"
	"remat-backend/pkg/waste"
)

type (
	AnalyticsService interface {
		GetAnalytics(ctx context.Context) (domain.AnalyticsResponse, error)
	}

	analyticsService struct {
		binRepository    bin.BinRepository
		pickupRepository pickup.PickupRepository
		wasteRepository  waste.WasteRepository
		userRepository   user.UserRepository
	}
)

func NewAnalyticsService(
	binRepository bin.BinRepository,
	pickupRepository pickup.PickupRepository,
	wasteRepository waste.WasteRepository,
	userRepository user.UserRepository,
) AnalyticsService {
	return &analyticsService{
		binRepository:    binRepository,
		pickupRepository: pickupRepository,
		wasteRepository:  wasteRepository,
		userRepository:   userRepository,
	}
}

func (s *analyticsService) GetAnalytics(ctx context.Context) (domain.AnalyticsResponse, error) {
	binStats, err := s.binRepository.GetBinStats(ctx)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	openPickups, err := s.pickupRepository.CountByStatus(ctx, domain.PickupStatusOpen)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}
	acceptedPickups, err := s.pickupRepository.CountByStatus(ctx, domain.PickupStatusAccepted)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}
	rejectedPickups, err := s.pickupRepository.CountByStatus(ctx, domain.PickupStatusRejected)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	totalTransactions, err := s.wasteRepository.CountTransactions(ctx)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	pointsFromDeposits, err := s.wasteRepository.SumPointsAwarded(ctx)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	pointsFromPickups, err := s.pickupRepository.SumAwardedPoints(ctx)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	registeredUsers, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	return domain.AnalyticsResponse{
		TotalBins:          binStats.TotalBins,
		AverageFillLevel:   math.Round(binStats.AverageFillLevel*100) / 100,
		FullBins:           binStats.FullBins,
		MaintenanceBins:    binStats.MaintenanceBins,
		OpenPickups:        openPickups,
		AcceptedPickups:    acceptedPickups,
		RejectedPickups:    rejectedPickups,
		TotalTransactions:  totalTransactions,
		TotalPointsAwarded: pointsFromDeposits + pointsFromPickups,
		RegisteredUsers:    registeredUsers,
		PointsFromPickups:  pointsFromPickups,
		PointsFromDeposits: pointsFromDeposits,
	}, nil
}
